package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tictacpro/meta"
)

type SessionRecord struct {
	ID int
	SessionMetric
}

type RoundRecord struct {
	Session int // SessionRecord.ID
	RoundMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir, or a timestamped folder under experiments/runs
// when baseDir is empty.
func NewWriter(baseDir string) (*Writer, error) {
	if baseDir == "" {
		timestamp := time.Now().UTC().Format("20060102T150405Z")
		baseDir = filepath.Join("experiments", "runs", timestamp)
	}
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteConfig stores the session configuration next to the run's throughput.
func (w *Writer) WriteConfig(cfg meta.Config, run RunMetric) error {
	header := []string{"board_side", "run_length", "max_levels", "line_cap", "base_points", "seed",
		"goroutines", "sessions", "duration", "player_moves", "opponent_moves", "abilities", "rejected"}
	row := []string{
		strconv.Itoa(cfg.BoardSide),
		strconv.Itoa(cfg.RunLength),
		strconv.Itoa(cfg.MaxLevels),
		strconv.Itoa(cfg.LineCap),
		strconv.Itoa(cfg.BasePoints),
		strconv.FormatUint(cfg.Seed, 10),
		strconv.Itoa(run.Goroutines),
		strconv.Itoa(run.Sessions),
		run.Duration.String(),
		strconv.Itoa(run.PlayerMoves),
		strconv.Itoa(run.OpponentMoves),
		strconv.Itoa(run.Abilities),
		strconv.Itoa(run.Rejected),
	}
	return w.write("config.csv", header, [][]string{row})
}

func (w *Writer) WriteSessionRecords(records []SessionRecord) error {
	header := []string{"id", "seed", "agent", "levels", "total_score", "turns", "completed", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Agent,
			strconv.Itoa(record.Levels),
			strconv.Itoa(record.TotalScore),
			strconv.Itoa(record.Turns),
			strconv.FormatBool(record.Completed),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("sessions.csv", header, rows)
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	header := []string{"session", "level", "effect", "obstacle", "lines", "opponent_lines", "coins",
		"opponent_score", "player_moves", "opponent_moves", "abilities", "full"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Session),
			strconv.Itoa(record.Level),
			record.Effect,
			record.Obstacle,
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.OpponentLines),
			strconv.Itoa(record.Coins),
			strconv.Itoa(record.OpponentScore),
			strconv.Itoa(record.PlayerMoves),
			strconv.Itoa(record.OpponentMoves),
			strconv.Itoa(record.Abilities),
			strconv.FormatBool(record.Full),
		})
	}
	return w.write("rounds.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
