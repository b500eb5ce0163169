package experiments

import (
	"fmt"
	"sync"
	"time"

	"tictacpro/catalog"
	"tictacpro/engine"
	"tictacpro/experiments/metrics"
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/meta"
	"tictacpro/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	RandomAgent = "random"
	GreedyAgent = "greedy"
)

type Option func(r *runner)

// WithAgent selects the automated player, RandomAgent by default.
func WithAgent(name string) Option {
	return func(r *runner) {
		r.agent = name
	}
}

type runner struct {
	cfg       meta.Config
	engine    *game.Engine
	collector metrics.Collector
	agent     string
}

type result struct {
	session metrics.SessionMetric
	rounds  []metrics.RoundMetric
	err     error
}

// Run plays sessions in a pool of goroutines and stores the records as CSV
// files in outDir. Session i is seeded with cfg.SessionSeed(i).
func Run(cfg meta.Config, sessions, goroutines int, outDir string, options ...Option) (metrics.RunMetric, error) {
	if err := cfg.Validate(); err != nil {
		return metrics.RunMetric{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if goroutines < 1 {
		goroutines = 1
	}

	b, err := cfg.Board()
	if err != nil {
		return metrics.RunMetric{}, err
	}
	eng, err := game.NewEngine(b, catalog.Default(), game.WithBasePoints(cfg.BasePoints), game.WithLineCap(cfg.LineCap))
	if err != nil {
		return metrics.RunMetric{}, err
	}
	r := &runner{cfg: cfg, engine: eng, collector: metrics.NewCollector(), agent: RandomAgent}
	for _, option := range options {
		option(r)
	}
	if r.agent != RandomAgent && r.agent != GreedyAgent {
		return metrics.RunMetric{}, fmt.Errorf("unknown agent %q", r.agent)
	}

	log.Info().Msgf("starting %d sessions on %d goroutines with seed %d...", sessions, goroutines, cfg.Seed)
	r.collector.Start(goroutines)

	results := make([]result, sessions)
	tasks := make(chan int, sessions)
	for i := 0; i < sessions; i++ {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				results[i] = r.session(i)
			}
		}()
	}
	wg.Wait()

	run := r.collector.Complete()
	log.Info().Msgf("completed %d sessions in %s", run.Sessions, run.Duration)

	sessionRecords := []metrics.SessionRecord{}
	roundRecords := []metrics.RoundRecord{}
	for i, res := range results {
		if res.err != nil {
			return run, fmt.Errorf("session %d failed: %w", i, res.err)
		}
		sessionRecords = append(sessionRecords, metrics.SessionRecord{ID: i, SessionMetric: res.session})
		for _, rm := range res.rounds {
			roundRecords = append(roundRecords, metrics.RoundRecord{Session: i, RoundMetric: rm})
		}
	}

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return run, err
	}
	if err := writer.WriteConfig(cfg, run); err != nil {
		return run, err
	}
	if err := writer.WriteSessionRecords(sessionRecords); err != nil {
		return run, err
	}
	if err := writer.WriteRoundRecords(roundRecords); err != nil {
		return run, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return run, nil
}

func (r *runner) session(i int) result {
	seed := r.cfg.SessionSeed(i)
	rng := rand.New(rand.NewSource(seed))
	gm := gamemaster.New(r.engine, rng, gamemaster.Config{MaxLevels: r.cfg.MaxLevels, OpponentDelay: r.cfg.OpponentDelay})

	var agent player.Agent = player.NewRandomPlayer(rng)
	if r.agent == GreedyAgent {
		agent = player.NewGreedyPlayer(r.engine, rng)
	}

	session, rounds, err := engine.New(gm, agent, engine.WithCollector(r.collector)).Run()
	session.Seed = seed
	log.Debug().Msgf("session %d finished with %d points", i, session.TotalScore)
	return result{session: session, rounds: rounds, err: err}
}
