// Package render draws read-only text views of a round for terminals and logs.
package render

import (
	"fmt"
	"strings"

	"tictacpro/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	cellStyle     = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	playerStyle   = cellStyle.Copy().Bold(true).Foreground(lipgloss.Color("#00BFFF"))
	opponentStyle = cellStyle.Copy().Bold(true).Foreground(lipgloss.Color("#FF4500"))
	blockedStyle  = cellStyle.Copy().Foreground(lipgloss.Color("#808080"))
	wildStyle     = cellStyle.Copy().Foreground(lipgloss.Color("#FFD700"))
	hiddenStyle   = cellStyle.Copy().Faint(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
)

// Glyphs used for cells that carry no mark.
const (
	emptyGlyph   = "."
	blockedGlyph = "#"
	wildGlyph    = "*"
	hiddenGlyph  = "?"
	dimmedGlyph  = "~"
)

// Board renders rs as a grid of side x side cells inside a rounded box.
// Frozen marks are shown in brackets.
func Board(rs *game.RoundState, side int) string {
	rows := make([]string, 0, side)
	for r := 0; r < side; r++ {
		cells := make([]string, 0, side)
		for c := 0; c < side; c++ {
			cells = append(cells, cell(rs, r*side+c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func cell(rs *game.RoundState, i int) string {
	mark := rs.Board[i]
	switch {
	case mark != game.Empty:
		text := mark.String()
		if rs.Frozen.Has(i) {
			text = "[" + text + "]"
		}
		if mark == game.PlayerMark {
			return playerStyle.Render(text)
		}
		return opponentStyle.Render(text)
	case rs.Blocked.Has(i), rs.WindBlocked.Has(i):
		return blockedStyle.Render(blockedGlyph)
	case rs.Wild.Has(i):
		return wildStyle.Render(wildGlyph)
	case rs.Hidden.Has(i):
		return hiddenStyle.Render(hiddenGlyph)
	case rs.Dimmed.Has(i):
		return hiddenStyle.Render(dimmedGlyph)
	default:
		return cellStyle.Render(emptyGlyph)
	}
}

// Status is a one-line summary of the round's modifiers and counters.
func Status(rs *game.RoundState) string {
	parts := []string{fmt.Sprintf("level %d", rs.Level)}
	if id := rs.EffectID(); id != "" {
		parts = append(parts, "effect "+id)
	}
	if id := rs.ObstacleID(); id != "" {
		parts = append(parts, "obstacle "+id)
	}
	parts = append(parts,
		fmt.Sprintf("lines %d", rs.LinesCompleted),
		fmt.Sprintf("coins %d", rs.LevelCoins),
		fmt.Sprintf("opponent %d", rs.OpponentScore),
	)
	return titleStyle.Render(strings.Join(parts, " | "))
}

// Round stacks the status line on top of the board.
func Round(rs *game.RoundState, side int) string {
	return lipgloss.JoinVertical(lipgloss.Left, Status(rs), Board(rs, side))
}
