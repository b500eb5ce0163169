package game

import (
	"tictacpro/geometry"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Outcome describes one resolved placement.
type Outcome struct {
	Requested   int             `json:"requested"`
	Effective   int             `json:"effective"`
	Mover       Mover           `json:"mover"`
	Redirected  bool            `json:"redirected"`
	Converted   bool            `json:"converted"` // an opponent mark was taken over instead of placing
	Revealed    bool            `json:"revealed"`  // the effective cell was hidden before the placement
	Lines       []geometry.Line `json:"lines"`
	LinesBefore int             `json:"linesBefore"` // mover's completed lines before the placement
	Delta       int             `json:"delta"`
}

// ApplyMove places mover's mark and detects the lines it completes. It does
// not score and does not run post-move hooks.
func (e *Engine) ApplyMove(rs *RoundState, cell int, mover Mover) (*RoundState, Outcome, error) {
	if err := e.CheckMove(rs, cell, mover); err != nil {
		return rs, Outcome{}, err
	}
	next := rs.Copy()
	return next, e.apply(next, cell, mover, true), nil
}

// AfterMove runs the post-move hooks of the active modifiers for out.
func (e *Engine) AfterMove(rs *RoundState, out Outcome, rng Rand) (*RoundState, []Outcome) {
	next := rs.Copy()
	return next, e.afterMove(next, out, rng)
}

// RequestMove is the full move pipeline: legality, placement, scoring and
// post-move hooks. The first outcome is the requested move; any further
// outcomes were caused by hooks.
func (e *Engine) RequestMove(rs *RoundState, cell int, mover Mover, rng Rand) (*RoundState, []Outcome, error) {
	if err := e.CheckMove(rs, cell, mover); err != nil {
		return rs, nil, err
	}
	next := rs.Copy()
	if mover == Player && rs.EffectID() == string(SafeRetry) && !rs.Used.SafeRetry {
		snapshot := rs.Copy()
		snapshot.retry = nil
		next.retry = snapshot
	}
	return next, e.turn(next, cell, mover, rng), nil
}

// RequestOpponentMove selects and resolves the opponent's reply. It reports
// false when the opponent has nowhere to play.
func (e *Engine) RequestOpponentMove(rs *RoundState, rng Rand) (*RoundState, []Outcome, bool) {
	cell, ok := e.SelectOpponentMove(rs, rng)
	if !ok {
		return rs, nil, false
	}
	next := rs.Copy()
	return next, e.turn(next, cell, Opponent, rng), true
}

// CompletedLines scans the lines through cell for ones fully held by mover.
func (e *Engine) CompletedLines(rs *RoundState, cell int, mover Mover) []geometry.Line {
	mark := mover.Mark()
	lines := []geometry.Line{}
	for _, line := range e.board.LinesThrough(cell) {
		if holds(rs, line, mark) {
			lines = append(lines, slices.Clone(line))
		}
	}
	return lines
}

func holds(rs *RoundState, line geometry.Line, mark Cell) bool {
	for _, c := range line {
		if rs.Board[c] != mark {
			return false
		}
	}
	return true
}

func (e *Engine) turn(rs *RoundState, cell int, mover Mover, rng Rand) []Outcome {
	out := e.resolve(rs, cell, mover)
	return append([]Outcome{out}, e.afterMove(rs, out, rng)...)
}

// resolve applies and scores a placement on rs in place.
func (e *Engine) resolve(rs *RoundState, cell int, mover Mover) Outcome {
	out := e.apply(rs, cell, mover, true)
	out.Delta = e.ScoreMove(rs, out, OnMove)
	if mover == Player {
		rs.LevelCoins += out.Delta
	} else {
		rs.OpponentScore += out.Delta
	}
	return out
}

// apply places a mark on rs in place. Redirecting obstacles only move
// regular player placements, and never onto a cell the placement rules
// forbid; the mark then stays on the requested cell.
func (e *Engine) apply(rs *RoundState, cell int, mover Mover, redirect bool) Outcome {
	rs.Blink = false
	out := Outcome{
		Requested:   cell,
		Effective:   cell,
		Mover:       mover,
		LinesBefore: rs.LinesCompleted,
	}
	if mover == Opponent {
		out.LinesBefore = rs.OpponentLines
	}

	if redirect && mover == Player {
		for _, rule := range e.active(rs) {
			if rule.handler.redirect == nil {
				continue
			}
			target, converted := rule.handler.redirect(e, rs, cell)
			if !converted && target != cell && e.allowed(rs, target) != nil {
				log.Debug().Msgf("%s redirect of cell %d to %d dropped", rule.def.ID, cell, target)
				continue
			}
			if target != cell || converted {
				log.Debug().Msgf("%s redirected cell %d to %d", rule.def.ID, cell, target)
				out.Effective, out.Redirected, out.Converted = target, true, converted
				break
			}
		}
	}

	out.Revealed = rs.Hidden.Has(out.Effective)
	e.place(rs, out.Effective, mover)
	e.derive(rs, out.Effective, mover)
	out.Lines = e.CompletedLines(rs, out.Effective, mover)
	e.count(rs, out)
	return out
}

func (e *Engine) place(rs *RoundState, cell int, mover Mover) {
	rs.Board[cell] = mover.Mark()
	rs.removeHistory(cell)
	rs.History = append(rs.History, Move{Cell: cell, Mover: mover})
	rs.Hidden = rs.Hidden.Without(cell)
	if cell == rs.IceTile {
		rs.Frozen = rs.Frozen.With(cell)
	}
}

func (e *Engine) lift(rs *RoundState, cell int) {
	rs.Board[cell] = Empty
	rs.removeHistory(cell)
}

func (e *Engine) derive(rs *RoundState, cell int, mover Mover) {
	if mover == Opponent {
		rs.OpponentPlacements++
		rs.LastOpponentCell = cell
		return
	}
	rs.PlayerPlacements++
	rs.LastPlayerCell = cell
	center := e.board.IsCenter(cell)
	if center {
		rs.UsedCenter = true
	}
	if rs.PlayerPlacements == 1 {
		rs.FirstPlayerCell = cell
		rs.FirstMoveWasCenter = center
	}
}

func (e *Engine) count(rs *RoundState, out Outcome) {
	n := len(out.Lines)
	if n > 0 {
		rs.LastWinningLine = slices.Clone(out.Lines[n-1])
	}
	if out.Mover == Opponent {
		rs.OpponentLines += n
		return
	}
	if n == 0 {
		rs.Streak = 0
		return
	}
	rs.LinesCompleted += n
	rs.Combo += n
	rs.Streak++
	if rs.Streak > rs.BestStreak {
		rs.BestStreak = rs.Streak
	}
	for _, l := range out.Lines {
		rs.PlayerLines = append(rs.PlayerLines, slices.Clone(l))
	}
}

func (e *Engine) afterMove(rs *RoundState, out Outcome, rng Rand) []Outcome {
	extra := []Outcome{}
	for _, rule := range e.active(rs) {
		if rule.handler.afterMove == nil {
			continue
		}
		extra = append(extra, rule.handler.afterMove(e, rs, rule.def, out, rng)...)
	}
	return extra
}
