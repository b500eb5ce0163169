package game

import (
	"errors"

	"tictacpro/catalog"
	"tictacpro/geometry"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// handler holds the rules of one catalog definition. Every hook is optional.
type handler struct {
	setup     func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand)
	allow     func(e *Engine, rs *RoundState, cell int) error
	redirect  func(e *Engine, rs *RoundState, cell int) (target int, converted bool)
	score     func(e *Engine, rs *RoundState, in scoreInput) Contribution
	roundEnd  func(e *Engine, rs *RoundState, def catalog.Definition) Contribution
	afterMove func(e *Engine, rs *RoundState, def catalog.Definition, out Outcome, rng Rand) []Outcome
	bias      func(e *Engine, rs *RoundState, candidates []int) []int
	pick      func(e *Engine, rs *RoundState, candidates []int) (int, bool)
}

var (
	errForcedEdge   = errors.New("opening move must be on an edge")
	errForcedCorner = errors.New("opening move must be on a corner")
	errRepeatRow    = errors.New("previous move was on the same row")
	errRepeatColumn = errors.New("previous move was on the same column")
)

func registry() map[string]handler {
	return map[string]handler{
		// scoring
		"center-boost": {score: perLine(func(e *Engine, _ *RoundState, l geometry.Line) bool {
			return slices.Contains(l, e.board.Center())
		})},
		"corner-bonus": {score: perCell(func(e *Engine, _ *RoundState, c int) bool { return e.board.IsCorner(c) })},
		"edge-bonus":   {score: perCell(func(e *Engine, _ *RoundState, c int) bool { return e.board.IsEdge(c) })},
		"combo-counter": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			points := 0
			for i := range in.out.Lines {
				points += in.def.Points() * (in.out.LinesBefore + i)
			}
			return Contribution{Points: points}
		}},
		"diagonal-doubler": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return multiplier(in.def, slices.ContainsFunc(in.out.Lines, func(l geometry.Line) bool {
				return e.board.Classify(l) == geometry.Diagonal
			}))
		}},
		"row-runner":     {score: perKind(geometry.Row)},
		"column-climber": {score: perKind(geometry.Column)},
		"triple-cherry": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return multiplier(def, rs.LinesCompleted >= def.Count)
		}},
		"perfect-fill": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return points(def, e.Full(rs))
		}},
		"quick-start": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return points(in.def, rs.PlayerPlacements == 1 && rs.FirstMoveWasCenter)
		}},
		"speed-bonus": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return points(in.def, rs.PlayerPlacements <= in.def.Count)
		}},
		"fast-corner": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return points(in.def, e.board.IsCorner(in.out.Effective))
		}},
		"multi-strike": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			extra := 0
			for i := range in.out.Lines {
				if in.out.LinesBefore+i > 0 {
					extra++
				}
			}
			return Contribution{Points: extra * in.def.Points()}
		}},
		"line-streak": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return points(in.def, len(in.out.Lines) > 0 && rs.Streak >= in.def.Count)
		}},
		"center-power": {score: perLine(func(e *Engine, _ *RoundState, l geometry.Line) bool {
			return slices.Contains(l, e.board.Center())
		})},
		"board-control": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			if len(in.out.Lines) == 0 {
				return Contribution{}
			}
			return Contribution{Points: in.def.Points() * len(rs.openCells())}
		}},
		"middle-master": {score: perLine(func(e *Engine, _ *RoundState, l geometry.Line) bool {
			m, b := e.board.Middle(), e.board
			first, last := l[0], l[len(l)-1]
			return m >= 0 && ((b.Row(first) == m && b.Row(last) == m) || (b.Col(first) == m && b.Col(last) == m))
		})},

		// placement
		"edge-magnet": {
			allow: forcedOpening(errForcedEdge, func(b *geometry.Board, c int) bool { return b.IsEdge(c) }),
			score: throughFirstCell,
		},
		"corner-magnet": {
			allow: forcedOpening(errForcedCorner, func(b *geometry.Board, c int) bool { return b.IsCorner(c) }),
			score: throughFirstCell,
		},
		"lucky-corner": {setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
			for _, cell := range e.sample(rs, e.board.Corners(), 1, false, rng) {
				e.placeFree(rs, cell)
			}
		}},
		"free-center": {setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
			if c := e.board.Center(); c >= 0 && rs.open(c) {
				e.placeFree(rs, c)
			}
		}},
		string(SafeRetry): {},
		string(CrossSwap): {},
		string(SkipTurn):  {},
		string(Recall):    {},
		string(TwinMark):  {},

		// memory
		"memory-mark": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				for _, cell := range e.sample(rs, e.allCells(), def.Count, false, rng) {
					rs.Hidden = rs.Hidden.With(cell)
					rs.Marked = rs.Marked.With(cell)
				}
			},
			score: perLine(func(_ *Engine, rs *RoundState, l geometry.Line) bool {
				return slices.ContainsFunc(l, rs.Marked.Has)
			}),
		},
		"hide-corners": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				for _, cell := range rs.free(e.board.Corners()) {
					rs.Hidden = rs.Hidden.With(cell)
				}
			},
			score: revealed(func(b *geometry.Board, c int) bool { return b.IsCorner(c) }),
		},
		"hide-edges": {
			setup: statusSetup(hiddenSet, edgePool, true),
			score: revealed(func(b *geometry.Board, c int) bool { return b.IsEdge(c) }),
		},
		"memory-challenge": {
			setup: statusSetup(dimmedSet, allPool, true),
			score: perCell(func(_ *Engine, rs *RoundState, c int) bool { return rs.Dimmed.Has(c) }),
		},
		"corner-memory": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				for _, cell := range rs.free(e.board.Corners()) {
					rs.Dimmed = rs.Dimmed.With(cell)
				}
			},
			score: perCell(func(e *Engine, rs *RoundState, c int) bool { return rs.Dimmed.Has(c) && e.board.IsCorner(c) }),
		},
		"edge-memory": {
			setup: statusSetup(dimmedSet, edgePool, true),
			score: perCell(func(e *Engine, rs *RoundState, c int) bool { return rs.Dimmed.Has(c) && e.board.IsEdge(c) }),
		},
		"quick-peek": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				open := []geometry.Line{}
				for _, l := range e.board.Lines() {
					if len(rs.free(l)) == len(l) {
						open = append(open, l)
					}
				}
				if len(open) > 0 {
					rs.PeekLine = slices.Clone(open[rng.Intn(len(open))])
				}
			},
			score: perLine(func(_ *Engine, rs *RoundState, l geometry.Line) bool {
				return rs.PeekLine != nil && slices.Equal(l, rs.PeekLine)
			}),
		},

		// ai-bias
		"opponent-drift": {bias: func(e *Engine, rs *RoundState, candidates []int) []int {
			return filter(candidates, e.board.IsEdge)
		}},
		"corner-habit": {bias: func(e *Engine, rs *RoundState, candidates []int) []int {
			return filter(candidates, e.board.IsCorner)
		}},
		"avoid-center": {bias: func(e *Engine, rs *RoundState, candidates []int) []int {
			return filter(candidates, func(c int) bool { return !e.board.IsCenter(c) })
		}},
		"near-last": {bias: func(e *Engine, rs *RoundState, candidates []int) []int {
			if rs.LastPlayerCell < 0 {
				return nil
			}
			return filter(candidates, func(c int) bool { return e.board.AreAdjacent(c, rs.LastPlayerCell) })
		}},
		"scatter": {bias: func(e *Engine, rs *RoundState, candidates []int) []int {
			if rs.LastPlayerCell < 0 {
				return nil
			}
			return filter(candidates, func(c int) bool { return !e.board.AreAdjacent(c, rs.LastPlayerCell) })
		}},
		"opponent-mirror": {pick: func(e *Engine, rs *RoundState, candidates []int) (int, bool) {
			if rs.LastPlayerCell < 0 {
				return -1, false
			}
			m := e.board.Mirror(rs.LastPlayerCell)
			return m, slices.Contains(candidates, m)
		}},
		"center-rush": {pick: func(e *Engine, rs *RoundState, candidates []int) (int, bool) {
			c := e.board.Center()
			return c, rs.OpponentPlacements == 0 && c >= 0 && slices.Contains(candidates, c)
		}},
		"edge-rush": {bias: func(e *Engine, rs *RoundState, candidates []int) []int {
			if rs.OpponentPlacements > 0 {
				return nil
			}
			return filter(candidates, e.board.IsEdge)
		}},
		"slow-opponent": {},

		// economy
		"bonus-bank": {score: perLine(func(*Engine, *RoundState, geometry.Line) bool { return true })},
		"streak-saver": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return points(def, rs.BestStreak >= def.Count)
		}},
		"top-half": {score: perLine(func(e *Engine, _ *RoundState, l geometry.Line) bool {
			return !slices.ContainsFunc(l, func(c int) bool { return !e.board.InTopHalf(c) })
		})},
		"bottom-half": {score: perLine(func(e *Engine, _ *RoundState, l geometry.Line) bool {
			return !slices.ContainsFunc(l, func(c int) bool { return !e.board.InBottomHalf(c) })
		})},
		"first-line-boost": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return multiplier(in.def, in.first())
		}},
		"last-line-boost": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			return multiplier(in.def, in.last)
		}},
		"two-line-gift": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return points(def, rs.LinesCompleted == def.Count)
		}},
		"no-center-gift": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return points(def, !rs.UsedCenter)
		}},
		"corner-collector": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return points(def, !slices.ContainsFunc(e.board.Corners(), func(c int) bool { return rs.Board[c] != PlayerMark }))
		}},
		"saver": {roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
			return Contribution{Multiplier: 1 + def.Parameter}
		}},

		// wild
		"wild-favor": {
			setup: statusSetup(wildSet, allPool, true),
			score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
				touched := 0
				for _, w := range rs.Wild {
					if slices.ContainsFunc(in.out.Lines, func(l geometry.Line) bool { return e.touches(l, w) }) {
						touched++
					}
				}
				return Contribution{Points: touched * in.def.Points()}
			},
		},
		"wild-corners": {
			setup: statusSetup(wildSet, cornerPool, false),
			score: perLine(touchesWild),
		},
		"wild-edges": {
			setup: statusSetup(wildSet, edgePool, true),
			score: perLine(touchesWild),
		},
		"wild-collector": {
			setup: statusSetup(wildSet, allPool, true),
			roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
				all := len(rs.Wild) > 0 && !slices.ContainsFunc(rs.Wild, func(w int) bool {
					return !slices.ContainsFunc(rs.PlayerLines, func(l geometry.Line) bool { return e.touches(l, w) })
				})
				return points(def, all)
			},
		},
		"wild-saver": {
			setup: statusSetup(wildSet, allPool, true),
			roundEnd: func(e *Engine, rs *RoundState, def catalog.Definition) Contribution {
				near := slices.ContainsFunc(rs.Wild, func(w int) bool {
					return slices.ContainsFunc(e.board.Adjacent(w), func(c int) bool { return rs.Board[c] == PlayerMark })
				})
				return points(def, len(rs.Wild) > 0 && !near)
			},
		},

		// obstacles
		"locked-center": {setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
			if c := e.board.Center(); c >= 0 && len(rs.free([]int{c})) == 1 {
				rs.Blocked = rs.Blocked.With(c)
			}
		}},
		"locked-corner": {setup: statusSetup(blockedSet, cornerPool, false)},
		"locked-edge":   {setup: statusSetup(blockedSet, edgePool, false)},
		"ice-tile": {setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
			rs.IceTile = e.tile(rs, rng)
		}},
		"fog-tile": {setup: statusSetup(hiddenSet, allPool, false)},
		"bounce-tile": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				rs.BounceTile = e.tile(rs, rng)
			},
			redirect: func(e *Engine, rs *RoundState, cell int) (int, bool) {
				if cell != rs.BounceTile {
					return cell, false
				}
				for _, n := range e.neighbours(cell) {
					if rs.open(n) {
						return n, false
					}
				}
				return cell, false
			},
		},
		"swap-tile": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				rs.SwapTile = e.tile(rs, rng)
			},
			redirect: func(e *Engine, rs *RoundState, cell int) (int, bool) {
				if cell != rs.SwapTile {
					return cell, false
				}
				for _, n := range e.neighbours(cell) {
					if rs.Board[n] == OpponentMark && !rs.Frozen.Has(n) {
						return n, true
					}
				}
				return cell, false
			},
		},
		"slow-reveal": {
			setup: func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
				rs.Dimmed = NewCellSet(e.allCells()...)
			},
			afterMove: func(e *Engine, rs *RoundState, def catalog.Definition, out Outcome, rng Rand) []Outcome {
				if out.Mover == Opponent && len(rs.Dimmed) > 0 {
					rs.Dimmed = rs.Dimmed.Without(rs.Dimmed[rng.Intn(len(rs.Dimmed))])
				}
				return nil
			},
		},
		"no-repeat-row": {allow: func(e *Engine, rs *RoundState, cell int) error {
			if rs.LastPlayerCell >= 0 && e.board.Row(cell) == e.board.Row(rs.LastPlayerCell) {
				return errRepeatRow
			}
			return nil
		}},
		"no-repeat-column": {allow: func(e *Engine, rs *RoundState, cell int) error {
			if rs.LastPlayerCell >= 0 && e.board.Col(cell) == e.board.Col(rs.LastPlayerCell) {
				return errRepeatColumn
			}
			return nil
		}},
		"wind": {afterMove: func(e *Engine, rs *RoundState, def catalog.Definition, out Outcome, rng Rand) []Outcome {
			if out.Mover != Opponent {
				return nil
			}
			if open := rs.openCells(); len(open) > 0 {
				cell := open[rng.Intn(len(open))]
				rs.WindBlocked = rs.WindBlocked.With(cell)
				log.Debug().Msgf("wind blocked cell %d", cell)
			}
			return nil
		}},
		"gravity": {redirect: func(e *Engine, rs *RoundState, cell int) (int, bool) {
			col := e.board.Col(cell)
			for row := e.board.Side - 1; row >= 0; row-- {
				if c := row*e.board.Side + col; rs.open(c) {
					return c, false
				}
			}
			return cell, false
		}},
		"mirror-board": {afterMove: func(e *Engine, rs *RoundState, def catalog.Definition, out Outcome, rng Rand) []Outcome {
			if out.Mover != Player {
				return nil
			}
			rs.GhostCell = -1
			if m := e.board.Mirror(out.Effective); m != out.Effective && rs.Board[m] == Empty {
				rs.GhostCell = m
			}
			return nil
		}},
		"sticky-o": {},
		"slippery-edge": {score: func(e *Engine, rs *RoundState, in scoreInput) Contribution {
			penalty := 0
			for _, l := range in.out.Lines {
				if e.board.IsEdge(l[0]) {
					penalty -= in.base
				}
			}
			return Contribution{Points: penalty}
		}},
		"time-blink": {afterMove: func(e *Engine, rs *RoundState, def catalog.Definition, out Outcome, rng Rand) []Outcome {
			if out.Mover == Opponent {
				rs.Blink = true
			}
			return nil
		}},
		"double-chance": {afterMove: func(e *Engine, rs *RoundState, def catalog.Definition, out Outcome, rng Rand) []Outcome {
			if out.Mover != Opponent || rs.Used.DoubleOpponent || rng.Float64() >= def.Parameter {
				return nil
			}
			rs.Used.DoubleOpponent = true
			cell, ok := e.SelectOpponentMove(rs, rng)
			if !ok {
				return nil
			}
			log.Debug().Msgf("double chance: opponent plays again on cell %d", cell)
			return []Outcome{e.resolve(rs, cell, Opponent)}
		}},
		"center-tax": {score: tax(func(b *geometry.Board, c int) bool { return b.IsCenter(c) })},
		"edge-tax":   {score: tax(func(b *geometry.Board, c int) bool { return b.IsEdge(c) })},
		"corner-tax": {score: tax(func(b *geometry.Board, c int) bool { return b.IsCorner(c) })},
		"memory-fog": {setup: statusSetup(dimmedSet, allPool, true)},
	}
}

func points(def catalog.Definition, ok bool) Contribution {
	if !ok {
		return Contribution{}
	}
	return Contribution{Points: def.Points()}
}

func multiplier(def catalog.Definition, ok bool) Contribution {
	if !ok {
		return Contribution{}
	}
	return Contribution{Multiplier: def.Parameter}
}

type scoreFn func(e *Engine, rs *RoundState, in scoreInput) Contribution

// perLine pays the parameter once for every completed line matching match.
func perLine(match func(e *Engine, rs *RoundState, l geometry.Line) bool) scoreFn {
	return func(e *Engine, rs *RoundState, in scoreInput) Contribution {
		n := 0
		for _, l := range in.out.Lines {
			if match(e, rs, l) {
				n++
			}
		}
		return Contribution{Points: n * in.def.Points()}
	}
}

// perCell pays the parameter for every matching cell of every completed line.
func perCell(match func(e *Engine, rs *RoundState, c int) bool) scoreFn {
	return func(e *Engine, rs *RoundState, in scoreInput) Contribution {
		n := 0
		for _, l := range in.out.Lines {
			for _, c := range l {
				if match(e, rs, c) {
					n++
				}
			}
		}
		return Contribution{Points: n * in.def.Points()}
	}
}

func perKind(kind geometry.LineKind) scoreFn {
	return perLine(func(e *Engine, _ *RoundState, l geometry.Line) bool { return e.board.Classify(l) == kind })
}

func throughFirstCell(e *Engine, rs *RoundState, in scoreInput) Contribution {
	return perLine(func(_ *Engine, rs *RoundState, l geometry.Line) bool {
		return slices.Contains(l, rs.FirstPlayerCell)
	})(e, rs, in)
}

func revealed(class func(b *geometry.Board, c int) bool) scoreFn {
	return func(e *Engine, rs *RoundState, in scoreInput) Contribution {
		return points(in.def, in.out.Revealed && class(e.board, in.out.Effective))
	}
}

func tax(class func(b *geometry.Board, c int) bool) scoreFn {
	return func(e *Engine, rs *RoundState, in scoreInput) Contribution {
		if !class(e.board, in.out.Effective) {
			return Contribution{}
		}
		return Contribution{Points: -in.def.Points()}
	}
}

func forcedOpening(err error, class func(b *geometry.Board, c int) bool) func(e *Engine, rs *RoundState, cell int) error {
	return func(e *Engine, rs *RoundState, cell int) error {
		if rs.PlayerPlacements == 0 && !class(e.board, cell) {
			return err
		}
		return nil
	}
}

func touchesWild(e *Engine, rs *RoundState, l geometry.Line) bool {
	return slices.ContainsFunc(rs.Wild, func(w int) bool { return e.touches(l, w) })
}

// touches reports whether any cell of l is next to cell.
func (e *Engine) touches(l geometry.Line, cell int) bool {
	return slices.ContainsFunc(l, func(c int) bool { return e.board.AreAdjacent(c, cell) })
}

// neighbours orders the Moore neighbourhood orthogonal first, then by index.
func (e *Engine) neighbours(cell int) []int {
	ordered := slices.Clone(e.board.Orthogonal(cell))
	for _, n := range e.board.Adjacent(cell) {
		if !slices.Contains(ordered, n) {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

func (e *Engine) tile(rs *RoundState, rng Rand) int {
	if cells := e.sample(rs, e.allCells(), 1, false, rng); len(cells) == 1 {
		return cells[0]
	}
	return -1
}

type statusKind int

const (
	blockedSet statusKind = iota
	hiddenSet
	dimmedSet
	wildSet
)

type poolKind int

const (
	allPool poolKind = iota
	cornerPool
	edgePool
)

// statusSetup samples def.Count cells from a pool (one when Count is unset)
// into a status set.
func statusSetup(status statusKind, pool poolKind, spread bool) func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
	return func(e *Engine, rs *RoundState, def catalog.Definition, rng Rand) {
		var cells []int
		switch pool {
		case cornerPool:
			cells = e.board.Corners()
		case edgePool:
			cells = e.board.Edges()
		default:
			cells = e.allCells()
		}
		n := def.Count
		if n == 0 {
			n = 1
		}
		for _, cell := range e.sample(rs, cells, n, spread, rng) {
			switch status {
			case blockedSet:
				rs.Blocked = rs.Blocked.With(cell)
			case hiddenSet:
				rs.Hidden = rs.Hidden.With(cell)
			case dimmedSet:
				rs.Dimmed = rs.Dimmed.With(cell)
			case wildSet:
				rs.Wild = rs.Wild.With(cell)
			}
		}
	}
}
