package game

import (
	"encoding/json"
	"testing"

	"tictacpro/catalog"
	"tictacpro/geometry"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
- scenarios: plain line on 3x3, corner bonus on 5x5, row lock, perfect fill at round end
- properties:
	- incremental detection matches a full rescan of the board
	- occupied, blocked, frozen and wild cells are never legal
	- additive contributions commute; penalties apply before multipliers
*/

// fixedRand always draws the first candidate and never shuffles.
type fixedRand struct{ float float64 }

func (fixedRand) Intn(n int) int                     { return 0 }
func (r fixedRand) Float64() float64                 { return r.float }
func (fixedRand) Shuffle(n int, swap func(i, j int)) {}

var never = fixedRand{float: 1}

func newEngine(t *testing.T, side int, options ...Option) *Engine {
	t.Helper()
	b, err := geometry.New(side, geometry.DefaultRunLength(side))
	require.NoError(t, err)
	e, err := NewEngine(b, catalog.Default(), options...)
	require.NoError(t, err)
	return e
}

func newRound(t *testing.T, e *Engine, ids ...string) *RoundState {
	t.Helper()
	rs := e.NewRound(1)
	for _, id := range ids {
		def, err := e.Catalog().Lookup(id)
		require.NoError(t, err)
		rs = e.InitializeModifier(rs, def, never)
	}
	return rs
}

func play(t *testing.T, e *Engine, rs *RoundState, moves ...Move) (*RoundState, []Outcome) {
	t.Helper()
	var outcomes []Outcome
	for _, m := range moves {
		next, out, err := e.RequestMove(rs, m.Cell, m.Mover, never)
		require.NoError(t, err, "move %+v", m)
		rs, outcomes = next, out
	}
	return rs, outcomes
}

func mx(cell int) Move { return Move{Cell: cell, Mover: Player} }
func mo(cell int) Move { return Move{Cell: cell, Mover: Opponent} }

func TestNewEngine(t *testing.T) {
	t.Run("every catalog id has a rule", func(t *testing.T) {
		e := newEngine(t, 5, WithBasePoints(500), WithLineCap(2))
		require.Equal(t, 500, e.BasePoints())
		require.Equal(t, 2, e.LineCap())
	})

	t.Run("rule without catalog entry", func(t *testing.T) {
		full := catalog.Default()
		partial, err := catalog.New(full.Effects()[1:], full.Obstacles())
		require.NoError(t, err)
		b, err := geometry.New(3, 3)
		require.NoError(t, err)

		_, err = NewEngine(b, partial)
		require.ErrorIs(t, err, catalog.ErrIntegrity)
	})

	t.Run("catalog entry without rule", func(t *testing.T) {
		full := catalog.Default()
		extra := catalog.Definition{ID: "mystery", Kind: catalog.Effect, Category: catalog.Scoring, ParamKind: catalog.None}
		c, err := catalog.New(append([]catalog.Definition{extra}, full.Effects()...), full.Obstacles())
		require.NoError(t, err)
		b, err := geometry.New(3, 3)
		require.NoError(t, err)

		_, err = NewEngine(b, c)
		require.ErrorIs(t, err, catalog.ErrIntegrity)
	})
}

func TestScenarios(t *testing.T) {
	t.Run("plain line on a classic board", func(t *testing.T) {
		e := newEngine(t, 3)
		rs, out := play(t, e, e.NewRound(1), mx(0), mo(3), mx(1), mo(4), mx(2))

		require.Equal(t, []geometry.Line{{0, 1, 2}}, out[0].Lines)
		require.Equal(t, 1, rs.LinesCompleted)
		require.Equal(t, 1000, out[0].Delta)
		require.Equal(t, 1000, rs.LevelCoins)
		require.Equal(t, geometry.Line{0, 1, 2}, rs.LastWinningLine)
	})

	t.Run("corner bonus on a five by five board", func(t *testing.T) {
		e := newEngine(t, 5)
		rs := newRound(t, e, "corner-bonus")
		rs, out := play(t, e, rs, mx(0), mo(5), mx(1), mo(6), mx(2), mo(7), mx(3))

		require.Equal(t, []geometry.Line{{0, 1, 2, 3}}, out[0].Lines)
		require.Equal(t, 1000+2000, out[0].Delta)

		plain := rs.Copy()
		plain.Effect = nil
		require.Equal(t, 1000, e.ScoreMove(plain, out[0], OnMove), "the effect contributes exactly 2000")
	})

	t.Run("row lock forbids the previous row", func(t *testing.T) {
		e := newEngine(t, 3)
		rs := newRound(t, e, "no-repeat-row")
		rs, _ = play(t, e, rs, mx(3), mo(0))

		require.False(t, e.IsLegalMove(rs, 5, Player))
		require.ErrorIs(t, e.CheckMove(rs, 5, Player), ErrIllegalMove)
		require.True(t, e.IsLegalMove(rs, 6, Player))
		require.True(t, e.IsLegalMove(rs, 5, Opponent), "constraints bind the player only")

		_, _, err := e.RequestMove(rs, 5, Player, never)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("perfect fill only pays once the board is full", func(t *testing.T) {
		e := newEngine(t, 3)
		rs := newRound(t, e, "perfect-fill")
		marks := map[int]Mover{0: Player, 1: Opponent, 2: Player, 3: Player, 4: Opponent, 5: Opponent, 6: Opponent, 7: Player}
		for cell := 0; cell < 8; cell++ {
			next, _, err := e.ApplyMove(rs, cell, marks[cell])
			require.NoError(t, err)
			rs = next
		}

		require.False(t, e.Full(rs))
		require.Zero(t, e.ScoreMove(rs, Outcome{}, OnRoundEnd))

		rs, out := play(t, e, rs, mx(8))
		require.Empty(t, out[0].Lines)
		require.Zero(t, out[0].Delta, "round-end rules never score mid-round")
		require.True(t, e.Full(rs))
		require.True(t, e.Complete(rs))

		ended, delta := e.EndRound(rs)
		require.Equal(t, 3000, delta)
		require.Equal(t, 3000, ended.LevelCoins)
	})
}

func TestIncrementalDetection(t *testing.T) {
	e := newEngine(t, 5)
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rs := e.NewRound(1)
		mover := Player
		for !e.Full(rs) {
			moves := e.LegalMoves(rs, mover)
			cell := moves[rng.Intn(len(moves))]
			next, out, err := e.ApplyMove(rs, cell, mover)
			require.NoError(t, err)

			before := heldLines(e, rs, mover)
			after := heldLines(e, next, mover)
			require.Len(t, after, len(before)+len(out.Lines), "seed %d cell %d", seed, cell)
			for _, line := range out.Lines {
				require.Contains(t, line, cell)
				require.NotContains(t, before, line)
			}

			rs = next
			if mover == Player {
				mover = Opponent
			} else {
				mover = Player
			}
		}
		require.LessOrEqual(t, len(rs.History), e.Board().Cells())
	}
}

// heldLines rescans the whole board.
func heldLines(e *Engine, rs *RoundState, mover Mover) []geometry.Line {
	held := []geometry.Line{}
	for _, line := range e.Board().Lines() {
		if holds(rs, line, mover.Mark()) {
			held = append(held, line)
		}
	}
	return held
}

func TestLegalityProperty(t *testing.T) {
	e := newEngine(t, 5)
	for seed := uint64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rs := e.StartRound(int(seed%10)+1, rng)
		for i := 0; i < 6; i++ {
			moves := e.LegalMoves(rs, Player)
			if len(moves) == 0 || e.Complete(rs) {
				break
			}
			next, _, err := e.RequestMove(rs, moves[rng.Intn(len(moves))], Player, rng)
			require.NoError(t, err)
			rs = next
			if next, _, ok := e.RequestOpponentMove(rs, rng); ok {
				rs = next
			}
		}

		seen := map[int]bool{}
		for _, m := range rs.History {
			require.False(t, seen[m.Cell], "history repeats cell %d", m.Cell)
			require.Equal(t, m.Mover.Mark(), rs.Board[m.Cell], "history matches the board")
			seen[m.Cell] = true
		}

		for cell, c := range rs.Board {
			forbidden := c != Empty || rs.Blocked.Has(cell) || rs.Frozen.Has(cell) || rs.Wild.Has(cell) || rs.WindBlocked.Has(cell)
			if forbidden {
				require.False(t, e.IsLegalMove(rs, cell, Player), "seed %d cell %d", seed, cell)
				require.False(t, e.IsLegalMove(rs, cell, Opponent), "seed %d cell %d", seed, cell)
			}
		}
	}
}

func TestCompose(t *testing.T) {
	parts := []Contribution{{Points: 2000}, {Points: -500}, {Multiplier: 2}, {Points: 300}}
	permutations := [][]int{{0, 1, 2, 3}, {2, 0, 1, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}}

	for _, order := range permutations {
		ordered := []Contribution{}
		for _, i := range order {
			ordered = append(ordered, parts[i])
		}
		require.Equal(t, (1000+2000-500+300)*2, compose(1000, ordered))
	}

	require.Equal(t, 1000, compose(1000, nil))
	require.Equal(t, -2000, compose(1000, []Contribution{{Points: -2000}, {Multiplier: 2}}), "no clamping")
}

func TestSelectRoundModifiers(t *testing.T) {
	e := newEngine(t, 3)
	rng := rand.New(rand.NewSource(3))
	for level := 1; level <= 40; level++ {
		effect, obstacle := e.SelectRoundModifiers(level, rng)
		require.Equal(t, catalog.Effect, effect.Kind)
		require.True(t, effect.EligibleOn(3, true))
		if level%2 == 1 {
			require.Nil(t, obstacle)
		} else {
			require.NotNil(t, obstacle)
			require.Equal(t, catalog.Obstacle, obstacle.Kind)
		}
	}

	rs := e.StartRound(2, rng)
	require.NotNil(t, rs.Effect)
	require.NotNil(t, rs.Obstacle)
	require.Equal(t, 2, rs.Level)
}

func TestCopyIsolation(t *testing.T) {
	e := newEngine(t, 3)
	rs := newRound(t, e, "wild-favor")
	next, _, err := e.ApplyMove(rs, 4, Player)
	require.NoError(t, err)

	require.Equal(t, Empty, rs.Board[4], "input state is untouched")
	require.Empty(t, rs.History)
	require.Equal(t, PlayerMark, next.Board[4])
	require.Equal(t, rs.Wild, next.Wild)
}

func TestLinesAreNotShared(t *testing.T) {
	e := newEngine(t, 3)
	rs, out := play(t, e, newRound(t, e, "corner-bonus"), mx(0), mo(3), mx(1), mo(4), mx(2))
	require.Equal(t, []geometry.Line{{0, 1, 2}}, out[0].Lines)

	out[0].Lines[0][0] = 99
	rs.LastWinningLine[1] = 99
	snapshot := rs.Copy()
	rs.PlayerLines[0][2] = 99
	snapshot.LastWinningLine[2] = 99

	require.Equal(t, geometry.Line{0, 1, 2}, snapshot.PlayerLines[0])
	require.Equal(t, geometry.Line{0, 99, 2}, rs.LastWinningLine)
	for _, l := range e.Board().Lines() {
		require.NotContains(t, l, 99)
	}
	require.Equal(t, []geometry.Line{{0, 1, 2}}, e.CompletedLines(rs, 2, Player))
}

func TestCellSet(t *testing.T) {
	s := NewCellSet(5, 1, 3, 1)
	require.Equal(t, CellSet{1, 3, 5}, s)
	require.True(t, s.Has(3))
	require.False(t, s.Has(2))

	with := s.With(2)
	require.Equal(t, CellSet{1, 2, 3, 5}, with)
	require.Equal(t, CellSet{1, 3, 5}, s)
	require.Equal(t, CellSet{1, 5}, s.Without(3))
	require.Equal(t, s, s.Without(9))
}

func TestRoundStateJSON(t *testing.T) {
	e := newEngine(t, 3)
	rs, _ := play(t, e, newRound(t, e, "wild-corners"), mx(4), mo(8))

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	require.Contains(t, string(data), `"board":["","","","","X","","","","O"]`)
	require.Contains(t, string(data), `"mover":"opponent"`)

	var decoded RoundState
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, rs.Board, decoded.Board)
	require.Equal(t, rs.History, decoded.History)
	require.Equal(t, rs.Wild, decoded.Wild)
	require.Equal(t, "wild-corners", decoded.EffectID())

	var c Cell
	require.Error(t, c.UnmarshalText([]byte("Z")))
}
