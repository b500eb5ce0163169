package engine

import (
	"testing"

	"tictacpro/catalog"
	"tictacpro/experiments/metrics"
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/geometry"
	"tictacpro/player"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newGameMaster(t *testing.T, side int, seed uint64, levels int) (*gamemaster.GameMaster, *game.Engine, *rand.Rand) {
	t.Helper()
	b, err := geometry.New(side, geometry.DefaultRunLength(side))
	require.NoError(t, err)
	e, err := game.NewEngine(b, catalog.Default())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	return gamemaster.New(e, rng, gamemaster.Config{MaxLevels: levels}), e, rng
}

// stubborn always asks for a cell off the board.
type stubborn struct{}

func (stubborn) Name() string { return "stubborn" }
func (stubborn) Act(gamemaster.Snapshot, []int) player.Action {
	return player.Action{Kind: player.Place, Cell: -1}
}

func TestRun(t *testing.T) {
	t.Run("random player finishes every level", func(t *testing.T) {
		for seed := uint64(1); seed <= 10; seed++ {
			gm, _, rng := newGameMaster(t, 3, seed, 4)
			collector := metrics.NewCollector()
			collector.Start(1)
			e := New(gm, player.NewRandomPlayer(rng, player.WithAbilityRate(0.5)), WithCollector(collector))

			session, rounds, err := e.Run()
			require.NoError(t, err)
			require.True(t, session.Completed, "seed %d", seed)
			require.Equal(t, "random", session.Agent)
			require.Equal(t, 4, session.Levels)
			require.Len(t, rounds, 4)

			total, moves := 0, 0
			for i, r := range rounds {
				require.Equal(t, i+1, r.Level)
				require.NotEmpty(t, r.Effect)
				require.Equal(t, r.Obstacle == "", r.Level%2 == 1)
				total += r.Coins
				moves += r.PlayerMoves
			}
			require.Equal(t, total, session.TotalScore)

			run := collector.Complete()
			require.Equal(t, 1, run.Sessions)
			require.Equal(t, moves, run.PlayerMoves)
		}
	})

	t.Run("greedy player on a large board", func(t *testing.T) {
		gm, ge, rng := newGameMaster(t, 5, 9, 2)
		session, rounds, err := New(gm, player.NewGreedyPlayer(ge, rng)).Run()
		require.NoError(t, err)
		require.True(t, session.Completed)
		require.Len(t, rounds, 2)
		require.Equal(t, gamemaster.GameOver, gm.Phase())
	})

	t.Run("turn guard", func(t *testing.T) {
		gm, _, _ := newGameMaster(t, 3, 1, 2)
		collector := metrics.NewCollector()
		session, rounds, err := New(gm, stubborn{}, WithCollector(collector), WithMaxTurns(5)).Run()
		require.NoError(t, err)
		require.False(t, session.Completed)
		require.Empty(t, rounds)
		require.Equal(t, 5, session.Turns)
		require.Positive(t, collector.Complete().Rejected)
	})
}
