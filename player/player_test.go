package player

import (
	"testing"

	"tictacpro/catalog"
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/geometry"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newEngine(t *testing.T) *game.Engine {
	t.Helper()
	b, err := geometry.New(3, 3)
	require.NoError(t, err)
	e, err := game.NewEngine(b, catalog.Default())
	require.NoError(t, err)
	return e
}

func roundWith(t *testing.T, e *game.Engine, effect string, rng game.Rand) *game.RoundState {
	t.Helper()
	def, err := e.Catalog().Lookup(effect)
	require.NoError(t, err)
	return e.PrepareRound(1, def, nil, rng)
}

func TestRandomPlayer(t *testing.T) {
	e := newEngine(t)

	t.Run("places on legal cells", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		p := NewRandomPlayer(rng, WithAbilityRate(0))
		s := gamemaster.Snapshot{Round: roundWith(t, e, "corner-bonus", rng)}
		legal := []int{2, 5, 7}
		for i := 0; i < 20; i++ {
			a := p.Act(s, legal)
			require.Equal(t, Place, a.Kind)
			require.Contains(t, legal, a.Cell)
		}
	})

	t.Run("recalls an opponent mark", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		p := NewRandomPlayer(rng, WithAbilityRate(1))
		rs := roundWith(t, e, "recall", rng)
		rs, _, err := e.RequestMove(rs, 0, game.Opponent, rng)
		require.NoError(t, err)

		s := gamemaster.Snapshot{Round: rs, Abilities: e.Available(rs)}
		a := p.Act(s, e.LegalMoves(rs, game.Player))
		require.Equal(t, UseAbility, a.Kind)
		require.Equal(t, game.Recall, a.Ability)
		require.Equal(t, 0, a.Args.Cell)

		_, _, err = e.UseAbility(rs, a.Ability, a.Args, rng)
		require.NoError(t, err)
	})

	t.Run("no ability without a grant", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		p := NewRandomPlayer(rng, WithAbilityRate(1))
		rs := roundWith(t, e, "corner-bonus", rng)
		a := p.Act(gamemaster.Snapshot{Round: rs, Abilities: e.Available(rs)}, []int{4})
		require.Equal(t, Action{Kind: Place, Cell: 4}, a)
	})
}

func TestGreedyPlayer(t *testing.T) {
	e := newEngine(t)
	rng := rand.New(rand.NewSource(4))
	p := NewGreedyPlayer(e, rng)

	rs := e.NewRound(1)
	for _, m := range []game.Move{{Cell: 0, Mover: game.Player}, {Cell: 1, Mover: game.Player}, {Cell: 4, Mover: game.Opponent}} {
		next, _, err := e.ApplyMove(rs, m.Cell, m.Mover)
		require.NoError(t, err)
		rs = next
	}

	a := p.Act(gamemaster.Snapshot{Round: rs}, e.LegalMoves(rs, game.Player))
	require.Equal(t, Action{Kind: Place, Cell: 2}, a, "completing the top row is the only scoring move")
	require.Equal(t, "greedy", p.Name())
}
