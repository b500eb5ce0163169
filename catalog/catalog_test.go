package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Len(t, c.Effects(), 57)
	require.Len(t, c.Obstacles(), 21)
	require.Len(t, c.IDs(), 78)

	for _, def := range c.Effects() {
		require.NotEmpty(t, def.Category, "effect %s has a category", def.ID)
	}
	for _, def := range c.Obstacles() {
		require.Empty(t, def.Category, "obstacle %s is untyped", def.ID)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	t.Run("known id", func(t *testing.T) {
		def, err := c.Lookup("corner-bonus")
		require.NoError(t, err)
		require.Equal(t, 2000, def.Points())
		require.Equal(t, Points, def.ParamKind)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.Lookup("does-not-exist")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duration parameter", func(t *testing.T) {
		def, err := c.Lookup("slow-opponent")
		require.NoError(t, err)
		require.Equal(t, "500ms", def.Duration().String())

		def, err = c.Lookup("corner-bonus")
		require.NoError(t, err)
		require.Zero(t, def.Duration())
	})
}

func TestNew(t *testing.T) {
	good := Definition{ID: "a", Kind: Effect, Category: Scoring, ParamKind: Points}

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := New([]Definition{good, good}, nil)
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("duplicate across tables", func(t *testing.T) {
		obstacle := Definition{ID: "a", Kind: Obstacle, ParamKind: None}
		_, err := New([]Definition{good}, []Definition{obstacle})
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("bad id", func(t *testing.T) {
		bad := good
		bad.ID = "Corner Bonus"
		_, err := New([]Definition{bad}, nil)
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("obstacle with category", func(t *testing.T) {
		bad := Definition{ID: "b", Kind: Obstacle, Category: Wild, ParamKind: None}
		_, err := New(nil, []Definition{bad})
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("probability out of range", func(t *testing.T) {
		bad := Definition{ID: "b", Kind: Obstacle, Parameter: 2, ParamKind: Probability}
		_, err := New(nil, []Definition{bad})
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("effect in obstacle table", func(t *testing.T) {
		_, err := New(nil, []Definition{good})
		require.ErrorIs(t, err, ErrIntegrity)
	})
}

func TestEligible(t *testing.T) {
	c := Default()

	all := Eligible(c.Effects(), 5, true)
	require.Len(t, all, len(c.Effects()))

	small := Eligible(c.Effects(), 3, true)
	for _, def := range small {
		require.NotEqual(t, "edge-memory", def.ID)
	}

	even := Eligible(c.Obstacles(), 4, false)
	for _, def := range even {
		require.False(t, def.RequiresCenter)
	}
	require.Less(t, len(even), len(c.Obstacles()))
}

func TestDocument(t *testing.T) {
	c := Default()
	doc := c.Document()

	require.Equal(t, c.Effects(), doc.Effects)
	doc.Effects[0].Parameter = -1
	require.NotEqual(t, -1.0, c.Effects()[0].Parameter, "document is a copy")
}
