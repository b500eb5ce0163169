package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects boards smaller than 3", func(t *testing.T) {
		_, err := New(2, 2)
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejects run length longer than the side", func(t *testing.T) {
		_, err := New(3, 4)
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("default run length follows the side", func(t *testing.T) {
		require.Equal(t, 3, DefaultRunLength(3))
		require.Equal(t, 4, DefaultRunLength(5))
	})
}

func TestLines(t *testing.T) {
	t.Run("classic board has eight lines", func(t *testing.T) {
		b, err := New(3, 3)
		require.NoError(t, err)
		require.Len(t, b.Lines(), 8)
		require.Contains(t, b.Lines(), Line{0, 1, 2})
		require.Contains(t, b.Lines(), Line{2, 4, 6})
	})

	t.Run("five by five four in a row includes every offset", func(t *testing.T) {
		b, err := New(5, 4)
		require.NoError(t, err)
		require.Len(t, b.Lines(), 28)
		require.Contains(t, b.Lines(), Line{0, 1, 2, 3})
		require.Contains(t, b.Lines(), Line{1, 2, 3, 4})
		require.Contains(t, b.Lines(), Line{5, 11, 17, 23})
		require.Contains(t, b.Lines(), Line{4, 8, 12, 16})
	})

	for _, size := range [][2]int{{3, 3}, {4, 3}, {5, 4}, {5, 3}, {6, 5}} {
		b, err := New(size[0], size[1])
		require.NoError(t, err)

		for _, line := range b.Lines() {
			require.Len(t, line, b.RunLength, "every line has the run length")
			for _, cell := range line {
				require.True(t, b.InRange(cell), "cell %d out of range", cell)
			}
			dr := b.Row(line[1]) - b.Row(line[0])
			dc := b.Col(line[1]) - b.Col(line[0])
			require.LessOrEqual(t, dr*dr+dc*dc, 2, "cells are neighbours along the direction")
			for i := 2; i < len(line); i++ {
				require.Equal(t, dr, b.Row(line[i])-b.Row(line[i-1]), "collinear rows")
				require.Equal(t, dc, b.Col(line[i])-b.Col(line[i-1]), "collinear columns")
			}
		}
	}
}

func TestLinesThrough(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)

	require.Len(t, b.LinesThrough(4), 4, "center lies on a row, a column and both diagonals")
	require.Len(t, b.LinesThrough(1), 2)
	require.Nil(t, b.LinesThrough(9))

	for cell := 0; cell < b.Cells(); cell++ {
		for _, line := range b.LinesThrough(cell) {
			require.Contains(t, line, cell)
		}
	}
}

func TestClassify(t *testing.T) {
	b, err := New(5, 4)
	require.NoError(t, err)

	require.Equal(t, Row, b.Classify(Line{6, 7, 8, 9}))
	require.Equal(t, Column, b.Classify(Line{2, 7, 12, 17}))
	require.Equal(t, Diagonal, b.Classify(Line{0, 6, 12, 18}))
	require.Equal(t, Diagonal, b.Classify(Line{4, 8, 12, 16}))
	require.Equal(t, "diagonal", Diagonal.String())
}

func TestNeighbourhoods(t *testing.T) {
	b, err := New(5, 4)
	require.NoError(t, err)

	require.ElementsMatch(t, []int{1, 5, 6}, b.Adjacent(0))
	require.Len(t, b.Adjacent(12), 8)
	require.ElementsMatch(t, []int{7, 11, 13, 17}, b.Orthogonal(12))
	require.True(t, b.AreAdjacent(0, 6))
	require.False(t, b.AreAdjacent(0, 2))
}

func TestClasses(t *testing.T) {
	t.Run("five by five", func(t *testing.T) {
		b, err := New(5, 4)
		require.NoError(t, err)
		require.Equal(t, []int{0, 4, 20, 24}, b.Corners())
		require.Equal(t, []int{1, 2, 3, 5, 9, 10, 14, 15, 19, 21, 22, 23}, b.Edges())
		require.Equal(t, 12, b.Center())
		require.Equal(t, 4, b.Mirror(0))
		require.Equal(t, 12, b.Mirror(12))
		require.True(t, b.InTopHalf(9))
		require.False(t, b.InTopHalf(10))
		require.True(t, b.InBottomHalf(15))
		require.False(t, b.InBottomHalf(14))
	})

	t.Run("three by three", func(t *testing.T) {
		b, err := New(3, 3)
		require.NoError(t, err)
		require.Equal(t, []int{0, 2, 6, 8}, b.Corners())
		require.Equal(t, []int{1, 3, 5, 7}, b.Edges())
		require.Equal(t, 4, b.Center())
		require.True(t, b.IsCenter(4))
		require.Equal(t, 1, b.Middle())
	})

	t.Run("even side has no center", func(t *testing.T) {
		b, err := New(4, 3)
		require.NoError(t, err)
		require.Equal(t, -1, b.Center())
		require.False(t, b.IsCenter(0))
	})
}
