package geometry

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrConfiguration = errors.New("invalid board geometry")

type LineKind int

const (
	Row LineKind = iota
	Column
	Diagonal
)

func (k LineKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// Line is a run of RunLength cell indices in ascending order.
type Line []int

// Board holds the static layout of a square board: its winning lines,
// neighbourhoods and cell classes. It is built once and never mutated.
type Board struct {
	Side      int
	RunLength int

	lines      []Line
	kinds      []LineKind
	byCell     [][]int // line indices through each cell
	adjacent   [][]int
	orthogonal [][]int
	corners    []int
	edges      []int
	center     int
}

// direction families: horizontal, vertical, diagonal, anti-diagonal
var directions = [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// DefaultRunLength is the full side on small boards and one less otherwise.
func DefaultRunLength(side int) int {
	if side <= 3 {
		return side
	}
	return side - 1
}

func New(side, runLength int) (*Board, error) {
	if side < 3 {
		return nil, fmt.Errorf("%w: side %d is smaller than 3", ErrConfiguration, side)
	}
	if runLength < 2 || runLength > side {
		return nil, fmt.Errorf("%w: run length %d does not fit side %d", ErrConfiguration, runLength, side)
	}

	b := &Board{
		Side:      side,
		RunLength: runLength,
		byCell:    make([][]int, side*side),
		center:    -1,
	}
	b.buildLines()
	b.buildNeighbourhoods()
	b.buildClasses()
	return b, nil
}

func (b *Board) buildLines() {
	n, k := b.Side, b.RunLength
	for _, d := range directions {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				endR, endC := r+d[0]*(k-1), c+d[1]*(k-1)
				if endR < 0 || endR >= n || endC < 0 || endC >= n {
					continue
				}
				line := make(Line, k)
				for i := 0; i < k; i++ {
					line[i] = (r+d[0]*i)*n + c + d[1]*i
				}
				slices.Sort(line)
				b.addLine(line)
			}
		}
	}
}

func (b *Board) addLine(line Line) {
	idx := len(b.lines)
	b.lines = append(b.lines, line)
	b.kinds = append(b.kinds, classify(b.Side, line))
	for _, cell := range line {
		b.byCell[cell] = append(b.byCell[cell], idx)
	}
}

func (b *Board) buildNeighbourhoods() {
	n := b.Side
	b.adjacent = make([][]int, n*n)
	b.orthogonal = make([][]int, n*n)
	for cell := 0; cell < n*n; cell++ {
		r, c := cell/n, cell%n
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= n || nc < 0 || nc >= n {
					continue
				}
				b.adjacent[cell] = append(b.adjacent[cell], nr*n+nc)
				if dr == 0 || dc == 0 {
					b.orthogonal[cell] = append(b.orthogonal[cell], nr*n+nc)
				}
			}
		}
	}
}

func (b *Board) buildClasses() {
	n := b.Side
	b.corners = []int{0, n - 1, n * (n - 1), n*n - 1}
	for cell := 0; cell < n*n; cell++ {
		r, c := cell/n, cell%n
		onBorder := r == 0 || r == n-1 || c == 0 || c == n-1
		if onBorder && !slices.Contains(b.corners, cell) {
			b.edges = append(b.edges, cell)
		}
	}
	if n%2 == 1 {
		b.center = (n/2)*n + n/2
	}
}

func classify(side int, line Line) LineKind {
	first, last := line[0], line[len(line)-1]
	switch {
	case first/side == last/side:
		return Row
	case first%side == last%side:
		return Column
	default:
		return Diagonal
	}
}

// Cells is the number of cells on the board.
func (b *Board) Cells() int {
	return b.Side * b.Side
}

func (b *Board) InRange(cell int) bool {
	return cell >= 0 && cell < b.Cells()
}

// Lines returns every winning line. Callers must not modify the result.
func (b *Board) Lines() []Line {
	return b.lines
}

// LinesThrough returns the winning lines containing cell.
func (b *Board) LinesThrough(cell int) []Line {
	if !b.InRange(cell) {
		return nil
	}
	lines := make([]Line, 0, len(b.byCell[cell]))
	for _, idx := range b.byCell[cell] {
		lines = append(lines, b.lines[idx])
	}
	return lines
}

func (b *Board) Classify(line Line) LineKind {
	return classify(b.Side, line)
}

// Adjacent returns the Moore neighbourhood of cell clipped to the board.
func (b *Board) Adjacent(cell int) []int {
	if !b.InRange(cell) {
		return nil
	}
	return b.adjacent[cell]
}

// Orthogonal returns the up/down/left/right neighbours of cell.
func (b *Board) Orthogonal(cell int) []int {
	if !b.InRange(cell) {
		return nil
	}
	return b.orthogonal[cell]
}

func (b *Board) AreAdjacent(a, c int) bool {
	return slices.Contains(b.Adjacent(a), c)
}

// Mirror reflects cell across the vertical mid-axis.
func (b *Board) Mirror(cell int) int {
	r, c := b.Row(cell), b.Col(cell)
	return r*b.Side + (b.Side - 1 - c)
}

func (b *Board) Row(cell int) int {
	return cell / b.Side
}

func (b *Board) Col(cell int) int {
	return cell % b.Side
}

func (b *Board) Corners() []int {
	return b.corners
}

// Edges returns the border cells that are not corners.
func (b *Board) Edges() []int {
	return b.edges
}

// Center returns the center cell, or -1 on boards with an even side.
func (b *Board) Center() int {
	return b.center
}

func (b *Board) IsCorner(cell int) bool {
	return slices.Contains(b.corners, cell)
}

func (b *Board) IsEdge(cell int) bool {
	return slices.Contains(b.edges, cell)
}

func (b *Board) IsCenter(cell int) bool {
	return b.center >= 0 && cell == b.center
}

func (b *Board) InTopHalf(cell int) bool {
	return b.Row(cell) < b.Side/2
}

func (b *Board) InBottomHalf(cell int) bool {
	return b.Row(cell) >= (b.Side+1)/2
}

// Middle returns the index of the middle row and column, or -1 on even sides.
func (b *Board) Middle() int {
	if b.Side%2 == 0 {
		return -1
	}
	return b.Side / 2
}
