package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Cell int

const (
	Empty Cell = iota
	PlayerMark
	OpponentMark
)

func (c Cell) String() string {
	switch c {
	case PlayerMark:
		return "X"
	case OpponentMark:
		return "O"
	default:
		return ""
	}
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*c = PlayerMark
	case "O":
		*c = OpponentMark
	case "":
		*c = Empty
	default:
		return fmt.Errorf("unknown cell %q", text)
	}
	return nil
}

type Mover int

const (
	Player Mover = iota + 1
	Opponent
)

func (m Mover) Mark() Cell {
	if m == Opponent {
		return OpponentMark
	}
	return PlayerMark
}

func (m Mover) String() string {
	switch m {
	case Player:
		return "player"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("Mover(%d)", int(m))
	}
}

func (m Mover) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mover) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player":
		*m = Player
	case "opponent":
		*m = Opponent
	default:
		return fmt.Errorf("unknown mover %q", text)
	}
	return nil
}

// CellSet is a sorted set of cell indices. Values are never modified in
// place: With and Without return new sets.
type CellSet []int

func NewCellSet(cells ...int) CellSet {
	s := make(CellSet, 0, len(cells))
	for _, c := range cells {
		s = s.With(c)
	}
	return s
}

func (s CellSet) Has(cell int) bool {
	_, ok := slices.BinarySearch(s, cell)
	return ok
}

func (s CellSet) With(cell int) CellSet {
	i, ok := slices.BinarySearch(s, cell)
	if ok {
		return s
	}
	next := make(CellSet, 0, len(s)+1)
	next = append(next, s[:i]...)
	next = append(next, cell)
	return append(next, s[i:]...)
}

func (s CellSet) Without(cell int) CellSet {
	i, ok := slices.BinarySearch(s, cell)
	if !ok {
		return s
	}
	next := make(CellSet, 0, len(s)-1)
	next = append(next, s[:i]...)
	return append(next, s[i+1:]...)
}

func (s CellSet) Clone() CellSet {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}
