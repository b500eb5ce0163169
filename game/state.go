package game

import (
	"tictacpro/catalog"
	"tictacpro/geometry"

	"golang.org/x/exp/slices"
)

// Move is one mark currently on the board.
type Move struct {
	Cell  int   `json:"cell"`
	Mover Mover `json:"mover"`
}

// Used marks which one-shot abilities were consumed this round.
type Used struct {
	SafeRetry      bool `json:"safeRetry"`
	CrossSwap      bool `json:"crossSwap"`
	SkipTurn       bool `json:"skipTurn"`
	Recall         bool `json:"recall"`
	TwinMark       bool `json:"twinMark"`
	DoubleOpponent bool `json:"doubleOpponent"`
}

// RoundState is the per-round record. Engine operations never modify the
// state they are given; they return a modified copy.
type RoundState struct {
	Level    int                 `json:"level"`
	Board    []Cell              `json:"board"`
	History  []Move              `json:"history"` // marks on the board in write order
	Effect   *catalog.Definition `json:"effect"`
	Obstacle *catalog.Definition `json:"obstacle"`

	Blocked     CellSet `json:"blocked"`
	Frozen      CellSet `json:"frozen"`
	Hidden      CellSet `json:"hidden"`
	Dimmed      CellSet `json:"dimmed"`
	Wild        CellSet `json:"wild"`
	WindBlocked CellSet `json:"windBlocked"`
	Marked      CellSet `json:"-"` // cells hidden by memory-mark, kept after reveal

	IceTile    int `json:"iceTile"`
	BounceTile int `json:"bounceTile"`
	SwapTile   int `json:"swapTile"`

	Used Used `json:"used"`

	LinesCompleted int `json:"linesCompleted"`
	OpponentLines  int `json:"opponentLines"`
	Combo          int `json:"combo"`
	Streak         int `json:"streak"`
	BestStreak     int `json:"bestStreak"`
	LevelCoins     int `json:"levelCoins"`
	OpponentScore  int `json:"opponentScore"`

	PlayerPlacements   int             `json:"playerPlacements"`
	OpponentPlacements int             `json:"opponentPlacements"`
	LastPlayerCell     int             `json:"lastPlayerCell"`
	LastOpponentCell   int             `json:"lastOpponentCell"`
	FirstPlayerCell    int             `json:"firstPlayerCell"`
	UsedCenter         bool            `json:"usedCenter"`
	FirstMoveWasCenter bool            `json:"firstMoveWasCenter"`
	LastWinningLine    geometry.Line   `json:"lastWinningLine"`
	PlayerLines        []geometry.Line `json:"playerLines"`

	PendingSkip bool          `json:"pendingSkip"`
	PeekLine    geometry.Line `json:"peekLine"`
	GhostCell   int           `json:"ghostCell"`
	Blink       bool          `json:"blink"`

	retry *RoundState
}

func newRoundState(level, cells int) *RoundState {
	return &RoundState{
		Level:            level,
		Board:            make([]Cell, cells),
		IceTile:          -1,
		BounceTile:       -1,
		SwapTile:         -1,
		LastPlayerCell:   -1,
		LastOpponentCell: -1,
		FirstPlayerCell:  -1,
		GhostCell:        -1,
	}
}

// Copy returns a deep copy, lines included, so callers never alias the
// board's line table. The safe-retry snapshot is shared since it is never
// modified.
func (rs *RoundState) Copy() *RoundState {
	c := *rs
	c.Board = slices.Clone(rs.Board)
	c.History = slices.Clone(rs.History)
	c.Blocked = rs.Blocked.Clone()
	c.Frozen = rs.Frozen.Clone()
	c.Hidden = rs.Hidden.Clone()
	c.Dimmed = rs.Dimmed.Clone()
	c.Wild = rs.Wild.Clone()
	c.WindBlocked = rs.WindBlocked.Clone()
	c.Marked = rs.Marked.Clone()
	if rs.PlayerLines != nil {
		c.PlayerLines = make([]geometry.Line, len(rs.PlayerLines))
		for i, l := range rs.PlayerLines {
			c.PlayerLines[i] = slices.Clone(l)
		}
	}
	c.LastWinningLine = slices.Clone(rs.LastWinningLine)
	c.PeekLine = slices.Clone(rs.PeekLine)
	return &c
}

func (rs *RoundState) EffectID() string {
	if rs.Effect == nil {
		return ""
	}
	return rs.Effect.ID
}

func (rs *RoundState) ObstacleID() string {
	if rs.Obstacle == nil {
		return ""
	}
	return rs.Obstacle.ID
}

// placeable reports whether cell may ever take a mark this round.
func (rs *RoundState) placeable(cell int) bool {
	return !rs.Blocked.Has(cell) && !rs.WindBlocked.Has(cell) && !rs.Wild.Has(cell) && !rs.Frozen.Has(cell)
}

func (rs *RoundState) open(cell int) bool {
	return rs.Board[cell] == Empty && rs.placeable(cell)
}

// openCells lists every empty placeable cell in ascending order.
func (rs *RoundState) openCells() []int {
	cells := []int{}
	for cell := range rs.Board {
		if rs.open(cell) {
			cells = append(cells, cell)
		}
	}
	return cells
}

// free filters pool to cells that carry no mark and no status yet. Cells
// of the peeked line count as taken.
func (rs *RoundState) free(pool []int) []int {
	cells := []int{}
	for _, cell := range pool {
		if !rs.open(cell) || rs.Hidden.Has(cell) || rs.Dimmed.Has(cell) {
			continue
		}
		if slices.Contains(rs.PeekLine, cell) {
			continue
		}
		if cell == rs.IceTile || cell == rs.BounceTile || cell == rs.SwapTile {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

func (rs *RoundState) removeHistory(cell int) {
	rs.History = slices.DeleteFunc(rs.History, func(m Move) bool { return m.Cell == cell })
}

func (rs *RoundState) countMarks(mark Cell) int {
	n := 0
	for _, c := range rs.Board {
		if c == mark {
			n++
		}
	}
	return n
}
