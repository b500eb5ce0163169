package game

import (
	"errors"
	"fmt"
	"sort"

	"tictacpro/catalog"
	"tictacpro/geometry"

	"golang.org/x/exp/maps"
)

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrAbilityUnavailable = errors.New("ability unavailable")
)

const (
	DefaultBasePoints = 1000
	DefaultLineCap    = 3
)

// Rand is the random source every randomized operation takes explicitly.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

type Option func(e *Engine)

func WithBasePoints(points int) Option {
	return func(e *Engine) {
		if points > 0 {
			e.basePoints = points
		}
	}
}

func WithLineCap(lines int) Option {
	return func(e *Engine) {
		if lines > 0 {
			e.lineCap = lines
		}
	}
}

// Engine applies the rules of one board geometry. It holds no round state
// and is safe for concurrent use.
type Engine struct {
	board      *geometry.Board
	catalog    *catalog.Catalog
	handlers   map[string]handler
	basePoints int
	lineCap    int
}

func NewEngine(board *geometry.Board, c *catalog.Catalog, options ...Option) (*Engine, error) {
	e := &Engine{
		board:      board,
		catalog:    c,
		handlers:   registry(),
		basePoints: DefaultBasePoints,
		lineCap:    DefaultLineCap,
	}
	for _, option := range options {
		option(e)
	}
	if err := e.checkRegistry(); err != nil {
		return nil, err
	}
	return e, nil
}

// checkRegistry requires a one-to-one match between catalog ids and handlers.
func (e *Engine) checkRegistry() error {
	for _, id := range e.catalog.IDs() {
		if _, ok := e.handlers[id]; !ok {
			return fmt.Errorf("%w: no rule registered for %q", catalog.ErrIntegrity, id)
		}
	}
	ids := maps.Keys(e.handlers)
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := e.catalog.Lookup(id); err != nil {
			return fmt.Errorf("%w: rule %q has no catalog entry: %v", catalog.ErrIntegrity, id, err)
		}
	}
	return nil
}

func (e *Engine) Board() *geometry.Board {
	return e.board
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *Engine) BasePoints() int {
	return e.basePoints
}

func (e *Engine) LineCap() int {
	return e.lineCap
}

// NewRound returns an empty round with no modifiers.
func (e *Engine) NewRound(level int) *RoundState {
	return newRoundState(level, e.board.Cells())
}

// Full reports whether no empty placeable cell is left.
func (e *Engine) Full(rs *RoundState) bool {
	for cell := range rs.Board {
		if rs.open(cell) {
			return false
		}
	}
	return true
}

// Complete is the round-completion predicate.
func (e *Engine) Complete(rs *RoundState) bool {
	return rs.LinesCompleted >= e.lineCap || e.Full(rs)
}

func (e *Engine) active(rs *RoundState) []activeRule {
	rules := make([]activeRule, 0, 2)
	for _, def := range []*catalog.Definition{rs.Effect, rs.Obstacle} {
		if def == nil {
			continue
		}
		rules = append(rules, activeRule{def: *def, handler: e.handlers[def.ID]})
	}
	return rules
}

type activeRule struct {
	def     catalog.Definition
	handler handler
}
