package game

import (
	"tictacpro/catalog"
	"tictacpro/utils"

	"github.com/rs/zerolog/log"
)

// SelectRoundModifiers draws one effect uniformly from the effects eligible
// on this board and, on even levels, one obstacle the same way.
func (e *Engine) SelectRoundModifiers(level int, rng Rand) (catalog.Definition, *catalog.Definition) {
	hasCenter := e.board.Center() >= 0
	effects := catalog.Eligible(e.catalog.Effects(), e.board.Side, hasCenter)
	effect := effects[rng.Intn(len(effects))]
	if level%2 != 0 {
		return effect, nil
	}
	obstacles := catalog.Eligible(e.catalog.Obstacles(), e.board.Side, hasCenter)
	if len(obstacles) == 0 {
		return effect, nil
	}
	obstacle := obstacles[rng.Intn(len(obstacles))]
	return effect, &obstacle
}

// InitializeModifier activates def on a copy of rs and runs its setup.
func (e *Engine) InitializeModifier(rs *RoundState, def catalog.Definition, rng Rand) *RoundState {
	next := rs.Copy()
	switch def.Kind {
	case catalog.Effect:
		next.Effect = &def
	case catalog.Obstacle:
		next.Obstacle = &def
	}
	if h := e.handlers[def.ID]; h.setup != nil {
		h.setup(e, next, def, rng)
	}
	log.Debug().Msgf("level %d: %s %s active", rs.Level, def.Kind, def.ID)
	return next
}

// StartRound draws the modifiers for level and initializes them, effect first.
func (e *Engine) StartRound(level int, rng Rand) *RoundState {
	effect, obstacle := e.SelectRoundModifiers(level, rng)
	return e.PrepareRound(level, effect, obstacle, rng)
}

// PrepareRound builds a round with the given modifiers.
func (e *Engine) PrepareRound(level int, effect catalog.Definition, obstacle *catalog.Definition, rng Rand) *RoundState {
	rs := e.InitializeModifier(e.NewRound(level), effect, rng)
	if obstacle != nil {
		rs = e.InitializeModifier(rs, *obstacle, rng)
	}
	return rs
}

// sample draws up to n cells from pool that have no mark and no status. With
// spread set, no two drawn cells touch, diagonals included.
func (e *Engine) sample(rs *RoundState, pool []int, n int, spread bool, rng Rand) []int {
	var accept func([]int, int) bool
	if spread {
		accept = func(picked []int, cell int) bool {
			for _, p := range picked {
				if e.board.AreAdjacent(p, cell) {
					return false
				}
			}
			return true
		}
	}
	return utils.Sample(rng, rs.free(pool), n, accept)
}

func (e *Engine) allCells() []int {
	cells := make([]int, e.board.Cells())
	for i := range cells {
		cells[i] = i
	}
	return cells
}

// placeFree puts a player mark on the board during setup. It counts as the
// player's placement but is never scored.
func (e *Engine) placeFree(rs *RoundState, cell int) {
	e.place(rs, cell, Player)
	e.derive(rs, cell, Player)
}
