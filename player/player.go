package player

import (
	"tictacpro/game"
	"tictacpro/gamemaster"
)

type ActionKind int

const (
	Place ActionKind = iota
	UseAbility
)

// Action is what an agent decides to do on its turn.
type Action struct {
	Kind    ActionKind
	Cell    int
	Ability game.Ability
	Args    game.AbilityArgs
}

// Agent plays the player's side of a session. legal is never empty when Act
// is called.
type Agent interface {
	Name() string
	Act(s gamemaster.Snapshot, legal []int) Action
}

type Option func(p *RandomPlayer)

// WithAbilityRate sets the chance of using an available ability instead of
// placing a mark.
func WithAbilityRate(rate float64) Option {
	return func(p *RandomPlayer) {
		p.abilityRate = rate
	}
}

// RandomPlayer places uniformly at random among the legal cells and now and
// then spends an available ability.
type RandomPlayer struct {
	rng         game.Rand
	abilityRate float64
}

func NewRandomPlayer(rng game.Rand, options ...Option) *RandomPlayer {
	p := &RandomPlayer{
		rng:         rng,
		abilityRate: 0.2,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) Act(s gamemaster.Snapshot, legal []int) Action {
	if candidates := abilityActions(s, legal); len(candidates) > 0 && p.rng.Float64() < p.abilityRate {
		a := candidates[p.rng.Intn(len(candidates))]
		// random argument choice
		switch a.Ability {
		case game.Recall:
			cells := marked(s.Round, game.OpponentMark)
			a.Args.Cell = cells[p.rng.Intn(len(cells))]
		case game.CrossSwap:
			cells := movable(s.Round)
			a.Args.Cell = cells[p.rng.Intn(len(cells))]
			a.Args.Target = legal[p.rng.Intn(len(legal))]
		case game.TwinMark:
			a.Args.Cell = legal[p.rng.Intn(len(legal))]
		}
		return a
	}
	return Action{Kind: Place, Cell: legal[p.rng.Intn(len(legal))]}
}

// abilityActions lists the abilities the snapshot allows, leaving out those
// whose arguments cannot be chosen.
func abilityActions(s gamemaster.Snapshot, legal []int) []Action {
	if s.Round == nil {
		return nil
	}
	var actions []Action
	add := func(ok bool, ability game.Ability) {
		if ok {
			actions = append(actions, Action{Kind: UseAbility, Ability: ability})
		}
	}
	add(s.Abilities.SafeRetry, game.SafeRetry)
	add(s.Abilities.SkipTurn, game.SkipTurn)
	add(s.Abilities.Recall && len(marked(s.Round, game.OpponentMark)) > 0, game.Recall)
	add(s.Abilities.CrossSwap && len(movable(s.Round)) > 0 && len(legal) > 1, game.CrossSwap)
	add(s.Abilities.TwinMark && len(legal) > 1, game.TwinMark)
	return actions
}

func marked(rs *game.RoundState, mark game.Cell) []int {
	cells := []int{}
	for cell, c := range rs.Board {
		if c == mark && !rs.Frozen.Has(cell) {
			cells = append(cells, cell)
		}
	}
	return cells
}

func movable(rs *game.RoundState) []int {
	return marked(rs, game.PlayerMark)
}

// GreedyPlayer takes the placement with the best immediate score and breaks
// ties at random. It never uses abilities.
type GreedyPlayer struct {
	engine *game.Engine
	rng    game.Rand
}

func NewGreedyPlayer(engine *game.Engine, rng game.Rand) *GreedyPlayer {
	return &GreedyPlayer{engine: engine, rng: rng}
}

func (p *GreedyPlayer) Name() string {
	return "greedy"
}

func (p *GreedyPlayer) Act(s gamemaster.Snapshot, legal []int) Action {
	best, bestScore := []int{}, 0
	for _, cell := range legal {
		next, out, err := p.engine.ApplyMove(s.Round, cell, game.Player)
		if err != nil {
			continue
		}
		score := p.engine.ScoreMove(next, out, game.OnMove)
		switch {
		case len(best) == 0 || score > bestScore:
			best, bestScore = []int{cell}, score
		case score == bestScore:
			best = append(best, cell)
		}
	}
	if len(best) == 0 {
		best = legal
	}
	return Action{Kind: Place, Cell: best[p.rng.Intn(len(best))]}
}
