package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tictacpro/game"
	"tictacpro/geometry"

	"github.com/rs/zerolog/log"
)

var (
	ErrWrongPhase          = errors.New("action not allowed in this phase")
	ErrAwaitingOpponent    = errors.New("waiting for the opponent")
	ErrNotAwaitingOpponent = errors.New("opponent has no pending turn")
)

const (
	DefaultMaxLevels     = 10
	DefaultOpponentDelay = 300 * time.Millisecond
	updateBuffer         = 16
)

type Config struct {
	MaxLevels     int
	OpponentDelay time.Duration
}

// Snapshot is the read-only projection handed to the presentation layer.
type Snapshot struct {
	Phase            Phase             `json:"phase"`
	Level            int               `json:"level"`
	MaxLevels        int               `json:"maxLevels"`
	TotalScore       int               `json:"totalScore"`
	Round            *game.RoundState  `json:"round,omitempty"`
	Abilities        game.Availability `json:"abilities"`
	AwaitingOpponent bool              `json:"awaitingOpponent"`
	OpponentDelayMs  int64             `json:"opponentDelayMs"`
	BlinkMs          int64             `json:"blinkMs"`
}

// GameMaster drives the phase machine of one session. Moves are processed
// strictly in order: after a player move the opponent's reply must be
// resolved through OpponentTurn before the next player action.
type GameMaster struct {
	engine *game.Engine
	rng    game.Rand
	cfg    Config

	mu         sync.Mutex
	phase      Phase
	level      int
	totalScore int
	round      *game.RoundState
	awaiting   bool
	updates    chan Snapshot
}

func New(engine *game.Engine, rng game.Rand, cfg Config) *GameMaster {
	if cfg.MaxLevels <= 0 {
		cfg.MaxLevels = DefaultMaxLevels
	}
	if cfg.OpponentDelay <= 0 {
		cfg.OpponentDelay = DefaultOpponentDelay
	}
	return &GameMaster{
		engine:  engine,
		rng:     rng,
		cfg:     cfg,
		phase:   Menu,
		updates: make(chan Snapshot, updateBuffer),
	}
}

// Start leaves the menu (or a finished game) and opens level 1.
func (gm *GameMaster) Start() error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.phase != Menu && gm.phase != GameOver {
		return fmt.Errorf("%w: cannot start from %s", ErrWrongPhase, gm.phase)
	}
	gm.totalScore = 0
	gm.startLevel(1)
	return nil
}

// Move places the player's mark on cell.
func (gm *GameMaster) Move(cell int) ([]game.Outcome, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.ready(); err != nil {
		return nil, err
	}
	next, outcomes, err := gm.engine.RequestMove(gm.round, cell, game.Player, gm.rng)
	if err != nil {
		return nil, err
	}
	gm.round = next
	gm.afterPlayer(true)
	gm.publish()
	return outcomes, nil
}

// OpponentTurn resolves the pending opponent reply. Callers schedule it
// OpponentDelay after the player's move.
func (gm *GameMaster) OpponentTurn() ([]game.Outcome, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.phase != Playing {
		return nil, fmt.Errorf("%w: no round in progress", ErrWrongPhase)
	}
	if !gm.awaiting {
		return nil, ErrNotAwaitingOpponent
	}
	gm.awaiting = false
	next, outcomes, ok := gm.engine.RequestOpponentMove(gm.round, gm.rng)
	if ok {
		gm.round = next
	}
	if !gm.finishIfComplete() && len(gm.engine.LegalMoves(gm.round, game.Player)) == 0 {
		log.Debug().Msgf("level %d: player has no legal move and passes", gm.level)
		gm.awaiting = true
	}
	gm.publish()
	return outcomes, nil
}

// UseAbility consumes a one-shot ability. The turn stays with the player.
func (gm *GameMaster) UseAbility(ability game.Ability, args game.AbilityArgs) ([]game.Outcome, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.ready(); err != nil {
		return nil, err
	}
	next, outcomes, err := gm.engine.UseAbility(gm.round, ability, args, gm.rng)
	if err != nil {
		return nil, err
	}
	gm.round = next
	gm.afterPlayer(false)
	gm.publish()
	return outcomes, nil
}

// NextLevel leaves level_complete for the next level, or ends the game after
// the final level.
func (gm *GameMaster) NextLevel() error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.phase != LevelComplete {
		return fmt.Errorf("%w: level %d is not complete", ErrWrongPhase, gm.level)
	}
	if gm.level >= gm.cfg.MaxLevels {
		gm.phase = GameOver
		log.Info().Msgf("game over after %d levels with %d points", gm.level, gm.totalScore)
		gm.publish()
		return nil
	}
	gm.startLevel(gm.level + 1)
	return nil
}

func (gm *GameMaster) Board() *geometry.Board {
	return gm.engine.Board()
}

func (gm *GameMaster) Snapshot() Snapshot {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.snapshot()
}

func (gm *GameMaster) LegalMoves() []int {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.phase != Playing || gm.awaiting {
		return []int{}
	}
	return gm.engine.LegalMoves(gm.round, game.Player)
}

// OpponentDelay is how long presentation should wait before OpponentTurn.
func (gm *GameMaster) OpponentDelay() time.Duration {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.opponentDelay()
}

func (gm *GameMaster) AwaitingOpponent() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.awaiting
}

func (gm *GameMaster) Phase() Phase {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.phase
}

// Updates delivers a snapshot after every state change. Snapshots are
// dropped while the buffer is full.
func (gm *GameMaster) Updates() <-chan Snapshot {
	return gm.updates
}

func (gm *GameMaster) ready() error {
	if gm.phase != Playing {
		return fmt.Errorf("%w: no round in progress", ErrWrongPhase)
	}
	if gm.awaiting {
		return ErrAwaitingOpponent
	}
	return nil
}

func (gm *GameMaster) startLevel(level int) {
	gm.level = level
	gm.round = gm.engine.StartRound(level, gm.rng)
	gm.phase = Playing
	gm.awaiting = len(gm.engine.LegalMoves(gm.round, game.Player)) == 0
	log.Info().Msgf("level %d started with effect %s and obstacle %q", level, gm.round.EffectID(), gm.round.ObstacleID())
	gm.publish()
}

// afterPlayer decides who acts next after a player action. A regular move
// hands the turn over unless skip-turn is pending.
func (gm *GameMaster) afterPlayer(handOver bool) {
	if gm.finishIfComplete() {
		return
	}
	if handOver && gm.round.PendingSkip {
		next := gm.round.Copy()
		next.PendingSkip = false
		gm.round = next
		handOver = false
		log.Debug().Msgf("level %d: opponent turn skipped", gm.level)
	}
	gm.awaiting = handOver || len(gm.engine.LegalMoves(gm.round, game.Player)) == 0
}

func (gm *GameMaster) finishIfComplete() bool {
	if !gm.engine.Complete(gm.round) {
		return false
	}
	next, delta := gm.engine.EndRound(gm.round)
	gm.round = next
	gm.totalScore += next.LevelCoins
	gm.phase = LevelComplete
	gm.awaiting = false
	log.Info().Msgf("level %d complete: %d lines, %d coins (round end %+d), total %d",
		gm.level, next.LinesCompleted, next.LevelCoins, delta, gm.totalScore)
	return true
}

func (gm *GameMaster) opponentDelay() time.Duration {
	if gm.round != nil && gm.round.Effect != nil {
		if d := gm.round.Effect.Duration(); d > 0 {
			return d
		}
	}
	return gm.cfg.OpponentDelay
}

func (gm *GameMaster) snapshot() Snapshot {
	s := Snapshot{
		Phase:            gm.phase,
		Level:            gm.level,
		MaxLevels:        gm.cfg.MaxLevels,
		TotalScore:       gm.totalScore,
		AwaitingOpponent: gm.awaiting,
		OpponentDelayMs:  gm.opponentDelay().Milliseconds(),
	}
	if gm.round != nil {
		s.Round = gm.round.Copy()
		s.Abilities = gm.engine.Available(gm.round)
		if gm.round.Obstacle != nil {
			s.BlinkMs = gm.round.Obstacle.Duration().Milliseconds()
		}
	}
	return s
}

func (gm *GameMaster) publish() {
	select {
	case gm.updates <- gm.snapshot():
	default:
	}
}
