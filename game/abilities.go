package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Ability ids match the placement effects that grant them.
type Ability string

const (
	SafeRetry Ability = "safe-retry"
	CrossSwap Ability = "cross-swap"
	SkipTurn  Ability = "skip-turn"
	Recall    Ability = "recall"
	TwinMark  Ability = "twin-mark"
)

type AbilityArgs struct {
	Cell   int `json:"cell"`
	Target int `json:"target"`
}

// Availability is the per-ability flag set shown to the presentation layer.
type Availability struct {
	SafeRetry bool `json:"safeRetry"`
	CrossSwap bool `json:"crossSwap"`
	SkipTurn  bool `json:"skipTurn"`
	Recall    bool `json:"recall"`
	TwinMark  bool `json:"twinMark"`
}

func (e *Engine) Available(rs *RoundState) Availability {
	return Availability{
		SafeRetry: e.canRetry(rs) == nil,
		CrossSwap: e.granted(rs, CrossSwap, rs.Used.CrossSwap) == nil && rs.countMarks(PlayerMark) > 0,
		SkipTurn:  e.granted(rs, SkipTurn, rs.Used.SkipTurn) == nil,
		Recall:    e.granted(rs, Recall, rs.Used.Recall) == nil && rs.ObstacleID() != "sticky-o" && rs.countMarks(OpponentMark) > 0,
		TwinMark:  e.granted(rs, TwinMark, rs.Used.TwinMark) == nil,
	}
}

// UseAbility consumes a one-shot ability. Placements made by an ability are
// scored but never hand the turn to the opponent.
func (e *Engine) UseAbility(rs *RoundState, ability Ability, args AbilityArgs, rng Rand) (*RoundState, []Outcome, error) {
	var (
		next     *RoundState
		outcomes []Outcome
		err      error
	)
	switch ability {
	case SafeRetry:
		next, err = e.safeRetry(rs)
	case Recall:
		next, err = e.recall(rs, args.Cell)
	case SkipTurn:
		if err = e.granted(rs, SkipTurn, rs.Used.SkipTurn); err == nil {
			next = rs.Copy()
			next.Used.SkipTurn = true
			next.PendingSkip = true
		}
	case CrossSwap:
		next, outcomes, err = e.crossSwap(rs, args.Cell, args.Target, rng)
	case TwinMark:
		next, outcomes, err = e.twinMark(rs, args.Cell, rng)
	default:
		err = fmt.Errorf("%w: unknown ability %q", ErrAbilityUnavailable, ability)
	}
	if err != nil {
		return rs, nil, err
	}
	log.Debug().Msgf("ability %s used on level %d", ability, rs.Level)
	return next, outcomes, nil
}

func (e *Engine) granted(rs *RoundState, ability Ability, used bool) error {
	if rs.EffectID() != string(ability) {
		return fmt.Errorf("%w: %s is not active this round", ErrAbilityUnavailable, ability)
	}
	if used {
		return fmt.Errorf("%w: %s already used this round", ErrAbilityUnavailable, ability)
	}
	return nil
}

func (e *Engine) canRetry(rs *RoundState) error {
	if err := e.granted(rs, SafeRetry, rs.Used.SafeRetry); err != nil {
		return err
	}
	if rs.retry == nil {
		return fmt.Errorf("%w: no move to take back", ErrAbilityUnavailable)
	}
	if rs.Frozen.Has(rs.LastPlayerCell) {
		return fmt.Errorf("%w: cell %d is frozen", ErrAbilityUnavailable, rs.LastPlayerCell)
	}
	return nil
}

// safeRetry restores the state captured before the player's last move,
// which also undoes the opponent's reply.
func (e *Engine) safeRetry(rs *RoundState) (*RoundState, error) {
	if err := e.canRetry(rs); err != nil {
		return nil, err
	}
	next := rs.retry.Copy()
	next.retry = nil
	next.Used.SafeRetry = true
	return next, nil
}

func (e *Engine) recall(rs *RoundState, cell int) (*RoundState, error) {
	if err := e.granted(rs, Recall, rs.Used.Recall); err != nil {
		return nil, err
	}
	if rs.ObstacleID() == "sticky-o" {
		return nil, fmt.Errorf("%w: opponent marks are sticky", ErrAbilityUnavailable)
	}
	if !e.board.InRange(cell) || rs.Board[cell] != OpponentMark {
		return nil, fmt.Errorf("%w: cell %d holds no opponent mark", ErrAbilityUnavailable, cell)
	}
	if rs.Frozen.Has(cell) {
		return nil, fmt.Errorf("%w: cell %d is frozen", ErrAbilityUnavailable, cell)
	}
	next := rs.Copy()
	e.lift(next, cell)
	next.Used.Recall = true
	return next, nil
}

// crossSwap moves one of the player's marks to a target the player could
// legally place on once the mark is lifted.
func (e *Engine) crossSwap(rs *RoundState, cell, target int, rng Rand) (*RoundState, []Outcome, error) {
	if err := e.granted(rs, CrossSwap, rs.Used.CrossSwap); err != nil {
		return nil, nil, err
	}
	if !e.board.InRange(cell) || rs.Board[cell] != PlayerMark {
		return nil, nil, fmt.Errorf("%w: cell %d holds no player mark", ErrAbilityUnavailable, cell)
	}
	if rs.Frozen.Has(cell) {
		return nil, nil, fmt.Errorf("%w: cell %d is frozen", ErrAbilityUnavailable, cell)
	}
	if !e.board.InRange(target) || !rs.open(target) {
		return nil, nil, fmt.Errorf("%w: target %d is not open", ErrAbilityUnavailable, target)
	}
	next := rs.Copy()
	e.lift(next, cell)
	if err := e.CheckMove(next, target, Player); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAbilityUnavailable, err)
	}
	next.Used.CrossSwap = true

	out := e.apply(next, target, Player, false)
	out.Delta = e.ScoreMove(next, out, OnMove)
	next.LevelCoins += out.Delta
	return next, append([]Outcome{out}, e.afterMove(next, out, rng)...), nil
}

// twinMark is an extra player placement within the same turn.
func (e *Engine) twinMark(rs *RoundState, cell int, rng Rand) (*RoundState, []Outcome, error) {
	if err := e.granted(rs, TwinMark, rs.Used.TwinMark); err != nil {
		return nil, nil, err
	}
	if err := e.CheckMove(rs, cell, Player); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAbilityUnavailable, err)
	}
	next := rs.Copy()
	next.Used.TwinMark = true
	return next, e.turn(next, cell, Player, rng), nil
}
