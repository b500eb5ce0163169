package engine

import (
	"errors"
	"fmt"
	"time"

	"tictacpro/experiments/metrics"
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/meta"
	"tictacpro/player"
	"tictacpro/render"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// WithMaxTurns bounds the actions taken within one level.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine plays complete sessions: the agent acts for the player and the
// opponent's reply is resolved right away instead of after a delay.
type Engine struct {
	gm        *gamemaster.GameMaster
	agent     player.Agent
	collector metrics.Collector
	maxTurns  int
}

func New(gm *gamemaster.GameMaster, agent player.Agent, options ...Option) *Engine {
	e := &Engine{
		gm:        gm,
		agent:     agent,
		collector: metrics.NewDummyCollector(),
		maxTurns:  meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run starts a session and plays it until game over or until a level runs
// out of turns.
func (e *Engine) Run() (metrics.SessionMetric, []metrics.RoundMetric, error) {
	session := metrics.SessionMetric{Agent: e.agent.Name(), StartTime: time.Now()}
	rounds := []metrics.RoundMetric{}

	if err := e.gm.Start(); err != nil {
		return session, rounds, err
	}

	round := metrics.RoundMetric{}
	turns := 0
	for session.EndTime.IsZero() {
		switch e.gm.Phase() {
		case gamemaster.Playing:
			if turns >= e.maxTurns {
				log.Warn().Msgf("level %d stopped after %d turns", e.gm.Snapshot().Level, turns)
				session.EndTime = time.Now()
				continue
			}
			turns++
			session.Turns++
			if err := e.step(&round); err != nil {
				return session, rounds, err
			}

		case gamemaster.LevelComplete:
			s := e.gm.Snapshot()
			rounds = append(rounds, finish(round, s))
			if ev := log.Debug(); ev.Enabled() {
				ev.Msgf("level %d complete\n%s", s.Level, render.Round(s.Round, e.gm.Board().Side))
			}
			round, turns = metrics.RoundMetric{}, 0
			if err := e.gm.NextLevel(); err != nil {
				return session, rounds, err
			}

		case gamemaster.GameOver:
			session.Completed = true
			session.EndTime = time.Now()

		default:
			return session, rounds, fmt.Errorf("unexpected phase %s", e.gm.Phase())
		}
	}

	s := e.gm.Snapshot()
	session.Levels = len(rounds)
	session.TotalScore = s.TotalScore
	session.Duration = session.EndTime.Sub(session.StartTime)
	e.collector.AddSession()
	log.Info().Msgf("session finished: %d levels, %d points, %d turns", session.Levels, session.TotalScore, session.Turns)
	return session, rounds, nil
}

// step takes one action: the opponent's pending reply, or the agent's move.
func (e *Engine) step(round *metrics.RoundMetric) error {
	if e.gm.AwaitingOpponent() {
		outcomes, err := e.gm.OpponentTurn()
		if err != nil {
			return err
		}
		e.count(round, outcomes)
		return nil
	}

	legal := e.gm.LegalMoves()
	if len(legal) == 0 {
		return fmt.Errorf("player has no legal move on level %d", e.gm.Snapshot().Level)
	}
	action := e.agent.Act(e.gm.Snapshot(), legal)

	var (
		outcomes []game.Outcome
		err      error
	)
	switch action.Kind {
	case player.UseAbility:
		outcomes, err = e.gm.UseAbility(action.Ability, action.Args)
		if err == nil {
			round.Abilities++
			e.collector.AddAbility()
		}
	default:
		outcomes, err = e.gm.Move(action.Cell)
	}
	if errors.Is(err, game.ErrIllegalMove) || errors.Is(err, game.ErrAbilityUnavailable) {
		log.Debug().Err(err).Msg("action rejected")
		e.collector.AddRejected()
		return nil
	}
	if err != nil {
		return err
	}
	e.count(round, outcomes)
	return nil
}

func (e *Engine) count(round *metrics.RoundMetric, outcomes []game.Outcome) {
	for _, out := range outcomes {
		if out.Mover == game.Player {
			round.PlayerMoves++
			e.collector.AddPlayerMove()
		} else {
			round.OpponentMoves++
			e.collector.AddOpponentMove()
		}
	}
}

func finish(round metrics.RoundMetric, s gamemaster.Snapshot) metrics.RoundMetric {
	rs := s.Round
	round.Level = s.Level
	round.Effect = rs.EffectID()
	round.Obstacle = rs.ObstacleID()
	round.Lines = rs.LinesCompleted
	round.OpponentLines = rs.OpponentLines
	round.Coins = rs.LevelCoins
	round.OpponentScore = rs.OpponentScore
	round.Full = true
	for _, c := range rs.Board {
		if c == game.Empty {
			round.Full = false
			break
		}
	}
	return round
}
