package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"tictacpro/communication"
	"tictacpro/game"
	"tictacpro/gamemaster"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Server hosts one game session per websocket connection.
type Server struct {
	engine   *game.Engine
	cfg      gamemaster.Config
	seed     uint64
	sessions atomic.Uint64
	upgrader websocket.Upgrader
}

// NewServer serves sessions of engine. Connection i is seeded with seed+i.
func NewServer(engine *game.Engine, cfg gamemaster.Config, seed uint64) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		seed:   seed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Start listens on addr and serves the websocket endpoint at /ws.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Handle)
	log.Info().Msgf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	id := s.sessions.Add(1)
	rng := rand.New(rand.NewSource(s.seed + id))
	sess := &session{
		id:   id,
		conn: conn,
		gm:   gamemaster.New(s.engine, rng, s.cfg),
	}
	log.Info().Msgf("session %d connected from %s", id, r.RemoteAddr)
	sess.serve()
	log.Info().Msgf("session %d disconnected", id)
}

type session struct {
	id   uint64
	conn *websocket.Conn
	gm   *gamemaster.GameMaster

	mu     sync.Mutex // guards writes, timer and closed
	timer  *time.Timer
	closed bool
}

func (s *session) serve() {
	defer s.close()
	for {
		var req communication.Request
		if err := s.conn.ReadJSON(&req); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Warn().Err(err).Msgf("session %d read failed", s.id)
			}
			return
		}
		resp := s.handle(req)
		if err := s.write(resp); err != nil {
			return
		}
		if s.gm.AwaitingOpponent() {
			s.scheduleOpponent()
		}
	}
}

func (s *session) handle(req communication.Request) communication.Response {
	var (
		outcomes []game.Outcome
		err      error
	)
	switch req.Type {
	case communication.Start:
		err = s.gm.Start()
	case communication.Move:
		outcomes, err = s.gm.Move(req.Cell)
	case communication.Ability:
		outcomes, err = s.gm.UseAbility(req.Ability, game.AbilityArgs{Cell: req.Cell, Target: req.Target})
	case communication.Next:
		err = s.gm.NextLevel()
	case communication.State:
	default:
		err = fmt.Errorf("unknown request type %q", req.Type)
	}
	if err != nil {
		log.Debug().Err(err).Msgf("session %d rejected %s", s.id, req.Type)
	}
	return s.response(outcomes, err)
}

func (s *session) response(outcomes []game.Outcome, err error) communication.Response {
	resp := communication.Response{
		Snapshot: s.gm.Snapshot(),
		Legal:    s.gm.LegalMoves(),
		Outcomes: outcomes,
		Lines:    communication.LinesOf(outcomes),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// scheduleOpponent resolves the opponent's reply after the current delay and
// pushes it to the client. Replies keep coming while the player has to pass.
func (s *session) scheduleOpponent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(s.gm.OpponentDelay(), func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()

		outcomes, err := s.gm.OpponentTurn()
		if errors.Is(err, gamemaster.ErrNotAwaitingOpponent) || errors.Is(err, gamemaster.ErrWrongPhase) {
			return
		}
		resp := s.response(outcomes, err)
		resp.Opponent = true
		if s.write(resp) != nil {
			return
		}
		if s.gm.AwaitingOpponent() {
			s.scheduleOpponent()
		}
	})
}

func (s *session) write(resp communication.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return websocket.ErrCloseSent
	}
	if err := s.conn.WriteJSON(resp); err != nil {
		log.Warn().Err(err).Msgf("session %d write failed", s.id)
		return err
	}
	return nil
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.conn.Close()
}
