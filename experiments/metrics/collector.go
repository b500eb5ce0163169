package metrics

import (
	"sync/atomic"
	"time"
)

// RoundMetric describes one finished level of a session.
type RoundMetric struct {
	Level         int
	Effect        string
	Obstacle      string
	Lines         int
	OpponentLines int
	Coins         int
	OpponentScore int
	PlayerMoves   int
	OpponentMoves int
	Abilities     int
	Full          bool
}

type SessionMetric struct {
	Seed       uint64
	Agent      string
	Levels     int
	TotalScore int
	Turns      int
	Completed  bool // false when the turn guard stopped the session
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// RunMetric aggregates the throughput of a batch of sessions.
type RunMetric struct {
	Goroutines    int
	Sessions      int
	Duration      time.Duration
	PlayerMoves   int
	OpponentMoves int
	Abilities     int
	Rejected      int
}

// Collector counts actions across concurrently running sessions.
type Collector interface {
	Start(goroutines int)
	AddSession()
	AddPlayerMove()
	AddOpponentMove()
	AddAbility()
	AddRejected()
	Complete() RunMetric
}

type collector struct {
	goroutines    int
	startTime     time.Time
	sessions      atomic.Int64
	playerMoves   atomic.Int64
	opponentMoves atomic.Int64
	abilities     atomic.Int64
	rejected      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *collector) AddSession() {
	m.sessions.Add(1)
}

func (m *collector) AddPlayerMove() {
	m.playerMoves.Add(1)
}

func (m *collector) AddOpponentMove() {
	m.opponentMoves.Add(1)
}

func (m *collector) AddAbility() {
	m.abilities.Add(1)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Goroutines:    m.goroutines,
		Sessions:      int(m.sessions.Load()),
		Duration:      time.Since(m.startTime),
		PlayerMoves:   int(m.playerMoves.Load()),
		OpponentMoves: int(m.opponentMoves.Load()),
		Abilities:     int(m.abilities.Load()),
		Rejected:      int(m.rejected.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int) {}
func (m *dummyCollector) AddSession()          {}
func (m *dummyCollector) AddPlayerMove()       {}
func (m *dummyCollector) AddOpponentMove()     {}
func (m *dummyCollector) AddAbility()          {}
func (m *dummyCollector) AddRejected()         {}
func (m *dummyCollector) Complete() RunMetric  { return RunMetric{} }
