package communication

import (
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/geometry"
)

type RequestType string

const (
	Start   RequestType = "start"
	Move    RequestType = "move"
	Ability RequestType = "ability"
	Next    RequestType = "next"
	State   RequestType = "state"
)

// Request is one presentation action sent to the server.
type Request struct {
	Type    RequestType  `json:"type"`
	Cell    int          `json:"cell"`
	Target  int          `json:"target"`
	Ability game.Ability `json:"ability,omitempty"`
}

// Response answers a request, or carries the opponent's reply when Opponent
// is set.
type Response struct {
	Snapshot gamemaster.Snapshot `json:"snapshot"`
	Legal    []int               `json:"legal"`
	Outcomes []game.Outcome      `json:"outcomes,omitempty"`
	Lines    []geometry.Line     `json:"lines"`
	Opponent bool                `json:"opponent,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Communicator abstracts the transport between presentation and the game.
type Communicator interface {
	Send(req Request) error
	Receive() (Response, error)
	Close() error
}

// LinesOf collects the lines completed by outcomes.
func LinesOf(outcomes []game.Outcome) []geometry.Line {
	lines := []geometry.Line{}
	for _, out := range outcomes {
		lines = append(lines, out.Lines...)
	}
	return lines
}
