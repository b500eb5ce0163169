package game

import (
	"math"

	"tictacpro/catalog"
)

type ScoreContext int

const (
	OnMove ScoreContext = iota
	OnRoundEnd
)

// Contribution is one modifier's share of a score. Points are added to the
// subtotal (penalties are negative); a positive Multiplier scales the
// subtotal after every point has been added.
type Contribution struct {
	Points     int
	Multiplier float64
}

// scoreInput is what a move-context scoring rule sees.
type scoreInput struct {
	def  catalog.Definition
	out  Outcome
	base int
	last bool // the move ends the round
}

func (in scoreInput) first() bool {
	return in.out.LinesBefore == 0 && len(in.out.Lines) > 0
}

// ScoreMove computes the points delta of a resolved placement, or of the
// round-end hooks when ctx is OnRoundEnd. rs must be the state after the
// placement. Opponent placements only earn base points.
func (e *Engine) ScoreMove(rs *RoundState, out Outcome, ctx ScoreContext) int {
	if ctx == OnRoundEnd {
		return e.scoreRoundEnd(rs)
	}

	subtotal := e.basePoints * len(out.Lines)
	if out.Mover != Player {
		return subtotal
	}

	in := scoreInput{
		out:  out,
		base: e.basePoints,
		last: len(out.Lines) > 0 && (rs.LinesCompleted >= e.lineCap || e.Full(rs)),
	}
	parts := []Contribution{}
	for _, rule := range e.active(rs) {
		if rule.handler.score == nil {
			continue
		}
		in.def = rule.def
		parts = append(parts, rule.handler.score(e, rs, in))
	}
	return compose(subtotal, parts)
}

// EndRound applies the round-end hooks once and banks their delta.
func (e *Engine) EndRound(rs *RoundState) (*RoundState, int) {
	next := rs.Copy()
	delta := e.scoreRoundEnd(next)
	next.LevelCoins += delta
	return next, delta
}

func (e *Engine) scoreRoundEnd(rs *RoundState) int {
	parts := []Contribution{}
	for _, rule := range e.active(rs) {
		if rule.handler.roundEnd == nil {
			continue
		}
		parts = append(parts, rule.handler.roundEnd(e, rs, rule.def))
	}
	carry := rs.LevelCoins
	return compose(carry, parts) - carry
}

// compose sums every point contribution into subtotal, then applies the
// product of the multipliers.
func compose(subtotal int, parts []Contribution) int {
	points := subtotal
	multiplier := 1.0
	for _, p := range parts {
		points += p.Points
		if p.Multiplier > 0 {
			multiplier *= p.Multiplier
		}
	}
	return int(math.Round(float64(points) * multiplier))
}
