package game

import "fmt"

// CheckMove returns a wrapped ErrIllegalMove when mover may not place on cell.
// Row, column and forced-opening constraints bind the player only.
func (e *Engine) CheckMove(rs *RoundState, cell int, mover Mover) error {
	if !e.board.InRange(cell) {
		return fmt.Errorf("%w: cell %d is off the board", ErrIllegalMove, cell)
	}
	if rs.Board[cell] != Empty {
		return fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, cell)
	}
	switch {
	case rs.Blocked.Has(cell), rs.WindBlocked.Has(cell):
		return fmt.Errorf("%w: cell %d is blocked", ErrIllegalMove, cell)
	case rs.Frozen.Has(cell):
		return fmt.Errorf("%w: cell %d is frozen", ErrIllegalMove, cell)
	case rs.Wild.Has(cell):
		return fmt.Errorf("%w: cell %d is wild", ErrIllegalMove, cell)
	}
	if mover != Player {
		return nil
	}
	return e.allowed(rs, cell)
}

// allowed runs the placement rules of the active modifiers for the player.
func (e *Engine) allowed(rs *RoundState, cell int) error {
	for _, rule := range e.active(rs) {
		if rule.handler.allow == nil {
			continue
		}
		if err := rule.handler.allow(e, rs, cell); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrIllegalMove, rule.def.ID, err)
		}
	}
	return nil
}

func (e *Engine) IsLegalMove(rs *RoundState, cell int, mover Mover) bool {
	return e.CheckMove(rs, cell, mover) == nil
}

// LegalMoves lists every cell mover may place on, in ascending order.
func (e *Engine) LegalMoves(rs *RoundState, mover Mover) []int {
	moves := []int{}
	for cell := range rs.Board {
		if e.IsLegalMove(rs, cell, mover) {
			moves = append(moves, cell)
		}
	}
	return moves
}
