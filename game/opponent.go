package game

// SelectOpponentMove picks the opponent's cell: a special-cased pick when the
// active effect has one, otherwise a uniform draw from the biased pool, or
// from every open cell when the bias leaves nothing. It reports false when no
// cell is open.
func (e *Engine) SelectOpponentMove(rs *RoundState, rng Rand) (int, bool) {
	candidates := rs.openCells()
	if len(candidates) == 0 {
		return -1, false
	}

	rules := e.active(rs)
	for _, rule := range rules {
		if rule.handler.pick == nil {
			continue
		}
		if cell, ok := rule.handler.pick(e, rs, candidates); ok {
			return cell, true
		}
	}

	pool := candidates
	for _, rule := range rules {
		if rule.handler.bias == nil {
			continue
		}
		if biased := rule.handler.bias(e, rs, candidates); len(biased) > 0 {
			pool = biased
			break
		}
	}
	return pool[rng.Intn(len(pool))], true
}

func filter(cells []int, keep func(int) bool) []int {
	kept := []int{}
	for _, c := range cells {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
