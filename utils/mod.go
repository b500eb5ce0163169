package utils

type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Sample draws up to n items from pool without replacement. When accept is
// set, a candidate is only kept if accept(picked, candidate) holds, so fewer
// than n items may come back. pool is not modified.
func Sample[T any](rng Shuffler, pool []T, n int, accept func(picked []T, candidate T) bool) []T {
	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	picked := make([]T, 0, n)
	for _, candidate := range shuffled {
		if len(picked) == n {
			break
		}
		if accept != nil && !accept(picked, candidate) {
			continue
		}
		picked = append(picked, candidate)
	}
	return picked
}
