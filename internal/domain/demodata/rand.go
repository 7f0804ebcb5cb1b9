package demodata

import "math/rand"

// choice pairs a value with an integer weight. Pools are expressed this way
// instead of arrays with duplicated entries so the probabilities are exact.
type choice[T any] struct {
	Value  T
	Weight int
}

func pickWeighted[T any](rng *rand.Rand, choices []choice[T]) T {
	total := 0
	for _, c := range choices {
		total += c.Weight
	}

	n := rng.Intn(total)
	for _, c := range choices {
		n -= c.Weight
		if n < 0 {
			return c.Value
		}
	}

	return choices[len(choices)-1].Value
}

func pickOne[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// uniformRange returns a uniform value in [min, max).
func uniformRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// intRange returns a uniform int in [min, max].
func intRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

func happens(rng *rand.Rand, probability float64) bool {
	return rng.Float64() < probability
}

func shuffled[T any](rng *rand.Rand, pool []T) []T {
	out := make([]T, len(pool))
	copy(out, pool)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
