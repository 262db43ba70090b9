package optimization

import (
	"fmt"
	"math/rand"
	"time"
)

// NewRNG creates the random source threaded through every engine.
// A zero seed picks a time-based seed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ensureRNG falls back to a fresh time-seeded source
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRNG(0)
	}
	return rng
}

// chance reports whether a uniform draw falls below rate
func chance(rate float64, rng *rand.Rand) bool {
	return rng.Float64() < rate
}

func validateRate(name string, rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("%w: %s = %.4f", ErrInvalidRate, name, rate)
	}
	return nil
}

func validatePopulationSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPopulationSize, size)
	}
	return nil
}

// tournamentSelect draws two indices with replacement and returns the fitter one.
// The first draw wins only when strictly better.
func tournamentSelect[T any](population []T, better func(a, b T) bool, rng *rand.Rand) T {
	first := population[rng.Intn(len(population))]
	second := population[rng.Intn(len(population))]
	if better(first, second) {
		return first
	}
	return second
}
