package optimization

import "errors"

// Package optimization provides the genetic search engines for the knapsack and
// travelling-salesman problems together with the exact knapsack solver.

var (
	ErrGeneLengthMismatch    = errors.New("optimization: genes length does not match items length")
	ErrInvalidGene           = errors.New("optimization: gene must be 0 or 1")
	ErrInvalidPopulationSize = errors.New("optimization: population size must be positive")
	ErrInvalidRate           = errors.New("optimization: rate must be within [0, 1]")
	ErrNegativeCapacity      = errors.New("optimization: capacity must be non-negative")
	ErrEmptyItems            = errors.New("optimization: item list is empty")
	ErrInvalidItem           = errors.New("optimization: item weight must be positive and value non-negative")
	ErrEmptyLocations        = errors.New("optimization: location list is empty")
	ErrDuplicateCity         = errors.New("optimization: duplicate city id")
	ErrPathMismatch          = errors.New("optimization: parents are not tours over the same cities")
	ErrUnknownStrategy       = errors.New("optimization: unknown exact solver strategy")
)

// GenerationalSolver is a genetic engine advanced one generation per call.
// The caller owns pacing and decides when to stop.
type GenerationalSolver interface {
	// EvolvePopulation replaces the population with the next generation.
	// On error the previous population is left in place.
	EvolvePopulation() error

	// Generation returns the number of completed generations
	Generation() int

	// Stats summarises the current population
	Stats() GenerationStats
}

// KnapsackGAConfig holds the configuration for the knapsack genetic algorithm
type KnapsackGAConfig struct {
	PopulationSize int     `json:"population_size"`
	MutationRate   float64 `json:"mutation_rate"`
	CrossoverRate  float64 `json:"crossover_rate"`
}

// TSPGAConfig holds the configuration for the TSP genetic algorithm.
// MaxGenerations and StagnationLimit are carried for the driver; the engine
// only keeps the counters.
type TSPGAConfig struct {
	PopulationSize  int     `json:"population_size"`
	MutationRate    float64 `json:"mutation_rate"`
	MaxGenerations  int     `json:"max_generations"`
	StagnationLimit int     `json:"stagnation_limit"`
}
