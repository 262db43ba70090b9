package optimization

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// TSPGA evolves tours toward minimum length.
// The shortest tour of each generation survives unchanged, so the best
// distance never increases between generations.
type TSPGA struct {
	config     TSPGAConfig
	locations  []types.Coordinate
	population []*Path
	generation int
	stagnation int
	bestScore  float64
	rng        *rand.Rand
}

// NewTSPGA validates the inputs and builds the initial population.
// A nil rng gets a time-seeded source.
func NewTSPGA(config TSPGAConfig, locations []types.Coordinate, rng *rand.Rand) (*TSPGA, error) {
	if err := validatePopulationSize(config.PopulationSize); err != nil {
		return nil, err
	}
	if err := validateRate("mutation rate", config.MutationRate); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrEmptyLocations
	}
	seen := make(map[int]struct{}, len(locations))
	for _, c := range locations {
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCity, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	owned := make([]types.Coordinate, len(locations))
	copy(owned, locations)

	ga := &TSPGA{
		config:    config,
		locations: owned,
		rng:       ensureRNG(rng),
	}
	ga.InitializePopulation()
	ga.bestScore = ga.population[0].totalDistance
	return ga, nil
}

// InitializePopulation fills the population with independent Fisher-Yates shuffles
func (ga *TSPGA) InitializePopulation() {
	population := make([]*Path, ga.config.PopulationSize)
	for i := range population {
		shuffled := make([]types.Coordinate, len(ga.locations))
		copy(shuffled, ga.locations)
		for j := len(shuffled) - 1; j > 0; j-- {
			k := ga.rng.Intn(j + 1)
			shuffled[j], shuffled[k] = shuffled[k], shuffled[j]
		}
		population[i] = newPath(shuffled)
	}
	ga.population = population
}

func (ga *TSPGA) sortByDistance() {
	sort.SliceStable(ga.population, func(i, j int) bool {
		return ga.population[i].totalDistance < ga.population[j].totalDistance
	})
}

// EvolvePopulation keeps the shortest tour and breeds one offspring from each
// adjacent pair of the distance-sorted population.
func (ga *TSPGA) EvolvePopulation() error {
	ga.sortByDistance()

	next := make([]*Path, 0, len(ga.population))
	next = append(next, ga.population[0])

	for i := 1; i < len(ga.population); i++ {
		offspring, err := CreateOffspring(ga.population[i-1], ga.population[i], ga.rng)
		if err != nil {
			return fmt.Errorf("generation %d: %w", ga.generation+1, err)
		}
		if chance(ga.config.MutationRate, ga.rng) {
			offspring.MutatePath(ga.rng)
		}
		next = append(next, offspring)
	}

	ga.population = next
	ga.generation++
	ga.trackProgress()
	return nil
}

// trackProgress updates the best score and stagnation counter
func (ga *TSPGA) trackProgress() {
	shortest := math.Inf(1)
	for _, p := range ga.population {
		shortest = math.Min(shortest, p.totalDistance)
	}
	if shortest < ga.bestScore {
		ga.bestScore = shortest
		ga.stagnation = 0
		return
	}
	ga.stagnation++
}

// GetFittestPath sorts the population by distance and returns the shortest tour
func (ga *TSPGA) GetFittestPath() *Path {
	ga.sortByDistance()
	return ga.population[0]
}

// Restart clears the counters and draws a fresh population
func (ga *TSPGA) Restart() {
	ga.generation = 0
	ga.stagnation = 0
	ga.bestScore = math.Inf(1)
	ga.InitializePopulation()
}

// Generation returns the number of completed generations
func (ga *TSPGA) Generation() int {
	return ga.generation
}

// Stagnation returns the number of consecutive generations without improvement
func (ga *TSPGA) Stagnation() int {
	return ga.stagnation
}

// BestScore returns the shortest distance seen since the last restart
func (ga *TSPGA) BestScore() float64 {
	return ga.bestScore
}

// MaxGenerations returns the configured generation ceiling
func (ga *TSPGA) MaxGenerations() int {
	return ga.config.MaxGenerations
}

// StagnationLimit returns the configured stagnation limit
func (ga *TSPGA) StagnationLimit() int {
	return ga.config.StagnationLimit
}

// Locations returns a copy of the city list
func (ga *TSPGA) Locations() []types.Coordinate {
	out := make([]types.Coordinate, len(ga.locations))
	copy(out, ga.locations)
	return out
}

// Population returns a snapshot of the current population slice
func (ga *TSPGA) Population() []*Path {
	out := make([]*Path, len(ga.population))
	copy(out, ga.population)
	return out
}

// Stats summarises tour lengths; Best is the shortest
func (ga *TSPGA) Stats() GenerationStats {
	values := make([]float64, len(ga.population))
	for i, p := range ga.population {
		values[i] = p.totalDistance
	}
	return computeStats(ga.generation, values, false)
}
