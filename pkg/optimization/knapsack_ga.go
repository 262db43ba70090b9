package optimization

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// KnapsackGA evolves bit-vector chromosomes toward maximum value under a weight bound.
// It has no elitism and no stop condition; the caller drives it generation by generation.
type KnapsackGA struct {
	config     KnapsackGAConfig
	items      []types.Item
	capacity   int
	population []*Chromosome
	generation int
	rng        *rand.Rand
}

// NewKnapsackGA validates the inputs and builds the initial population.
// A nil rng gets a time-seeded source.
func NewKnapsackGA(config KnapsackGAConfig, items []types.Item, capacity int, rng *rand.Rand) (*KnapsackGA, error) {
	if err := validatePopulationSize(config.PopulationSize); err != nil {
		return nil, err
	}
	if err := validateRate("mutation rate", config.MutationRate); err != nil {
		return nil, err
	}
	if err := validateRate("crossover rate", config.CrossoverRate); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	ga := &KnapsackGA{
		config:   config,
		items:    items,
		capacity: capacity,
		rng:      ensureRNG(rng),
	}
	ga.InitializePopulation()
	return ga, nil
}

// InitializePopulation replaces the population with random chromosomes,
// each gene drawn independently with probability 0.5
func (ga *KnapsackGA) InitializePopulation() {
	population := make([]*Chromosome, ga.config.PopulationSize)
	for i := range population {
		genes := make([]uint8, len(ga.items))
		for j := range genes {
			if ga.rng.Float64() > 0.5 {
				genes[j] = 1
			}
		}
		population[i] = newChromosome(genes, ga.items, ga.capacity)
	}
	ga.population = population
}

// SelectParent runs a size-2 tournament with replacement
func (ga *KnapsackGA) SelectParent() *Chromosome {
	return tournamentSelect(ga.population, func(a, b *Chromosome) bool {
		return a.fitness > b.fitness
	}, ga.rng)
}

// EvolvePopulation builds the next generation from tournament-selected parents.
// Offspring that skip crossover are copies of parentA, so later mutation never
// reaches back into the previous population.
func (ga *KnapsackGA) EvolvePopulation() error {
	sort.SliceStable(ga.population, func(i, j int) bool {
		return ga.population[i].fitness > ga.population[j].fitness
	})

	next := make([]*Chromosome, 0, ga.config.PopulationSize)
	for len(next) < ga.config.PopulationSize {
		parentA := ga.SelectParent()
		parentB := ga.SelectParent()

		var offspring *Chromosome
		if chance(ga.config.CrossoverRate, ga.rng) {
			child, err := Crossover(parentA, parentB, ga.rng)
			if err != nil {
				return fmt.Errorf("generation %d: %w", ga.generation+1, err)
			}
			offspring = child
		} else {
			offspring = parentA.Clone()
		}

		if chance(ga.config.MutationRate, ga.rng) {
			offspring.Mutate(ga.rng)
		}

		next = append(next, offspring)
	}

	ga.population = next
	ga.generation++
	return nil
}

// GetBestSolution returns the first chromosome with maximal fitness
func (ga *KnapsackGA) GetBestSolution() *Chromosome {
	best := ga.population[0]
	for _, c := range ga.population[1:] {
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}

// Generation returns the number of completed generations
func (ga *KnapsackGA) Generation() int {
	return ga.generation
}

// Population returns a snapshot of the current population slice
func (ga *KnapsackGA) Population() []*Chromosome {
	out := make([]*Chromosome, len(ga.population))
	copy(out, ga.population)
	return out
}

// Items returns the item list the population is evaluated against
func (ga *KnapsackGA) Items() []types.Item {
	return ga.items
}

// Capacity returns the knapsack weight bound
func (ga *KnapsackGA) Capacity() int {
	return ga.capacity
}

// Stats summarises population fitness
func (ga *KnapsackGA) Stats() GenerationStats {
	values := make([]float64, len(ga.population))
	for i, c := range ga.population {
		values[i] = float64(c.fitness)
	}
	return computeStats(ga.generation, values, true)
}

func validateItems(items []types.Item) error {
	for i, item := range items {
		if item.Weight <= 0 || item.Value < 0 {
			return fmt.Errorf("%w: item %d has weight %d, value %d", ErrInvalidItem, i, item.Weight, item.Value)
		}
	}
	return nil
}
