package optimization

import (
	"math/rand"
	"testing"

	"github.com/ducminhle1904/ga-solver/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomItems(rng *rand.Rand, n int) []types.Item {
	items := make([]types.Item, n)
	for i := range items {
		items[i] = types.Item{Weight: rng.Intn(10) + 1, Value: rng.Intn(100) + 1}
	}
	return items
}

func TestNewKnapsackGA_Validation(t *testing.T) {
	items := sampleItems()
	valid := KnapsackGAConfig{PopulationSize: 10, MutationRate: 0.1, CrossoverRate: 0.8}

	tests := []struct {
		name     string
		config   KnapsackGAConfig
		items    []types.Item
		capacity int
		wantErr  error
	}{
		{"zero population", KnapsackGAConfig{PopulationSize: 0, MutationRate: 0.1, CrossoverRate: 0.8}, items, 5, ErrInvalidPopulationSize},
		{"negative population", KnapsackGAConfig{PopulationSize: -3, MutationRate: 0.1, CrossoverRate: 0.8}, items, 5, ErrInvalidPopulationSize},
		{"mutation above one", KnapsackGAConfig{PopulationSize: 10, MutationRate: 1.5, CrossoverRate: 0.8}, items, 5, ErrInvalidRate},
		{"negative crossover", KnapsackGAConfig{PopulationSize: 10, MutationRate: 0.1, CrossoverRate: -0.1}, items, 5, ErrInvalidRate},
		{"negative capacity", valid, items, -1, ErrNegativeCapacity},
		{"no items", valid, nil, 5, ErrEmptyItems},
		{"zero weight item", valid, []types.Item{{Weight: 0, Value: 1}}, 5, ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga, err := NewKnapsackGA(tt.config, tt.items, tt.capacity, rand.New(rand.NewSource(1)))
			assert.Nil(t, ga)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestKnapsackGA_InitialPopulation(t *testing.T) {
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 50, MutationRate: 0.1, CrossoverRate: 0.8}, sampleItems(), 5, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	population := ga.Population()
	assert.Len(t, population, 50)
	assert.Equal(t, 0, ga.Generation())
	for _, c := range population {
		assert.Len(t, c.Genes(), len(sampleItems()))
	}
}

func TestKnapsackGA_EvolveKeepsSizeAndCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 30, MutationRate: 0.2, CrossoverRate: 0.7}, randomItems(rng, 20), 40, rng)
	require.NoError(t, err)

	for gen := 1; gen <= 25; gen++ {
		require.NoError(t, ga.EvolvePopulation())
		assert.Equal(t, gen, ga.Generation())
		assert.Len(t, ga.Population(), 30)
	}
}

func TestKnapsackGA_NeverBeatsExactOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	items := randomItems(rng, 18)
	capacity := 35

	exact, err := SolveKnapsackDP(items, capacity)
	require.NoError(t, err)

	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 50, MutationRate: 0.1, CrossoverRate: 0.9}, items, capacity, rng)
	require.NoError(t, err)

	for gen := 0; gen < 100; gen++ {
		require.NoError(t, ga.EvolvePopulation())
		best := ga.GetBestSolution()
		assert.LessOrEqual(t, best.Fitness(), exact.MaxValue)
	}
}

func TestKnapsackGA_ZeroCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 20, MutationRate: 0.3, CrossoverRate: 0.8}, randomItems(rng, 8), 0, rng)
	require.NoError(t, err)

	exact, err := SolveKnapsackDP(ga.Items(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, exact.MaxValue)

	for gen := 0; gen < 20; gen++ {
		require.NoError(t, ga.EvolvePopulation())
		assert.Equal(t, 0, ga.GetBestSolution().Fitness())
	}
}

func TestKnapsackGA_SeededRunsAreReproducible(t *testing.T) {
	items := randomItems(rand.New(rand.NewSource(1)), 15)
	config := KnapsackGAConfig{PopulationSize: 25, MutationRate: 0.1, CrossoverRate: 0.8}

	run := func() []int {
		ga, err := NewKnapsackGA(config, items, 30, rand.New(rand.NewSource(77)))
		require.NoError(t, err)
		history := make([]int, 0, 30)
		for gen := 0; gen < 30; gen++ {
			require.NoError(t, ga.EvolvePopulation())
			history = append(history, ga.GetBestSolution().Fitness())
		}
		return history
	}

	assert.Equal(t, run(), run())
}

func TestKnapsackGA_SelectParentTieGoesToSecondDraw(t *testing.T) {
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 2, MutationRate: 0, CrossoverRate: 0}, sampleItems(), 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	a, err := NewChromosome([]uint8{1, 0, 0, 0}, sampleItems(), 5)
	require.NoError(t, err)
	b, err := NewChromosome([]uint8{1, 0, 0, 0}, sampleItems(), 5)
	require.NoError(t, err)
	ga.population = []*Chromosome{a, b}

	for seed := int64(1); seed <= 20; seed++ {
		ga.rng = rand.New(rand.NewSource(seed))
		predict := rand.New(rand.NewSource(seed))
		predict.Intn(2)
		second := predict.Intn(2)

		assert.Same(t, ga.population[second], ga.SelectParent())
	}
}

func TestKnapsackGA_SelectParentPrefersFitter(t *testing.T) {
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 2, MutationRate: 0, CrossoverRate: 0}, sampleItems(), 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	weak, err := NewChromosome([]uint8{1, 0, 0, 0}, sampleItems(), 5)
	require.NoError(t, err)
	strong, err := NewChromosome([]uint8{1, 1, 0, 0}, sampleItems(), 5)
	require.NoError(t, err)
	ga.population = []*Chromosome{weak, strong}

	for seed := int64(1); seed <= 20; seed++ {
		ga.rng = rand.New(rand.NewSource(seed))
		predict := rand.New(rand.NewSource(seed))
		first, second := predict.Intn(2), predict.Intn(2)

		got := ga.SelectParent()
		if first == 1 || second == 1 {
			assert.Same(t, strong, got)
		} else {
			assert.Same(t, weak, got)
		}
	}
}

func TestKnapsackGA_CloneBranchDoesNotAliasParents(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 10, MutationRate: 1, CrossoverRate: 0}, randomItems(rng, 12), 30, rng)
	require.NoError(t, err)

	previous := ga.Population()
	snapshots := make([][]uint8, len(previous))
	fitness := make([]int, len(previous))
	for i, c := range previous {
		snapshots[i] = c.Genes()
		fitness[i] = c.Fitness()
	}

	require.NoError(t, ga.EvolvePopulation())

	for i, c := range previous {
		assert.Equal(t, snapshots[i], c.Genes())
		assert.Equal(t, fitness[i], c.Fitness())
	}
	for _, child := range ga.Population() {
		for _, parent := range previous {
			assert.NotSame(t, parent, child)
		}
	}
}

func TestKnapsackGA_GetBestSolutionFirstMaximal(t *testing.T) {
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 3, MutationRate: 0, CrossoverRate: 0}, sampleItems(), 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	low, _ := NewChromosome([]uint8{1, 0, 0, 0}, sampleItems(), 5)
	highA, _ := NewChromosome([]uint8{1, 1, 0, 0}, sampleItems(), 5)
	highB, _ := NewChromosome([]uint8{1, 1, 0, 0}, sampleItems(), 5)
	ga.population = []*Chromosome{low, highA, highB}

	assert.Same(t, highA, ga.GetBestSolution())
}

func TestKnapsackGA_Stats(t *testing.T) {
	ga, err := NewKnapsackGA(KnapsackGAConfig{PopulationSize: 3, MutationRate: 0, CrossoverRate: 0}, sampleItems(), 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	a, _ := NewChromosome([]uint8{1, 0, 0, 0}, sampleItems(), 5)
	b, _ := NewChromosome([]uint8{1, 1, 0, 0}, sampleItems(), 5)
	c, _ := NewChromosome([]uint8{1, 1, 1, 1}, sampleItems(), 5)
	ga.population = []*Chromosome{a, b, c}

	stats := ga.Stats()
	assert.Equal(t, 7.0, stats.Best)
	assert.Equal(t, 0.0, stats.Worst)
	assert.InDelta(t, 10.0/3.0, stats.Mean, 1e-9)
	assert.Greater(t, stats.StdDev, 0.0)
}

var _ GenerationalSolver = (*KnapsackGA)(nil)
var _ GenerationalSolver = (*TSPGA)(nil)
