package optimization

import (
	"math/rand"
	"testing"

	"github.com/ducminhle1904/ga-solver/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{StrategyBottomUp, StrategyMemoized}

func TestSolveKnapsack_KnownInstance(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			result, err := SolveKnapsack(strategy, sampleItems(), 5)
			require.NoError(t, err)

			assert.Equal(t, 7, result.MaxValue)
			assert.Equal(t, []int{0, 1}, result.SelectedItems)
			assert.Equal(t, 5, result.TotalWeight)
		})
	}
}

func TestSolveKnapsack_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name     string
		items    []types.Item
		capacity int
	}{
		{"zero capacity", sampleItems(), 0},
		{"no items", []types.Item{}, 10},
		{"nil items", nil, 10},
		{"single item too heavy", []types.Item{{Weight: 6, Value: 9}}, 5},
	}

	for _, strategy := range strategies {
		for _, tt := range tests {
			t.Run(string(strategy)+"/"+tt.name, func(t *testing.T) {
				result, err := SolveKnapsack(strategy, tt.items, tt.capacity)
				require.NoError(t, err)

				assert.Equal(t, 0, result.MaxValue)
				assert.NotNil(t, result.SelectedItems)
				assert.Empty(t, result.SelectedItems)
				assert.Equal(t, 0, result.TotalWeight)
			})
		}
	}
}

func TestSolveKnapsack_FirstItemBoundary(t *testing.T) {
	items := []types.Item{{Weight: 5, Value: 10}, {Weight: 1, Value: 1}}

	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			result, err := SolveKnapsack(strategy, items, 4)
			require.NoError(t, err)
			assert.Equal(t, 1, result.MaxValue)
			assert.Equal(t, []int{1}, result.SelectedItems)

			result, err = SolveKnapsack(strategy, items, 5)
			require.NoError(t, err)
			assert.Equal(t, 10, result.MaxValue)
			assert.Equal(t, []int{0}, result.SelectedItems)

			result, err = SolveKnapsack(strategy, items, 6)
			require.NoError(t, err)
			assert.Equal(t, 11, result.MaxValue)
			assert.Equal(t, []int{0, 1}, result.SelectedItems)
		})
	}
}

func TestSolveKnapsack_RejectsInvalidInput(t *testing.T) {
	for _, strategy := range strategies {
		_, err := SolveKnapsack(strategy, sampleItems(), -1)
		assert.ErrorIs(t, err, ErrNegativeCapacity)

		_, err = SolveKnapsack(strategy, []types.Item{{Weight: 0, Value: 3}}, 5)
		assert.ErrorIs(t, err, ErrInvalidItem)
	}

	_, err := SolveKnapsack(Strategy("greedy"), sampleItems(), 5)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

// bruteForce enumerates every subset
func bruteForce(items []types.Item, capacity int) int {
	best := 0
	for mask := 0; mask < 1<<len(items); mask++ {
		weight, value := 0, 0
		for i := range items {
			if mask&(1<<i) != 0 {
				weight += items[i].Weight
				value += items[i].Value
			}
		}
		if weight <= capacity && value > best {
			best = value
		}
	}
	return best
}

func TestSolveKnapsack_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for trial := 0; trial < 60; trial++ {
		n := rng.Intn(12)
		items := make([]types.Item, n)
		for i := range items {
			items[i] = types.Item{Weight: rng.Intn(10) + 1, Value: rng.Intn(100) + 1}
		}
		capacity := rng.Intn(40)
		want := bruteForce(items, capacity)

		table, err := SolveKnapsackDP(items, capacity)
		require.NoError(t, err)
		memo, err := SolveKnapsackMemo(items, capacity)
		require.NoError(t, err)

		for _, result := range []*DPResult{table, memo} {
			assert.Equal(t, want, result.MaxValue)
			assert.Equal(t, result.MaxValue, types.TotalValue(items, result.SelectedItems))
			assert.LessOrEqual(t, types.TotalWeight(items, result.SelectedItems), capacity)
			assert.Equal(t, result.TotalWeight, types.TotalWeight(items, result.SelectedItems))
			assert.IsIncreasing(t, append([]int{-1}, result.SelectedItems...))
		}
		assert.Equal(t, table.SelectedItems, memo.SelectedItems, "shared skip-on-tie rule")
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"", StrategyBottomUp},
		{"bottom-up", StrategyBottomUp},
		{"TABLE", StrategyBottomUp},
		{"memoized", StrategyMemoized},
		{" top-down ", StrategyMemoized},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStrategy("branch-and-bound")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestOptimalityGap(t *testing.T) {
	assert.Equal(t, 0.0, OptimalityGap(0, 0))
	assert.Equal(t, 0.0, OptimalityGap(100, 100))
	assert.InDelta(t, 0.25, OptimalityGap(100, 75), 1e-12)
}
