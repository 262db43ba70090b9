package optimization

import (
	"fmt"
	"strings"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// Strategy selects how the exact knapsack table is built
type Strategy string

const (
	StrategyBottomUp Strategy = "bottom-up"
	StrategyMemoized Strategy = "memoized"
)

// DPResult is the exact knapsack optimum.
// SelectedItems are ascending indices into the input list whose values sum to MaxValue.
type DPResult struct {
	MaxValue      int   `json:"max_value"`
	SelectedItems []int `json:"selected_items"`
	TotalWeight   int   `json:"total_weight"`
}

// ParseStrategy maps a CLI/config name to a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bottom-up", "bottomup", "table":
		return StrategyBottomUp, nil
	case "memoized", "memo", "top-down":
		return StrategyMemoized, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// SolveKnapsack dispatches to the requested strategy.
// Both strategies return the same MaxValue and, because they share the
// recurrence and the skip-on-tie rule, the same SelectedItems.
func SolveKnapsack(strategy Strategy, items []types.Item, capacity int) (*DPResult, error) {
	switch strategy {
	case StrategyBottomUp:
		return SolveKnapsackDP(items, capacity)
	case StrategyMemoized:
		return SolveKnapsackMemo(items, capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

func validateKnapsackInput(items []types.Item, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}
	return validateItems(items)
}

// SolveKnapsackDP fills dp[i][w] (best value from the first i items within
// capacity w) bottom-up and backtracks from dp[n][capacity].
// Item i-1 is taken only where dp[i][w] differs from dp[i-1][w].
func SolveKnapsackDP(items []types.Item, capacity int) (*DPResult, error) {
	if err := validateKnapsackInput(items, capacity); err != nil {
		return nil, err
	}

	n := len(items)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		item := items[i-1]
		for w := 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]
			if item.Weight <= w {
				if taken := dp[i-1][w-item.Weight] + item.Value; taken > dp[i][w] {
					dp[i][w] = taken
				}
			}
		}
	}

	selected := make([]int, 0)
	w := capacity
	for i := n; i > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			selected = append(selected, i-1)
			w -= items[i-1].Weight
		}
	}

	return newDPResult(items, dp[n][capacity], selected), nil
}

// SolveKnapsackMemo evaluates the same recurrence top-down over
// (itemIndex, residualCapacity), with value 0 when itemIndex < 0 or w <= 0.
// Backtracking compares best(i, w) with best(i-1, w) for every i including 0.
func SolveKnapsackMemo(items []types.Item, capacity int) (*DPResult, error) {
	if err := validateKnapsackInput(items, capacity); err != nil {
		return nil, err
	}

	n := len(items)
	memo := make([][]int, n)
	for i := range memo {
		memo[i] = make([]int, capacity+1)
		for w := range memo[i] {
			memo[i][w] = -1
		}
	}

	var best func(i, w int) int
	best = func(i, w int) int {
		if i < 0 || w <= 0 {
			return 0
		}
		if memo[i][w] >= 0 {
			return memo[i][w]
		}
		value := best(i-1, w)
		if items[i].Weight <= w {
			if taken := best(i-1, w-items[i].Weight) + items[i].Value; taken > value {
				value = taken
			}
		}
		memo[i][w] = value
		return value
	}

	maxValue := best(n-1, capacity)

	selected := make([]int, 0)
	w := capacity
	for i := n - 1; i >= 0; i-- {
		if best(i, w) != best(i-1, w) {
			selected = append(selected, i)
			w -= items[i].Weight
		}
	}

	return newDPResult(items, maxValue, selected), nil
}

// newDPResult reverses the backtracked (descending) indices into ascending order
func newDPResult(items []types.Item, maxValue int, selected []int) *DPResult {
	for l, r := 0, len(selected)-1; l < r; l, r = l+1, r-1 {
		selected[l], selected[r] = selected[r], selected[l]
	}
	return &DPResult{
		MaxValue:      maxValue,
		SelectedItems: selected,
		TotalWeight:   types.TotalWeight(items, selected),
	}
}

// OptimalityGap returns how far a heuristic value falls short of the optimum,
// as a fraction of the optimum. It is 0 when the optimum is 0.
func OptimalityGap(optimum, achieved int) float64 {
	if optimum <= 0 {
		return 0
	}
	return float64(optimum-achieved) / float64(optimum)
}
