package orchestrator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ducminhle1904/ga-solver/pkg/config"
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// KnapsackRunner evolves a knapsack population for a fixed number of
// generations and compares the result with the exact optimum
type KnapsackRunner struct {
	runnerBase
}

// NewKnapsackRunner creates a runner
func NewKnapsackRunner(opts ...RunnerOption) *KnapsackRunner {
	return &KnapsackRunner{runnerBase: newRunnerBase(opts)}
}

// Run executes cfg.MaxGenerations generations on items. The context is
// checked between generations.
func (r *KnapsackRunner) Run(ctx context.Context, cfg *config.KnapsackConfig, items []types.Item) (*KnapsackRunResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("knapsack config is required")
	}
	strategy, err := optimization.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	ga, err := optimization.NewKnapsackGA(cfg.GAConfig(), items, cfg.Capacity, optimization.NewRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create knapsack GA: %w", err)
	}

	log.Printf("🧬 Knapsack GA: %d items, capacity %d, population %d, %d generations",
		len(items), cfg.Capacity, cfg.PopulationSize, cfg.MaxGenerations)

	history := make([]GenerationRecord, 0, cfg.MaxGenerations)
	for gen := 0; gen < cfg.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("knapsack run stopped after %d generations: %w", gen, err)
		}

		genStart := time.Now()
		if err := ga.EvolvePopulation(); err != nil {
			return nil, err
		}
		elapsed := time.Since(genStart)

		best := ga.GetBestSolution()
		rec := GenerationRecord{
			Run:        1,
			Generation: ga.Generation(),
			Best:       float64(best.Fitness()),
			Stats:      ga.Stats(),
			Genes:      best.String(),
			Elapsed:    elapsed,
		}
		history = append(history, rec)
		r.notify(ProblemKnapsack, rec)

		if err := pause(ctx, cfg.DelayMS); err != nil {
			return nil, fmt.Errorf("knapsack run stopped after %d generations: %w", gen+1, err)
		}
	}

	best := ga.GetBestSolution()

	exact, err := optimization.SolveKnapsack(strategy, items, cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("exact solver failed: %w", err)
	}
	gap := optimization.OptimalityGap(exact.MaxValue, best.Fitness())
	if r.metrics != nil {
		r.metrics.SetOptimalityGap(gap)
	}

	log.Printf("✅ Knapsack done - GA fitness %d, DP optimum %d (%s), gap %.2f%%",
		best.Fitness(), exact.MaxValue, strategy, gap*100)

	return &KnapsackRunResult{
		Config:   cfg,
		Items:    ga.Items(),
		Capacity: cfg.Capacity,
		Best:     best,
		History:  history,
		Strategy: strategy,
		Exact:    exact,
		Gap:      gap,
		Duration: time.Since(started),
	}, nil
}
