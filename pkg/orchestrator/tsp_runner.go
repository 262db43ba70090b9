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

// TSPRunner restarts the TSP GA cfg.Runs times on the same cities and keeps
// the shortest tour found
type TSPRunner struct {
	runnerBase
}

// NewTSPRunner creates a runner
func NewTSPRunner(opts ...RunnerOption) *TSPRunner {
	return &TSPRunner{runnerBase: newRunnerBase(opts)}
}

// Run evolves each restart up to cfg.MaxGenerations. The context is checked
// between generations.
func (r *TSPRunner) Run(ctx context.Context, cfg *config.TSPConfig, cities []types.Coordinate) (*TSPRunResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tsp config is required")
	}
	runs := cfg.Runs
	if runs <= 0 {
		runs = 1
	}

	started := time.Now()
	ga, err := optimization.NewTSPGA(cfg.GAConfig(), cities, optimization.NewRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create TSP GA: %w", err)
	}

	log.Printf("🗺️  TSP GA: %d cities, population %d, %d generations, %d run(s)",
		len(cities), cfg.PopulationSize, cfg.MaxGenerations, runs)

	result := &TSPRunResult{
		Config: cfg,
		Cities: ga.Locations(),
		Runs:   make([]TSPRun, 0, runs),
	}

	for run := 1; run <= runs; run++ {
		tspRun, err := r.runOnce(ctx, ga, run, cfg.DelayMS)
		if err != nil {
			return nil, err
		}
		result.Runs = append(result.Runs, tspRun)

		if result.Best == nil || tspRun.Best.TotalDistance() < result.Best.TotalDistance() {
			result.Best = tspRun.Best
			result.BestRun = run
		}
	}

	result.Duration = time.Since(started)
	log.Printf("✅ TSP done - shortest distance %.2f (run %d)", result.Best.TotalDistance(), result.BestRun)

	return result, nil
}

func (r *TSPRunner) runOnce(ctx context.Context, ga *optimization.TSPGA, run, delayMS int) (TSPRun, error) {
	ga.Restart()

	history := make([]GenerationRecord, 0, ga.MaxGenerations())
	for ga.Generation() < ga.MaxGenerations() {
		if err := ctx.Err(); err != nil {
			return TSPRun{}, fmt.Errorf("tsp run %d stopped at generation %d: %w", run, ga.Generation(), err)
		}

		genStart := time.Now()
		if err := ga.EvolvePopulation(); err != nil {
			return TSPRun{}, err
		}
		elapsed := time.Since(genStart)

		best := ga.GetFittestPath()
		rec := GenerationRecord{
			Run:        run,
			Generation: ga.Generation(),
			Best:       best.TotalDistance(),
			Stats:      ga.Stats(),
			Order:      best.Order(),
			Elapsed:    elapsed,
		}
		history = append(history, rec)
		r.notify(ProblemTSP, rec)

		if err := pause(ctx, delayMS); err != nil {
			return TSPRun{}, fmt.Errorf("tsp run %d stopped at generation %d: %w", run, ga.Generation(), err)
		}
	}

	log.Printf("🏁 Run %d: max generations reached. Evolution stopped.", run)

	return TSPRun{
		Run:         run,
		Best:        ga.GetFittestPath().Clone(),
		History:     history,
		Generations: ga.Generation(),
		Stagnation:  ga.Stagnation(),
	}, nil
}
