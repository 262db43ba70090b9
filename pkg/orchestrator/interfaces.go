package orchestrator

import (
	"context"
	"time"

	"github.com/ducminhle1904/ga-solver/pkg/config"
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// Problem names used in observer callbacks, metric labels and report paths
const (
	ProblemKnapsack = config.ProblemKnapsack
	ProblemTSP      = config.ProblemTSP
)

// Orchestrator resolves problem instances and drives the solver runs
type Orchestrator interface {
	// RunKnapsack loads or generates the items and runs the GA and the exact solver
	RunKnapsack(ctx context.Context, cfg *config.KnapsackConfig) (*KnapsackRunResult, error)

	// RunTSP loads or generates the cities and runs cfg.Runs restarts of the GA
	RunTSP(ctx context.Context, cfg *config.TSPConfig) (*TSPRunResult, error)
}

// GenerationRecord captures the state after one EvolvePopulation call
type GenerationRecord struct {
	Run        int                          `json:"run"`
	Generation int                          `json:"generation"`
	Best       float64                      `json:"best"`
	Stats      optimization.GenerationStats `json:"stats"`
	Genes      string                       `json:"genes,omitempty"`
	Order      []int                        `json:"order,omitempty"`
	Elapsed    time.Duration                `json:"elapsed_ns"`
}

// Observer receives every generation as it completes
type Observer interface {
	OnGeneration(problem string, rec GenerationRecord)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(problem string, rec GenerationRecord)

// OnGeneration calls f
func (f ObserverFunc) OnGeneration(problem string, rec GenerationRecord) {
	f(problem, rec)
}

// MultiObserver fans a generation out to several observers in order
type MultiObserver []Observer

// OnGeneration notifies every non-nil observer
func (m MultiObserver) OnGeneration(problem string, rec GenerationRecord) {
	for _, o := range m {
		if o != nil {
			o.OnGeneration(problem, rec)
		}
	}
}

// KnapsackRunResult is the outcome of one knapsack run
type KnapsackRunResult struct {
	Config   *config.KnapsackConfig
	Items    []types.Item
	Capacity int

	Best    *optimization.Chromosome
	History []GenerationRecord

	Strategy optimization.Strategy
	Exact    *optimization.DPResult
	Gap      float64

	Duration time.Duration
}

// TSPRun is the outcome of one restart
type TSPRun struct {
	Run         int
	Best        *optimization.Path
	History     []GenerationRecord
	Generations int
	Stagnation  int
}

// TSPRunResult is the outcome of all restarts on one set of cities
type TSPRunResult struct {
	Config   *config.TSPConfig
	Cities   []types.Coordinate
	Runs     []TSPRun
	Best     *optimization.Path
	BestRun  int
	Duration time.Duration
}
