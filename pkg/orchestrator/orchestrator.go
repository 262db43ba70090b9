package orchestrator

import (
	"context"
	"fmt"
	"log"

	"github.com/ducminhle1904/ga-solver/pkg/config"
	datamanager "github.com/ducminhle1904/ga-solver/pkg/data"
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
)

// DefaultOrchestrator implements the Orchestrator interface
type DefaultOrchestrator struct {
	data     *datamanager.DataManager
	knapsack *KnapsackRunner
	tsp      *TSPRunner
}

// NewOrchestrator creates an orchestrator whose runners share opts
func NewOrchestrator(opts ...RunnerOption) Orchestrator {
	return &DefaultOrchestrator{
		data:     datamanager.DefaultDataManager,
		knapsack: NewKnapsackRunner(opts...),
		tsp:      NewTSPRunner(opts...),
	}
}

// NewOrchestratorWithComponents creates an orchestrator with custom components
func NewOrchestratorWithComponents(dm *datamanager.DataManager, knapsack *KnapsackRunner, tsp *TSPRunner) Orchestrator {
	return &DefaultOrchestrator{
		data:     dm,
		knapsack: knapsack,
		tsp:      tsp,
	}
}

// RunKnapsack resolves the items and runs the knapsack solvers
func (o *DefaultOrchestrator) RunKnapsack(ctx context.Context, cfg *config.KnapsackConfig) (*KnapsackRunResult, error) {
	log.Println("🚀 Starting Knapsack Run")

	items, err := o.data.KnapsackItems(cfg.ItemsFile, cfg.ItemCount, optimization.NewRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to load items from '%s': %w", cfg.ItemsFile, err)
	}
	if cfg.ItemsFile != "" {
		log.Printf("📂 Loaded %d items from %s", len(items), cfg.ItemsFile)
	} else {
		log.Printf("🎲 Generated %d random items", len(items))
	}

	return o.knapsack.Run(ctx, cfg, items)
}

// RunTSP resolves the cities and runs the TSP solver
func (o *DefaultOrchestrator) RunTSP(ctx context.Context, cfg *config.TSPConfig) (*TSPRunResult, error) {
	log.Println("🚀 Starting TSP Run")

	cities, err := o.data.TSPCities(cfg.CitiesFile, cfg.CityCount, cfg.Width, cfg.Height, optimization.NewRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to load cities from '%s': %w", cfg.CitiesFile, err)
	}
	if cfg.CitiesFile != "" {
		log.Printf("📂 Loaded %d cities from %s", len(cities), cfg.CitiesFile)
	} else {
		log.Printf("🎲 Generated %d random cities in %.0fx%.0f", len(cities), cfg.Width, cfg.Height)
	}

	return o.tsp.Run(ctx, cfg, cities)
}
