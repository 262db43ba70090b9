package config

import (
	"fmt"

	"github.com/ducminhle1904/ga-solver/pkg/optimization"
)

// SolverValidator implements validation for knapsack and TSP configurations
type SolverValidator struct{}

// NewSolverValidator creates a new validator
func NewSolverValidator() *SolverValidator {
	return &SolverValidator{}
}

// Validate dispatches on the concrete configuration type
func (v *SolverValidator) Validate(cfg Config) error {
	if err := v.validateCommon(cfg); err != nil {
		return err
	}

	switch c := cfg.(type) {
	case *KnapsackConfig:
		return v.validateKnapsack(c)
	case *TSPConfig:
		return v.validateTSP(c)
	default:
		return fmt.Errorf("unsupported configuration type %T", cfg)
	}
}

func (v *SolverValidator) validateCommon(cfg Config) error {
	if cfg.GetPopulationSize() <= 0 || cfg.GetPopulationSize() > MaxPopulationSize {
		return fmt.Errorf("population size must be between 1 and %d, got: %d", MaxPopulationSize, cfg.GetPopulationSize())
	}

	if cfg.GetMutationRate() < 0 || cfg.GetMutationRate() > 1 {
		return fmt.Errorf("mutation rate must be between 0 and 1, got: %.4f", cfg.GetMutationRate())
	}

	if cfg.GetMaxGenerations() < 0 || cfg.GetMaxGenerations() > MaxGenerations {
		return fmt.Errorf("max generations must be between 0 and %d, got: %d", MaxGenerations, cfg.GetMaxGenerations())
	}

	return nil
}

func (v *SolverValidator) validateKnapsack(cfg *KnapsackConfig) error {
	if cfg.CrossoverRate < 0 || cfg.CrossoverRate > 1 {
		return fmt.Errorf("crossover rate must be between 0 and 1, got: %.4f", cfg.CrossoverRate)
	}

	if cfg.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got: %d", cfg.Capacity)
	}

	// A file supplies its own items
	if cfg.ItemsFile == "" && cfg.ItemCount <= 0 {
		return fmt.Errorf("item count must be positive, got: %d", cfg.ItemCount)
	}

	if _, err := optimization.ParseStrategy(cfg.Strategy); err != nil {
		return err
	}

	if cfg.DelayMS < 0 {
		return fmt.Errorf("delay must be non-negative, got: %dms", cfg.DelayMS)
	}

	return nil
}

func (v *SolverValidator) validateTSP(cfg *TSPConfig) error {
	if cfg.CitiesFile == "" {
		if cfg.CityCount <= 0 {
			return fmt.Errorf("city count must be positive, got: %d", cfg.CityCount)
		}
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return fmt.Errorf("width and height must be positive, got: %.1f x %.1f", cfg.Width, cfg.Height)
		}
	}

	if cfg.StagnationLimit < 0 {
		return fmt.Errorf("stagnation limit must be non-negative, got: %d", cfg.StagnationLimit)
	}

	if cfg.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got: %d", cfg.Runs)
	}

	if cfg.DelayMS < 0 {
		return fmt.Errorf("delay must be non-negative, got: %dms", cfg.DelayMS)
	}

	return nil
}
