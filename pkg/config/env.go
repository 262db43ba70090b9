package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file and default values
const (
	EnvPopulationSize    = "GA_POPULATION_SIZE"
	EnvMutationRate      = "GA_MUTATION_RATE"
	EnvCrossoverRate     = "GA_CROSSOVER_RATE"
	EnvMaxGenerations    = "GA_MAX_GENERATIONS"
	EnvSeed              = "GA_SEED"
	EnvKnapsackCapacity  = "KNAPSACK_CAPACITY"
	EnvKnapsackItemCount = "KNAPSACK_ITEM_COUNT"
	EnvTSPCityCount      = "TSP_CITY_COUNT"
)

// ApplyKnapsackEnv overrides cfg with any knapsack variables set in the environment
func ApplyKnapsackEnv(cfg *KnapsackConfig) error {
	if err := envInt(EnvPopulationSize, &cfg.PopulationSize); err != nil {
		return err
	}
	if err := envFloat(EnvMutationRate, &cfg.MutationRate); err != nil {
		return err
	}
	if err := envFloat(EnvCrossoverRate, &cfg.CrossoverRate); err != nil {
		return err
	}
	if err := envInt(EnvMaxGenerations, &cfg.MaxGenerations); err != nil {
		return err
	}
	if err := envInt64(EnvSeed, &cfg.Seed); err != nil {
		return err
	}
	if err := envInt(EnvKnapsackCapacity, &cfg.Capacity); err != nil {
		return err
	}
	return envInt(EnvKnapsackItemCount, &cfg.ItemCount)
}

// ApplyTSPEnv overrides cfg with any TSP variables set in the environment
func ApplyTSPEnv(cfg *TSPConfig) error {
	if err := envInt(EnvPopulationSize, &cfg.PopulationSize); err != nil {
		return err
	}
	if err := envFloat(EnvMutationRate, &cfg.MutationRate); err != nil {
		return err
	}
	if err := envInt(EnvMaxGenerations, &cfg.MaxGenerations); err != nil {
		return err
	}
	if err := envInt64(EnvSeed, &cfg.Seed); err != nil {
		return err
	}
	return envInt(EnvTSPCityCount, &cfg.CityCount)
}

func envInt(name string, dst *int) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	*dst = v
	return nil
}

func envInt64(name string, dst *int64) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	*dst = v
	return nil
}

func envFloat(name string, dst *float64) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	*dst = v
	return nil
}
