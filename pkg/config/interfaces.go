package config

// Package config provides configuration management for the GA solvers

// Config represents the settings every solver run must expose
type Config interface {
	// Problem returns the problem name ("knapsack" or "tsp")
	Problem() string

	// GetPopulationSize returns the number of individuals per generation
	GetPopulationSize() int

	// GetMutationRate returns the per-offspring mutation probability
	GetMutationRate() float64

	// GetMaxGenerations returns the generation ceiling for a run
	GetMaxGenerations() int

	// GetSeed returns the RNG seed (0 picks a time-based seed)
	GetSeed() int64

	// GetInstanceFile returns the CSV instance path, empty for random instances
	GetInstanceFile() string

	// Validate validates the configuration
	Validate() error
}

// ConfigManager handles loading, validation and saving of configurations
type ConfigManager interface {
	// LoadKnapsackConfig loads a knapsack configuration from an optional JSON file and the environment
	LoadKnapsackConfig(configFile string) (*KnapsackConfig, error)

	// LoadTSPConfig loads a TSP configuration from an optional JSON file and the environment
	LoadTSPConfig(configFile string) (*TSPConfig, error)

	// ValidateConfig validates a configuration
	ValidateConfig(cfg Config) error

	// SaveConfig saves configuration to file
	SaveConfig(cfg Config, path string) error
}

// Validator interface for configuration validation
type Validator interface {
	Validate(cfg Config) error
}

// Common configuration constants
const (
	ProblemKnapsack = "knapsack"
	ProblemTSP      = "tsp"

	// Knapsack instance defaults
	DefaultKnapsackCapacity  = 50
	DefaultKnapsackItemCount = 20

	// TSP instance defaults
	DefaultTSPCityCount = 10
	DefaultTSPWidth     = 800.0
	DefaultTSPHeight    = 600.0
	DefaultTSPRuns      = 1

	// Validation limits
	MaxPopulationSize = 100000
	MaxGenerations    = 1000000

	// File and directory constants
	ResultsDir     = "results"
	BestConfigFile = "config.json"
)
