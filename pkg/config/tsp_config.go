package config

import (
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
)

// TSPConfig holds the settings of one or more TSP runs on the same cities
type TSPConfig struct {
	// Genetic algorithm
	PopulationSize  int     `json:"population_size"`
	MutationRate    float64 `json:"mutation_rate"`
	MaxGenerations  int     `json:"max_generations"`
	StagnationLimit int     `json:"stagnation_limit"`

	// Instance
	CityCount  int     `json:"city_count"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	CitiesFile string  `json:"cities_file,omitempty"`

	// Runs is the number of restarts on the same cities
	Runs int `json:"runs"`

	Seed    int64 `json:"seed"`
	DelayMS int   `json:"delay_ms,omitempty"`
}

// NewDefaultTSPConfig returns the defaults used by the command line tool
func NewDefaultTSPConfig() *TSPConfig {
	ga := optimization.GetDefaultTSPGAConfig()
	return &TSPConfig{
		PopulationSize:  ga.PopulationSize,
		MutationRate:    ga.MutationRate,
		MaxGenerations:  ga.MaxGenerations,
		StagnationLimit: ga.StagnationLimit,
		CityCount:       DefaultTSPCityCount,
		Width:           DefaultTSPWidth,
		Height:          DefaultTSPHeight,
		Runs:            DefaultTSPRuns,
	}
}

func (c *TSPConfig) Problem() string { return ProblemTSP }
func (c *TSPConfig) GetPopulationSize() int { return c.PopulationSize }
func (c *TSPConfig) GetMutationRate() float64 { return c.MutationRate }
func (c *TSPConfig) GetMaxGenerations() int { return c.MaxGenerations }
func (c *TSPConfig) GetSeed() int64 { return c.Seed }
func (c *TSPConfig) GetInstanceFile() string { return c.CitiesFile }

// Validate checks the configuration with the default validator
func (c *TSPConfig) Validate() error {
	return NewSolverValidator().Validate(c)
}

// GAConfig returns the engine configuration
func (c *TSPConfig) GAConfig() optimization.TSPGAConfig {
	return optimization.TSPGAConfig{
		PopulationSize:  c.PopulationSize,
		MutationRate:    c.MutationRate,
		MaxGenerations:  c.MaxGenerations,
		StagnationLimit: c.StagnationLimit,
	}
}
