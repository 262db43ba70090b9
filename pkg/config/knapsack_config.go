package config

import (
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
)

// KnapsackConfig holds the settings of one knapsack run
type KnapsackConfig struct {
	// Genetic algorithm
	PopulationSize int     `json:"population_size"`
	MutationRate   float64 `json:"mutation_rate"`
	CrossoverRate  float64 `json:"crossover_rate"`
	MaxGenerations int     `json:"max_generations"`

	// Instance
	Capacity  int    `json:"capacity"`
	ItemCount int    `json:"item_count"`
	ItemsFile string `json:"items_file,omitempty"`

	// Exact solver strategy: "bottom-up" or "memoized"
	Strategy string `json:"strategy"`

	Seed    int64 `json:"seed"`
	DelayMS int   `json:"delay_ms,omitempty"`
}

// NewDefaultKnapsackConfig returns the defaults used by the command line tool
func NewDefaultKnapsackConfig() *KnapsackConfig {
	ga := optimization.GetDefaultKnapsackGAConfig()
	return &KnapsackConfig{
		PopulationSize: ga.PopulationSize,
		MutationRate:   ga.MutationRate,
		CrossoverRate:  ga.CrossoverRate,
		MaxGenerations: optimization.DefaultKnapsackGenerations,
		Capacity:       DefaultKnapsackCapacity,
		ItemCount:      DefaultKnapsackItemCount,
		Strategy:       string(optimization.StrategyBottomUp),
	}
}

func (c *KnapsackConfig) Problem() string { return ProblemKnapsack }
func (c *KnapsackConfig) GetPopulationSize() int { return c.PopulationSize }
func (c *KnapsackConfig) GetMutationRate() float64 { return c.MutationRate }
func (c *KnapsackConfig) GetMaxGenerations() int { return c.MaxGenerations }
func (c *KnapsackConfig) GetSeed() int64 { return c.Seed }
func (c *KnapsackConfig) GetInstanceFile() string { return c.ItemsFile }

// Validate checks the configuration with the default validator
func (c *KnapsackConfig) Validate() error {
	return NewSolverValidator().Validate(c)
}

// GAConfig returns the engine configuration
func (c *KnapsackConfig) GAConfig() optimization.KnapsackGAConfig {
	return optimization.KnapsackGAConfig{
		PopulationSize: c.PopulationSize,
		MutationRate:   c.MutationRate,
		CrossoverRate:  c.CrossoverRate,
	}
}
