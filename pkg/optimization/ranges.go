package optimization

// GA defaults taken from the interactive tools these engines were built for
const (
	DefaultPopulationSize      = 50
	DefaultKnapsackMutation    = 0.05
	DefaultKnapsackCrossover   = 0.8
	DefaultTSPMutationRate     = 0.1
	DefaultTSPMaxGenerations   = 1000
	DefaultTSPStagnationLimit  = 100
	DefaultKnapsackGenerations = 100
)

// GetDefaultKnapsackGAConfig returns the default knapsack GA configuration
func GetDefaultKnapsackGAConfig() KnapsackGAConfig {
	return KnapsackGAConfig{
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultKnapsackMutation,
		CrossoverRate:  DefaultKnapsackCrossover,
	}
}

// GetDefaultTSPGAConfig returns the default TSP GA configuration
func GetDefaultTSPGAConfig() TSPGAConfig {
	return TSPGAConfig{
		PopulationSize:  DefaultPopulationSize,
		MutationRate:    DefaultTSPMutationRate,
		MaxGenerations:  DefaultTSPMaxGenerations,
		StagnationLimit: DefaultTSPStagnationLimit,
	}
}
