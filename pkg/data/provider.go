package data

import (
	"math/rand"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// DataManager resolves problem instances either from a file or from the
// random generators
type DataManager struct {
	provider InstanceProvider
}

// NewDataManager creates a data manager backed by a cached CSV provider
func NewDataManager() *DataManager {
	return &DataManager{
		provider: NewCachedProvider(NewCSVProvider()),
	}
}

// NewDataManagerWithProvider creates a data manager with a custom provider
func NewDataManagerWithProvider(provider InstanceProvider) *DataManager {
	return &DataManager{provider: provider}
}

// KnapsackItems loads items from source, or generates count random items
// when source is empty
func (dm *DataManager) KnapsackItems(source string, count int, rng *rand.Rand) ([]types.Item, error) {
	if source == "" {
		return GenerateRandomItems(count, rng), nil
	}
	return dm.provider.LoadItems(source)
}

// TSPCities loads cities from source, or places count random cities inside
// width x height when source is empty
func (dm *DataManager) TSPCities(source string, count int, width, height float64, rng *rand.Rand) ([]types.Coordinate, error) {
	if source == "" {
		return CreateRandomLocations(count, width, height, rng), nil
	}
	return dm.provider.LoadCities(source)
}

// GetProvider returns the underlying provider
func (dm *DataManager) GetProvider() InstanceProvider {
	return dm.provider
}

// DefaultDataManager provides a shared instance for the command line tools
var DefaultDataManager = NewDataManager()

// LoadItems - global convenience function
func LoadItems(filename string) ([]types.Item, error) {
	return DefaultDataManager.provider.LoadItems(filename)
}

// LoadCities - global convenience function
func LoadCities(filename string) ([]types.Coordinate, error) {
	return DefaultDataManager.provider.LoadCities(filename)
}
