package data

import (
	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// InstanceProvider loads problem instances from an external source
type InstanceProvider interface {
	// LoadItems loads knapsack items (weight, value) from the source
	LoadItems(source string) ([]types.Item, error)

	// LoadCities loads TSP cities (x, y) from the source
	LoadCities(source string) ([]types.Coordinate, error)

	// GetName returns the name of the provider
	GetName() string
}

// InstanceCache stores previously loaded instances keyed by source
type InstanceCache interface {
	GetItems(key string) ([]types.Item, bool)
	SetItems(key string, items []types.Item)
	GetCities(key string) ([]types.Coordinate, bool)
	SetCities(key string, cities []types.Coordinate)
	Clear()
	Size() int
}

// CSVColumnMapping defines which columns hold the numeric fields of a row.
// Items use FirstCol as weight and SecondCol as value; cities use them as x and y.
type CSVColumnMapping struct {
	FirstCol   int
	SecondCol  int
	MinColumns int
}

// Predefined CSV formats
var (
	DefaultItemFormat = CSVColumnMapping{
		FirstCol:   0,
		SecondCol:  1,
		MinColumns: 2,
	}

	DefaultCityFormat = CSVColumnMapping{
		FirstCol:   0,
		SecondCol:  1,
		MinColumns: 2,
	}
)
