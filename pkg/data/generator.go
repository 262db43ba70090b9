package data

import (
	"math/rand"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// Ranges used by GenerateRandomItems (inclusive)
const (
	MinItemWeight = 1
	MaxItemWeight = 10
	MinItemValue  = 1
	MaxItemValue  = 100
)

// GenerateRandomItems draws count items with weight in [1,10] and value in [1,100]
func GenerateRandomItems(count int, rng *rand.Rand) []types.Item {
	if count <= 0 {
		return []types.Item{}
	}
	items := make([]types.Item, count)
	for i := range items {
		items[i] = types.Item{
			Weight: MinItemWeight + rng.Intn(MaxItemWeight-MinItemWeight+1),
			Value:  MinItemValue + rng.Intn(MaxItemValue-MinItemValue+1),
		}
	}
	return items
}

// CreateRandomLocations places count cities uniformly in [0,maxWidth) x [0,maxHeight).
// IDs run from 0 to count-1.
func CreateRandomLocations(count int, maxWidth, maxHeight float64, rng *rand.Rand) []types.Coordinate {
	if count <= 0 {
		return []types.Coordinate{}
	}
	cities := make([]types.Coordinate, count)
	for i := range cities {
		cities[i] = types.Coordinate{
			ID: i,
			X:  rng.Float64() * maxWidth,
			Y:  rng.Float64() * maxHeight,
		}
	}
	return cities
}
