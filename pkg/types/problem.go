package types

import (
	"fmt"
	"math"
)

// Item is a single knapsack candidate. Weight and Value are positive integers.
type Item struct {
	Weight int `json:"weight"`
	Value  int `json:"value"`
}

func (i Item) String() string {
	return fmt.Sprintf("Weight = %d, Value = %d", i.Weight, i.Value)
}

// Coordinate is a city location on the plane.
// ID is the city's stable identity; two cities may share X/Y but never an ID.
type Coordinate struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between two coordinates
func (c Coordinate) DistanceTo(target Coordinate) float64 {
	return math.Hypot(c.X-target.X, c.Y-target.Y)
}

// TotalWeight sums the weights of the given item indices
func TotalWeight(items []Item, indices []int) int {
	total := 0
	for _, idx := range indices {
		total += items[idx].Weight
	}
	return total
}

// TotalValue sums the values of the given item indices
func TotalValue(items []Item, indices []int) int {
	total := 0
	for _, idx := range indices {
		total += items[idx].Value
	}
	return total
}
