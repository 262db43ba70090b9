package optimization

import (
	"fmt"
	"math/rand"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// Path is a closed tour visiting every city exactly once
type Path struct {
	locations     []types.Coordinate
	totalDistance float64
}

// NewPath copies the locations and measures the closed tour
func NewPath(locations []types.Coordinate) *Path {
	owned := make([]types.Coordinate, len(locations))
	copy(owned, locations)
	return newPath(owned)
}

func newPath(locations []types.Coordinate) *Path {
	p := &Path{locations: locations}
	p.totalDistance = p.computeTotalDistance()
	return p
}

// computeTotalDistance sums consecutive legs plus the closing leg back to the start
func (p *Path) computeTotalDistance() float64 {
	n := len(p.locations)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		sum += p.locations[i].DistanceTo(p.locations[i+1])
	}
	sum += p.locations[n-1].DistanceTo(p.locations[0])
	return sum
}

// MutatePath swaps two distinct positions and re-measures the tour.
// Tours with fewer than two cities are left untouched.
func (p *Path) MutatePath(rng *rand.Rand) {
	n := len(p.locations)
	if n < 2 {
		return
	}
	idx1 := rng.Intn(n)
	idx2 := rng.Intn(n)
	for idx2 == idx1 {
		idx2 = rng.Intn(n)
	}
	p.locations[idx1], p.locations[idx2] = p.locations[idx2], p.locations[idx1]
	p.totalDistance = p.computeTotalDistance()
}

// CreateOffspring performs ordered crossover: a random contiguous slice of
// parentA is kept verbatim, then the remaining cities follow in parentB's order.
// Cities are matched by ID, so cities sharing coordinates stay distinct.
func CreateOffspring(parentA, parentB *Path, rng *rand.Rand) (*Path, error) {
	n := len(parentA.locations)
	if n != len(parentB.locations) {
		return nil, fmt.Errorf("%w: %d and %d cities", ErrPathMismatch, n, len(parentB.locations))
	}
	if n == 0 {
		return newPath(nil), nil
	}

	cutStart := rng.Intn(n)
	cutEnd := rng.Intn(n-cutStart) + cutStart

	offspring := make([]types.Coordinate, 0, n)
	offspring = append(offspring, parentA.locations[cutStart:cutEnd+1]...)

	present := make(map[int]struct{}, n)
	for _, city := range offspring {
		present[city.ID] = struct{}{}
	}
	for _, city := range parentB.locations {
		if _, ok := present[city.ID]; ok {
			continue
		}
		present[city.ID] = struct{}{}
		offspring = append(offspring, city)
	}

	if len(offspring) != n {
		return nil, fmt.Errorf("%w: offspring has %d of %d cities", ErrPathMismatch, len(offspring), n)
	}
	return newPath(offspring), nil
}

// TotalDistance returns the closed tour length
func (p *Path) TotalDistance() float64 {
	return p.totalDistance
}

// Locations returns a copy of the tour in visiting order
func (p *Path) Locations() []types.Coordinate {
	out := make([]types.Coordinate, len(p.locations))
	copy(out, p.locations)
	return out
}

// Order returns the city IDs in visiting order
func (p *Path) Order() []int {
	order := make([]int, len(p.locations))
	for i, c := range p.locations {
		order[i] = c.ID
	}
	return order
}

// Len returns the number of cities in the tour
func (p *Path) Len() int {
	return len(p.locations)
}

// Clone returns an independent copy
func (p *Path) Clone() *Path {
	return &Path{
		locations:     p.Locations(),
		totalDistance: p.totalDistance,
	}
}
