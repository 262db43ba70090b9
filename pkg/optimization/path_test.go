package optimization

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/ducminhle1904/ga-solver/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []types.Coordinate {
	return []types.Coordinate{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
	}
}

func randomCities(rng *rand.Rand, n int) []types.Coordinate {
	cities := make([]types.Coordinate, n)
	for i := range cities {
		cities[i] = types.Coordinate{ID: i, X: rng.Float64() * 800, Y: rng.Float64() * 600}
	}
	return cities
}

func sortedIDs(p *Path) []int {
	ids := p.Order()
	sort.Ints(ids)
	return ids
}

func TestNewPath_TotalDistance(t *testing.T) {
	tests := []struct {
		name      string
		locations []types.Coordinate
		want      float64
	}{
		{"empty tour", nil, 0},
		{"single city", []types.Coordinate{{ID: 0, X: 5, Y: 5}}, 0},
		{"two cities go there and back", []types.Coordinate{{ID: 0}, {ID: 1, X: 3, Y: 4}}, 10},
		{"unit square", square(), 4},
		{"crossed square", []types.Coordinate{square()[0], square()[2], square()[1], square()[3]}, 2 + 2*1.4142135623730951},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewPath(tt.locations).TotalDistance(), 1e-9)
		})
	}
}

func TestNewPath_CopiesLocations(t *testing.T) {
	cities := square()
	p := NewPath(cities)
	cities[0] = types.Coordinate{ID: 9, X: 100, Y: 100}

	assert.Equal(t, []int{0, 1, 2, 3}, p.Order())
	assert.InDelta(t, 4.0, p.TotalDistance(), 1e-9)
}

func TestPath_MutateSwapsTwoPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	p := NewPath(randomCities(rng, 12))

	for i := 0; i < 100; i++ {
		before := p.Order()
		p.MutatePath(rng)
		after := p.Order()

		changed := 0
		for j := range before {
			if before[j] != after[j] {
				changed++
			}
		}
		assert.Equal(t, 2, changed)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, sortedIDs(p))
		assert.InDelta(t, p.computeTotalDistance(), p.TotalDistance(), 1e-9)
	}
}

func TestPath_MutateSmallToursNoop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	single := NewPath([]types.Coordinate{{ID: 4, X: 1, Y: 1}})
	single.MutatePath(rng)
	assert.Equal(t, []int{4}, single.Order())

	empty := NewPath(nil)
	empty.MutatePath(rng)
	assert.Equal(t, 0, empty.Len())
}

func TestPath_MutateTwoCitiesAlwaysSwaps(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	p := NewPath([]types.Coordinate{{ID: 0}, {ID: 1, X: 1}})

	p.MutatePath(rng)
	assert.Equal(t, []int{1, 0}, p.Order())
}

func TestCreateOffspring_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	cities := randomCities(rng, 15)

	want := make([]int, len(cities))
	for i := range want {
		want[i] = i
	}

	for trial := 0; trial < 300; trial++ {
		a := NewPath(cities)
		b := NewPath(cities)
		for k := 0; k < 10; k++ {
			a.MutatePath(rng)
			b.MutatePath(rng)
		}

		child, err := CreateOffspring(a, b, rng)
		require.NoError(t, err)
		assert.Equal(t, want, sortedIDs(child))
		assert.InDelta(t, child.computeTotalDistance(), child.TotalDistance(), 1e-9)
	}
}

func TestCreateOffspring_DuplicateCoordinatesStayDistinct(t *testing.T) {
	cities := []types.Coordinate{
		{ID: 0, X: 10, Y: 10},
		{ID: 1, X: 10, Y: 10},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 50, Y: 20},
		{ID: 4, X: 50, Y: 20},
	}
	rng := rand.New(rand.NewSource(4))

	for trial := 0; trial < 200; trial++ {
		a := NewPath(cities)
		b := NewPath(cities)
		a.MutatePath(rng)
		b.MutatePath(rng)
		b.MutatePath(rng)

		child, err := CreateOffspring(a, b, rng)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, sortedIDs(child))
	}
}

func TestCreateOffspring_KeepsContiguousSliceOfParentA(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	cities := randomCities(rng, 10)
	a := NewPath(cities)
	b := NewPath(cities)
	for k := 0; k < 6; k++ {
		b.MutatePath(rng)
	}

	for trial := 0; trial < 100; trial++ {
		child, err := CreateOffspring(a, b, rng)
		require.NoError(t, err)

		// the child opens with a contiguous run of a's order, the rest follows b's order
		order := child.Order()
		aOrder := a.Order()
		start := -1
		for i, id := range aOrder {
			if id == order[0] {
				start = i
				break
			}
		}
		require.GreaterOrEqual(t, start, 0)

		run := 1
		for run < len(order) && start+run < len(aOrder) && order[run] == aOrder[start+run] {
			run++
		}

		position := make(map[int]int, len(cities))
		for i, id := range b.Order() {
			position[id] = i
		}
		for i := run + 1; i < len(order); i++ {
			assert.Less(t, position[order[i-1]], position[order[i]])
		}
	}
}

func TestCreateOffspring_Mismatch(t *testing.T) {
	_, err := CreateOffspring(NewPath(square()), NewPath(square()[:3]), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrPathMismatch)

	other := []types.Coordinate{{ID: 10}, {ID: 11}, {ID: 12}, {ID: 13}}
	_, err = CreateOffspring(NewPath(square()), NewPath(other), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrPathMismatch)
}

func TestCreateOffspring_Empty(t *testing.T) {
	child, err := CreateOffspring(NewPath(nil), NewPath(nil), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, child.Len())
	assert.Equal(t, 0.0, child.TotalDistance())
}

func TestPath_CloneIsIndependent(t *testing.T) {
	p := NewPath(square())
	clone := p.Clone()
	clone.MutatePath(rand.New(rand.NewSource(2)))

	assert.Equal(t, []int{0, 1, 2, 3}, p.Order())
	assert.NotEqual(t, p.Order(), clone.Order())
}
