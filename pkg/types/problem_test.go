package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_DistanceTo(t *testing.T) {
	a := Coordinate{ID: 0, X: 0, Y: 0}
	b := Coordinate{ID: 1, X: 3, Y: 4}

	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 5.0, b.DistanceTo(a), 1e-9)
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestTotals(t *testing.T) {
	items := []Item{{Weight: 2, Value: 3}, {Weight: 3, Value: 4}, {Weight: 4, Value: 5}}

	assert.Equal(t, 5, TotalWeight(items, []int{0, 1}))
	assert.Equal(t, 7, TotalValue(items, []int{0, 1}))
	assert.Equal(t, 0, TotalWeight(items, nil))
	assert.Equal(t, 0, TotalValue(items, []int{}))
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "Weight = 2, Value = 3", Item{Weight: 2, Value: 3}.String())
}
