package data

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomItems(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := GenerateRandomItems(500, rng)

	assert.Len(t, items, 500)
	for _, item := range items {
		assert.GreaterOrEqual(t, item.Weight, MinItemWeight)
		assert.LessOrEqual(t, item.Weight, MaxItemWeight)
		assert.GreaterOrEqual(t, item.Value, MinItemValue)
		assert.LessOrEqual(t, item.Value, MaxItemValue)
	}

	assert.Empty(t, GenerateRandomItems(0, rng))
	assert.NotNil(t, GenerateRandomItems(-3, rng))
}

func TestGenerateRandomItems_Seeded(t *testing.T) {
	a := GenerateRandomItems(20, rand.New(rand.NewSource(99)))
	b := GenerateRandomItems(20, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestCreateRandomLocations(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cities := CreateRandomLocations(100, 400, 300, rng)

	assert.Len(t, cities, 100)
	for i, c := range cities {
		assert.Equal(t, i, c.ID)
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.Less(t, c.X, 400.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.Less(t, c.Y, 300.0)
	}

	assert.Empty(t, CreateRandomLocations(0, 10, 10, rng))
}
