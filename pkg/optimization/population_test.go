package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name           string
		values         []float64
		higherIsBetter bool
		want           GenerationStats
	}{
		{"empty", nil, true, GenerationStats{Generation: 4}},
		{"single value", []float64{7}, true, GenerationStats{Generation: 4, Best: 7, Worst: 7, Mean: 7}},
		{"maximising", []float64{2, 4, 6}, true, GenerationStats{Generation: 4, Best: 6, Worst: 2, Mean: 4, StdDev: 2}},
		{"minimising", []float64{2, 4, 6}, false, GenerationStats{Generation: 4, Best: 2, Worst: 6, Mean: 4, StdDev: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeStats(4, tt.values, tt.higherIsBetter)
			assert.Equal(t, tt.want.Generation, got.Generation)
			assert.InDelta(t, tt.want.Best, got.Best, 1e-9)
			assert.InDelta(t, tt.want.Worst, got.Worst, 1e-9)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.want.StdDev, got.StdDev, 1e-9)
		})
	}
}

func TestNewRNG_SeedIsReproducible(t *testing.T) {
	a := NewRNG(5)
	b := NewRNG(5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
	assert.NotNil(t, NewRNG(0))
	assert.NotNil(t, ensureRNG(nil))
}
