package optimization

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises one population.
// For the knapsack the values are fitness (higher is better); for the TSP they
// are tour lengths (lower is better).
type GenerationStats struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Worst      float64 `json:"worst"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
}

func computeStats(generation int, values []float64, higherIsBetter bool) GenerationStats {
	s := GenerationStats{Generation: generation}
	if len(values) == 0 {
		return s
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if higherIsBetter {
		s.Best, s.Worst = hi, lo
	} else {
		s.Best, s.Worst = lo, hi
	}

	if len(values) == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}
