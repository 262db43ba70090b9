package optimization

import (
	"fmt"
	"math/rand"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// Chromosome is a knapsack candidate: one bit per item.
// Fitness is the total selected value, or 0 when the selection exceeds capacity.
type Chromosome struct {
	genes    []uint8
	items    []types.Item // shared, never modified
	capacity int
	fitness  int
}

// NewChromosome creates a chromosome and evaluates it.
// The genes slice is copied.
func NewChromosome(genes []uint8, items []types.Item, capacity int) (*Chromosome, error) {
	if len(genes) != len(items) {
		return nil, fmt.Errorf("%w: %d genes for %d items", ErrGeneLengthMismatch, len(genes), len(items))
	}
	for i, g := range genes {
		if g > 1 {
			return nil, fmt.Errorf("%w: gene %d = %d", ErrInvalidGene, i, g)
		}
	}

	owned := make([]uint8, len(genes))
	copy(owned, genes)
	return newChromosome(owned, items, capacity), nil
}

// newChromosome takes ownership of genes without validation
func newChromosome(genes []uint8, items []types.Item, capacity int) *Chromosome {
	c := &Chromosome{
		genes:    genes,
		items:    items,
		capacity: capacity,
	}
	c.fitness = c.calculateFitness()
	return c
}

func (c *Chromosome) calculateFitness() int {
	totalWeight, totalValue := 0, 0
	for i, g := range c.genes {
		if g == 1 {
			totalWeight += c.items[i].Weight
			totalValue += c.items[i].Value
		}
	}
	if totalWeight > c.capacity {
		return 0
	}
	return totalValue
}

// Mutate flips one uniformly chosen gene and re-evaluates
func (c *Chromosome) Mutate(rng *rand.Rand) {
	if len(c.genes) == 0 {
		return
	}
	idx := rng.Intn(len(c.genes))
	c.genes[idx] ^= 1
	c.fitness = c.calculateFitness()
}

// Crossover produces a child by single-point crossover.
// The child takes parentA's genes before the cut and parentB's from the cut on.
func Crossover(parentA, parentB *Chromosome, rng *rand.Rand) (*Chromosome, error) {
	if len(parentA.genes) != len(parentB.genes) {
		return nil, fmt.Errorf("%w: parents have %d and %d genes", ErrGeneLengthMismatch, len(parentA.genes), len(parentB.genes))
	}

	n := len(parentA.genes)
	cut := 0
	if n > 0 {
		cut = rng.Intn(n)
	}

	childGenes := make([]uint8, 0, n)
	childGenes = append(childGenes, parentA.genes[:cut]...)
	childGenes = append(childGenes, parentB.genes[cut:]...)

	return newChromosome(childGenes, parentA.items, parentA.capacity), nil
}

// Clone returns an independent copy sharing only the item list
func (c *Chromosome) Clone() *Chromosome {
	genes := make([]uint8, len(c.genes))
	copy(genes, c.genes)
	return &Chromosome{
		genes:    genes,
		items:    c.items,
		capacity: c.capacity,
		fitness:  c.fitness,
	}
}

// Fitness returns the cached fitness
func (c *Chromosome) Fitness() int {
	return c.fitness
}

// Genes returns a copy of the bit vector
func (c *Chromosome) Genes() []uint8 {
	genes := make([]uint8, len(c.genes))
	copy(genes, c.genes)
	return genes
}

// Capacity returns the weight bound the chromosome is evaluated against
func (c *Chromosome) Capacity() int {
	return c.capacity
}

// SelectedItems returns the indices of items whose gene is set, ascending
func (c *Chromosome) SelectedItems() []int {
	selected := make([]int, 0, len(c.genes))
	for i, g := range c.genes {
		if g == 1 {
			selected = append(selected, i)
		}
	}
	return selected
}

// TotalWeight returns the weight of the selection regardless of feasibility
func (c *Chromosome) TotalWeight() int {
	return types.TotalWeight(c.items, c.SelectedItems())
}

// TotalValue returns the value of the selection regardless of feasibility
func (c *Chromosome) TotalValue() int {
	return types.TotalValue(c.items, c.SelectedItems())
}

// IsFeasible reports whether the selection fits the capacity
func (c *Chromosome) IsFeasible() bool {
	return c.TotalWeight() <= c.capacity
}

// String renders the genes the way the run log prints them, e.g. "1,0,1"
func (c *Chromosome) String() string {
	buf := make([]byte, 0, 2*len(c.genes))
	for i, g := range c.genes {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '0'+g)
	}
	return string(buf)
}
