package problem

import "time"

// Seed durations for freshly generated facts. Harder operations start with a
// longer assumed solve time so they surface more often early on. All are
// strictly positive, which keeps a resting catalog's total score above zero.
const (
	AdditionSeedTime       = 5 * time.Second
	SubtractionSeedTime    = 10 * time.Second
	MultiplicationSeedTime = 15 * time.Second
)

// Catalog is the ordered collection of problems available for selection.
// Generators may produce exact duplicates when ranges overlap; the selector
// treats duplicates as independent, equally-weighted entries.
type Catalog []*Problem

// Ops returns the distinct operators present in the catalog, in first-seen
// order.
func (c Catalog) Ops() []Op {
	seen := make(map[Op]bool)
	var ops []Op
	for _, p := range c {
		if !seen[p.Op()] {
			seen[p.Op()] = true
			ops = append(ops, p.Op())
		}
	}
	return ops
}

// TotalScore sums the selection scores of all problems in catalog order.
func (c Catalog) TotalScore() float64 {
	var total float64
	for _, p := range c {
		total += p.Score()
	}
	return total
}

// AddAddition appends the addition facts: x in 1..15 against y in 0..13,
// both operand orders when they differ.
func AddAddition(c Catalog) Catalog {
	for x := uint8(1); x <= 15; x++ {
		for y := uint8(0); y <= 13; y++ {
			c = append(c, mustNew(x, y, OpPlus, AdditionSeedTime))
			if x != y {
				c = append(c, mustNew(y, x, OpPlus, AdditionSeedTime))
			}
		}
	}
	return c
}

// AddSubtraction appends the subtraction facts with non-negative results:
// x in 0..15 against y in 1..x-1.
func AddSubtraction(c Catalog) Catalog {
	for x := uint8(0); x <= 15; x++ {
		for y := uint8(1); y < x; y++ {
			c = append(c, mustNew(x, y, OpMinus, SubtractionSeedTime))
		}
	}
	return c
}

// AddMultiplication appends the starter multiplication facts: x in 1..5
// against y in 1..3.
func AddMultiplication(c Catalog) Catalog {
	for x := uint8(1); x <= 5; x++ {
		for y := uint8(1); y <= 3; y++ {
			c = append(c, mustNew(x, y, OpMultiply, MultiplicationSeedTime))
		}
	}
	return c
}

// NewDefaultCatalog builds the full starter catalog: addition, subtraction,
// then multiplication.
func NewDefaultCatalog() Catalog {
	var c Catalog
	c = AddAddition(c)
	c = AddSubtraction(c)
	c = AddMultiplication(c)
	return c
}

// mustNew is for generator use only: the loops above stay inside the
// validated operand ranges, so construction cannot fail.
func mustNew(a, b uint8, op Op, seed time.Duration) *Problem {
	p, err := New(a, b, op, 0, seed)
	if err != nil {
		panic(err)
	}
	return p
}
