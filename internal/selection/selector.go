// Package selection implements the adaptive weighted draw over a problem
// catalog: each problem's selection probability is proportional to its
// score, so facts the user misses often or answers slowly come up more.
package selection

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/mathdrill/internal/problem"
)

// ErrEmptyCatalog is returned when Select is called with no problems.
var ErrEmptyCatalog = errors.New("cannot select from an empty catalog")

// Source yields uniform draws over the closed interval [0, max]. Select
// must honor an inclusive pick: a draw of exactly max selects the last
// weighted element. The math/rand-backed sources below in practice return
// values from the half-open [0, max), which only forfeits a measure-zero
// endpoint; test sources may return max itself. Callers own the source,
// which keeps selection deterministic under test seeding.
type Source interface {
	Uniform(max float64) float64
}

// randSource adapts math/rand/v2 to Source. Float64 yields [0, 1), so the
// draw covers [0, max).
type randSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) Source {
	return &randSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// DefaultSource returns a Source backed by the shared math/rand/v2 state.
func DefaultSource() Source {
	return defaultSource{}
}

type defaultSource struct{}

func (defaultSource) Uniform(max float64) float64 {
	return rand.Float64() * max
}

func (s *randSource) Uniform(max float64) float64 {
	return s.r.Float64() * max
}

// Select draws one problem index from the catalog with probability
// proportional to its score.
//
// The draw is a single pass to total the scores, one uniform pick over the
// closed interval [0, total], then a cumulative-sum scan returning the first
// index whose running sum reaches the pick. A pick of exactly the total
// lands on the last index with nonzero score, and a catalog whose scores all
// sum to zero collapses the draw range to {0}, deterministically selecting
// index 0. No division is performed, so neither boundary can fault.
//
// Select never mutates the catalog and holds no state between calls.
func Select(src Source, catalog problem.Catalog) (int, error) {
	if len(catalog) == 0 {
		return 0, ErrEmptyCatalog
	}

	total := catalog.TotalScore()
	pick := src.Uniform(total)

	var running float64
	for i, p := range catalog {
		running += p.Score()
		if running >= pick {
			return i, nil
		}
	}

	// Floating-point rounding can leave the final running sum a hair below
	// the precomputed total; the last problem is the correct owner of that
	// sliver of the range.
	return len(catalog) - 1, nil
}
