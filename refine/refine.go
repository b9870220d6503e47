// Package refine smooths computed flute polylines. Refinement is an optional
// collaborator of the geometry core: every backend failure degrades silently
// to the unrefined input, so refining can change fidelity but never
// correctness.
package refine

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Refiner resamples a polyline into a visually smoother one. Implementations
// need not preserve point count or exact coordinates.
type Refiner interface {
	Refine(pts []r2.Vec) ([]r2.Vec, error)
}

// Identity is the always available backend. It returns its input unchanged.
type Identity struct{}

func (Identity) Refine(pts []r2.Vec) ([]r2.Vec, error) { return pts, nil }

// Apply runs r over pts and degrades to the unrefined input when the backend
// returns an error, panics, or produces unusable output. The caller's slice
// is never partially mutated: Apply hands the backend a copy and returns
// either the backend's full result or the original sequence untouched.
func Apply(r Refiner, pts []r2.Vec) []r2.Vec {
	if r == nil || len(pts) == 0 {
		return pts
	}
	out, err := refineSafe(r, pts)
	if err != nil || !usable(out) {
		return pts
	}
	return out
}

func refineSafe(r Refiner, pts []r2.Vec) (out []r2.Vec, err error) {
	defer func() {
		if recover() != nil {
			out, err = nil, errors.New("refine: backend panic")
		}
	}()
	cp := make([]r2.Vec, len(pts))
	copy(cp, pts)
	return r.Refine(cp)
}

func usable(pts []r2.Vec) bool {
	if len(pts) < 2 {
		return false
	}
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
