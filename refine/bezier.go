package refine

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"honnef.co/go/curve"
)

// BezierFit smooths a polyline by fitting an optimized cubic Bézier path to
// it and flattening that path back into line segments. Endpoints stay put
// within the fitting accuracy.
type BezierFit struct {
	// Accuracy is the maximum fitting error in model units. Zero selects
	// 1e-3.
	Accuracy float64
	// Tolerance is the flattening tolerance in model units. Zero selects
	// the fitting accuracy.
	Tolerance float64
}

func (f BezierFit) Refine(pts []r2.Vec) ([]r2.Vec, error) {
	if len(pts) < 2 {
		return nil, errors.New("refine: need at least two points to fit")
	}
	acc := f.Accuracy
	if acc <= 0 {
		acc = 1e-3
	}
	tol := f.Tolerance
	if tol <= 0 {
		tol = acc
	}
	path := curve.FitToBezPathOpt(polyline(pts), acc)
	out := make([]r2.Vec, 0, len(pts))
	for el := range path.Flatten(tol) {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			out = append(out, r2.Vec{X: el.P0.X, Y: el.P0.Y})
		}
	}
	if len(out) < 2 {
		return nil, errors.New("refine: fit produced no segments")
	}
	return out, nil
}

// polyline adapts a point sequence to the curve fitting source interface,
// parametrized uniformly by segment index over t in [0, 1].
type polyline []r2.Vec

var _ curve.FittableCurve = polyline{}

func (p polyline) SamplePtDeriv(t float64) (curve.Point, curve.Vec2) {
	n := len(p) - 1
	s := t * float64(n)
	i := int(math.Floor(s))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	u := s - float64(i)
	a, b := p[i], p[i+1]
	pt := curve.Pt(a.X+u*(b.X-a.X), a.Y+u*(b.Y-a.Y))
	// The derivative with respect to t scales the segment delta by the
	// segment count.
	return pt, curve.Vec(float64(n)*(b.X-a.X), float64(n)*(b.Y-a.Y))
}

func (p polyline) SamplePtTangent(t float64, sign float64) curve.CurveFitSample {
	pt, deriv := p.SamplePtDeriv(t)
	return curve.CurveFitSample{Point: pt, Tangent: deriv}
}

func (p polyline) BreakCusp(start, end float64) (float64, bool) {
	return 0, false
}
