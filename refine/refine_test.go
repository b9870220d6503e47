package refine

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func line(n int) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		x := 10 * float64(i) / float64(n-1)
		pts[i] = r2.Vec{X: x, Y: 0.5 * x}
	}
	return pts
}

func TestIdentity(t *testing.T) {
	in := line(5)
	out, err := Identity{}.Refine(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("length changed: got %d. want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("point %d changed: got %+v. want %+v", i, out[i], in[i])
		}
	}
}

type erroring struct{}

func (erroring) Refine([]r2.Vec) ([]r2.Vec, error) { return nil, errors.New("boom") }

type panicking struct{}

func (panicking) Refine([]r2.Vec) ([]r2.Vec, error) { panic("boom") }

type garbage struct{ out []r2.Vec }

func (g garbage) Refine([]r2.Vec) ([]r2.Vec, error) { return g.out, nil }

type scribbler struct{}

func (scribbler) Refine(pts []r2.Vec) ([]r2.Vec, error) {
	for i := range pts {
		pts[i] = r2.Vec{X: -1, Y: -1}
	}
	return nil, errors.New("half way failure")
}

func TestApplyDegradesToInput(t *testing.T) {
	in := line(8)
	for _, test := range []struct {
		name string
		r    Refiner
	}{
		{"nil refiner", nil},
		{"backend error", erroring{}},
		{"backend panic", panicking{}},
		{"empty output", garbage{nil}},
		{"single point output", garbage{[]r2.Vec{{1, 1}}}},
		{"NaN output", garbage{[]r2.Vec{{0, 0}, {math.NaN(), 1}}}},
		{"Inf output", garbage{[]r2.Vec{{0, 0}, {math.Inf(1), 1}}}},
	} {
		out := Apply(test.r, in)
		if len(out) != len(in) {
			t.Errorf("%s: got %d points. want input unchanged with %d", test.name, len(out), len(in))
			continue
		}
		for i := range in {
			if out[i] != in[i] {
				t.Errorf("%s: point %d got %+v. want %+v", test.name, i, out[i], in[i])
				break
			}
		}
	}
}

func TestApplyShieldsCallerSlice(t *testing.T) {
	in := line(8)
	want := line(8)
	Apply(scribbler{}, in)
	for i := range in {
		if in[i] != want[i] {
			t.Fatalf("caller slice mutated at %d: got %+v. want %+v", i, in[i], want[i])
		}
	}
}

func TestApplyEmptyInput(t *testing.T) {
	if out := Apply(Identity{}, nil); out != nil {
		t.Errorf("nil input: got %v. want nil", out)
	}
}

func TestBezierFitStraightLine(t *testing.T) {
	const tol = 0.05
	in := line(101)
	out, err := BezierFit{}.Refine(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) < 2 {
		t.Fatalf("fit produced %d points", len(out))
	}
	first, last := out[0], out[len(out)-1]
	if math.Abs(first.X) > tol || math.Abs(first.Y) > tol {
		t.Errorf("start moved to %+v", first)
	}
	if math.Abs(last.X-10) > tol || math.Abs(last.Y-5) > tol {
		t.Errorf("end moved to %+v", last)
	}
	for i, p := range out {
		if math.Abs(p.Y-0.5*p.X) > tol {
			t.Errorf("point %d strays off the line: %+v", i, p)
		}
	}
}

func TestBezierFitTooFewPoints(t *testing.T) {
	if _, err := (BezierFit{}).Refine([]r2.Vec{{1, 1}}); err == nil {
		t.Error("single point input must error")
	}
}

func TestApplyBezierOnHelixArc(t *testing.T) {
	// a gentle arc, as produced by a developed helix after smoothing in
	// the desktop tools this replaces
	n := 200
	in := make([]r2.Vec, n)
	for i := range in {
		u := float64(i) / float64(n-1)
		in[i] = r2.Vec{X: 50 * u, Y: 30*u + 2*math.Sin(math.Pi*u)}
	}
	out := Apply(BezierFit{Accuracy: 1e-2}, in)
	if len(out) < 2 {
		t.Fatalf("apply returned %d points", len(out))
	}
	for _, p := range out {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatal("NaN point in refined output")
		}
	}
	first, last := out[0], out[len(out)-1]
	if math.Abs(first.X) > 0.1 || math.Abs(first.Y) > 0.1 {
		t.Errorf("arc start moved to %+v", first)
	}
	if math.Abs(last.X-50) > 0.1 || math.Abs(last.Y-30) > 0.1 {
		t.Errorf("arc end moved to %+v", last)
	}
}
