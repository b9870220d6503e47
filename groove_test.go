package groove

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// 30° helix on a ⌀10x50mm tool, the reference case used throughout.
var refParams = Params{
	HelixAngle:  30,
	Diameter:    10,
	Length:      50,
	BladeWidth:  2,
	BladeHeight: 1,
}

func TestComputeReference(t *testing.T) {
	const tol = 1e-9
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	wantCirc := math.Pi * 10
	if !scalar.EqualWithinAbs(g.Circumference, wantCirc, tol) {
		t.Errorf("circumference got %g. want %g", g.Circumference, wantCirc)
	}
	wantPitch := wantCirc / math.Tan(DtoR(30))
	if !scalar.EqualWithinAbs(g.Pitch, wantPitch, tol) {
		t.Errorf("pitch got %g. want %g", g.Pitch, wantPitch)
	}
	if !scalar.EqualWithinAbs(g.Pitch, 54.414, 1e-3) {
		t.Errorf("pitch got %.4f. want 54.414", g.Pitch)
	}
	wantRevs := 50 / wantPitch
	if !scalar.EqualWithinAbs(g.Revolutions, wantRevs, tol) {
		t.Errorf("revolutions got %g. want %g", g.Revolutions, wantRevs)
	}
	// 0.9189... revolutions at 100 samples per revolution rounds to 92
	// segments, so 93 points.
	if len(g.Center) != 93 {
		t.Errorf("centerline point count got %d. want 93", len(g.Center))
	}
	first := g.Center[0]
	if first.X != 0 || first.Y != 0 {
		t.Errorf("centerline must start at origin, got %+v", first)
	}
	last := g.Center[len(g.Center)-1]
	if !scalar.EqualWithinAbs(last.X, 50, tol) {
		t.Errorf("centerline end x got %g. want 50", last.X)
	}
	wantY := 50 * math.Tan(DtoR(30))
	if !scalar.EqualWithinAbs(last.Y, wantY, tol) {
		t.Errorf("centerline end y got %g. want %g", last.Y, wantY)
	}
	if !scalar.EqualWithinAbs(last.Y, 28.8675, 1e-4) {
		t.Errorf("centerline end y got %.5f. want 28.8675", last.Y)
	}
}

func TestCenterlineOnHelixLine(t *testing.T) {
	const tol = 1e-12
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	slope := math.Tan(DtoR(refParams.HelixAngle))
	for i, p := range g.Center {
		if i > 0 && p.X <= g.Center[i-1].X {
			t.Fatalf("centerline x not strictly increasing at %d: %g then %g", i, g.Center[i-1].X, p.X)
		}
		if !scalar.EqualWithinAbs(p.Y, p.X*slope, tol) {
			t.Fatalf("point %d off the developed helix line: got y=%g, want %g", i, p.Y, p.X*slope)
		}
	}
}

func TestBoundaryOffsets(t *testing.T) {
	const tol = 1e-12
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Left) != len(g.Center) || len(g.Right) != len(g.Center) {
		t.Fatalf("boundary lengths %d, %d do not match centerline %d", len(g.Left), len(g.Right), len(g.Center))
	}
	half := refParams.BladeWidth / 2
	for i, c := range g.Center {
		l, r := g.Left[i], g.Right[i]
		if l.X != c.X || r.X != c.X {
			t.Fatalf("boundary x at %d not aligned with centerline", i)
		}
		if !scalar.EqualWithinAbs(l.Y-c.Y, half, tol) {
			t.Fatalf("left offset at %d got %g. want %g", i, l.Y-c.Y, half)
		}
		if !scalar.EqualWithinAbs(c.Y-r.Y, half, tol) {
			t.Fatalf("right offset at %d got %g. want %g", i, c.Y-r.Y, half)
		}
		// transverse flute width is exact at every station
		if !scalar.EqualWithinAbs(l.Y-r.Y, refParams.BladeWidth, tol) {
			t.Fatalf("flute width at %d got %g. want %g", i, l.Y-r.Y, refParams.BladeWidth)
		}
	}
}

func TestOutlineClosedRectangle(t *testing.T) {
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Outline) != 5 {
		t.Fatalf("outline point count got %d. want 5", len(g.Outline))
	}
	if g.Outline[0] != g.Outline[4] {
		t.Errorf("outline not closed: first %+v last %+v", g.Outline[0], g.Outline[4])
	}
	r := refParams.Diameter / 2
	for i, p := range g.Outline {
		if p.X != 0 && p.X != refParams.Length {
			t.Errorf("outline point %d x got %g. want 0 or %g", i, p.X, refParams.Length)
		}
		if p.Y != -r && p.Y != r {
			t.Errorf("outline point %d y got %g. want ±%g", i, p.Y, r)
		}
	}
}

func TestSteeperHelixWrapsMore(t *testing.T) {
	at := func(angle float64) *Groove {
		p := refParams
		p.HelixAngle = angle
		g, err := New(p)
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	prev := at(10)
	for _, angle := range []float64{20, 30, 45, 60, 75} {
		g := at(angle)
		if g.Pitch >= prev.Pitch {
			t.Errorf("pitch must shrink with helix angle: %g° gave %g after %g", angle, g.Pitch, prev.Pitch)
		}
		y, py := g.Center[len(g.Center)-1].Y, prev.Center[len(prev.Center)-1].Y
		if y <= py {
			t.Errorf("total wrap must grow with helix angle: %g° gave %g after %g", angle, y, py)
		}
		prev = g
	}
}

func TestPointCountFloor(t *testing.T) {
	// A shallow helix on a stubby tool yields a fraction of a revolution.
	// The sampling must not collapse below the floor.
	p := Params{HelixAngle: 1, Diameter: 5, Length: 1, BladeWidth: 0.5, BladeHeight: 0.2}
	g, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Center) < minSamples+1 {
		t.Errorf("point count got %d. want at least %d", len(g.Center), minSamples+1)
	}
}

func TestComputeFallback(t *testing.T) {
	// compute is total even for inputs Validate rejects. A zero angle
	// gives zero revolutions and takes the synthetic revolution branch.
	p := refParams
	p.HelixAngle = 0
	g := compute(p)
	if g.Pitch != p.Length {
		t.Errorf("fallback pitch got %g. want %g", g.Pitch, p.Length)
	}
	if g.Revolutions != 1 {
		t.Errorf("fallback revolutions got %g. want 1", g.Revolutions)
	}
	if len(g.Center) != DefaultSamplesPerRev+1 {
		t.Errorf("fallback point count got %d. want %d", len(g.Center), DefaultSamplesPerRev+1)
	}
	for _, pt := range g.Center {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			t.Fatalf("fallback produced non-finite point %+v", pt)
		}
	}
}

func TestValidate(t *testing.T) {
	mod := func(f func(*Params)) Params {
		p := refParams
		f(&p)
		return p
	}
	for _, test := range []struct {
		name  string
		p     Params
		param string
	}{
		{"angle zero", mod(func(p *Params) { p.HelixAngle = 0 }), "helix angle"},
		{"angle ninety", mod(func(p *Params) { p.HelixAngle = 90 }), "helix angle"},
		{"angle negative", mod(func(p *Params) { p.HelixAngle = -30 }), "helix angle"},
		{"angle NaN", mod(func(p *Params) { p.HelixAngle = math.NaN() }), "helix angle"},
		{"diameter zero", mod(func(p *Params) { p.Diameter = 0 }), "diameter"},
		{"diameter negative", mod(func(p *Params) { p.Diameter = -1 }), "diameter"},
		{"length zero", mod(func(p *Params) { p.Length = 0 }), "length"},
		{"width negative", mod(func(p *Params) { p.BladeWidth = -2 }), "blade width"},
		{"height zero", mod(func(p *Params) { p.BladeHeight = 0 }), "blade height"},
	} {
		g, err := New(test.p)
		if g != nil {
			t.Errorf("%s: geometry computed from invalid input", test.name)
		}
		var perr *ParamError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error %v is not a ParamError", test.name, err)
			continue
		}
		if perr.Param != test.param {
			t.Errorf("%s: rejected %q. want %q", test.name, perr.Param, test.param)
		}
	}
	if err := refParams.Validate(); err != nil {
		t.Errorf("reference parameters rejected: %v", err)
	}
}

func TestPairs(t *testing.T) {
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	pairs := g.Pairs()
	if len(pairs) != len(g.Center) {
		t.Fatalf("pair count got %d. want %d", len(pairs), len(g.Center))
	}
	for i, pr := range pairs {
		if pr.Left != g.Left[i] || pr.Right != g.Right[i] {
			t.Fatalf("pair %d does not match boundaries", i)
		}
	}
	// refined sequences may differ in length; the shorter side wins
	g.Right = g.Right[:10]
	if got := len(g.Pairs()); got != 10 {
		t.Errorf("unbalanced pair count got %d. want 10", got)
	}
}

func TestBounds(t *testing.T) {
	const tol = 1e-9
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	bb := g.Bounds()
	if bb.Min.X != 0 || !scalar.EqualWithinAbs(bb.Max.X, refParams.Length, tol) {
		t.Errorf("x bounds got [%g, %g]. want [0, %g]", bb.Min.X, bb.Max.X, refParams.Length)
	}
	// the outline reaches -r below the axis, the left boundary peaks above
	// the helix end
	if !scalar.EqualWithinAbs(bb.Min.Y, -refParams.Diameter/2, tol) {
		t.Errorf("y min got %g. want %g", bb.Min.Y, -refParams.Diameter/2)
	}
	wantMaxY := refParams.Length*math.Tan(DtoR(refParams.HelixAngle)) + refParams.BladeWidth/2
	if !scalar.EqualWithinAbs(bb.Max.Y, wantMaxY, tol) {
		t.Errorf("y max got %g. want %g", bb.Max.Y, wantMaxY)
	}
}

func TestSummary(t *testing.T) {
	g, err := New(refParams)
	if err != nil {
		t.Fatal(err)
	}
	s := g.Summary()
	for _, want := range []string{
		"points: 93",
		"pitch: 54.414",
		"revolutions: 0.919",
		"x: [0.00, 50.00]",
		"y: [-5.00, 29.87]",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q missing %q", s, want)
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	p := refParams
	for i := 0; i < b.N; i++ {
		compute(p)
	}
}
