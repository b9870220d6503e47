// Package groove computes the developed (unrolled) geometry of helical
// flutes on rotary cutting tools.
package groove

import (
	"fmt"
	"math"

	"github.com/zhk0567/groove/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultSamplesPerRev is the sampling density of the centerline, in points
// per full helix revolution, used when Params.SamplesPerRev is zero.
const DefaultSamplesPerRev = 100

// minSamples keeps very short or very low-pitch tools renderable.
const minSamples = 10

// Params are the physical parameters of a helical flute. Lengths are in
// millimetres, the helix angle in degrees.
type Params struct {
	// HelixAngle is the angle between the flute and the tool axis,
	// strictly between 0 and 90 degrees.
	HelixAngle float64
	// Diameter of the tool body.
	Diameter float64
	// Length of the tool along its axis.
	Length float64
	// BladeWidth is the flute width in the developed view.
	BladeWidth float64
	// BladeHeight is the flute depth. It does not participate in the 2d
	// developed view and is only consumed by the 3d reconstruction.
	BladeHeight float64
	// SamplesPerRev is the centerline sampling density per helix
	// revolution. Zero selects DefaultSamplesPerRev.
	SamplesPerRev int
}

// ParamError describes a parameter outside its valid domain.
type ParamError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("groove: %s is %g, must be %s", e.Param, e.Value, e.Constraint)
}

// Validate checks p against its domain and returns a *ParamError describing
// the first violation found. Geometry computation expects validated input.
func (p Params) Validate() error {
	switch {
	case !(p.HelixAngle > 0 && p.HelixAngle < 90):
		return &ParamError{"helix angle", p.HelixAngle, "strictly between 0 and 90 degrees"}
	case !(p.Diameter > 0):
		return &ParamError{"diameter", p.Diameter, "positive"}
	case !(p.Length > 0):
		return &ParamError{"length", p.Length, "positive"}
	case !(p.BladeWidth > 0):
		return &ParamError{"blade width", p.BladeWidth, "positive"}
	case !(p.BladeHeight > 0):
		return &ParamError{"blade height", p.BladeHeight, "positive"}
	}
	return nil
}

// Groove is the developed geometry of one helical flute. All coordinates are
// millimetres in model space: x along the tool axis, y along the unrolled
// circumference. A Groove is computed wholesale by New and never mutated;
// a new parameter submission produces a new Groove.
type Groove struct {
	Params Params

	// Circumference is π times the tool diameter.
	Circumference float64
	// Pitch is the axial advance of one full helix revolution.
	Pitch float64
	// Revolutions spanned by the tool length.
	Revolutions float64

	// Center is the flute centerline, strictly increasing in x from 0 to
	// the tool length.
	Center []r2.Vec
	// Left and Right are the flute boundaries, index aligned with Center
	// and offset by half the blade width along the transverse axis.
	Left  []r2.Vec
	Right []r2.Vec
	// Outline is the developed tool body, a closed 5 point rectangle.
	Outline []r2.Vec
}

// BoundaryPair is the pair of flute boundary points at one longitudinal
// position. Left and right are labels of the developed view's transverse
// axis, not of the tool rotation sense.
type BoundaryPair struct {
	Left, Right r2.Vec
}

// New validates p and computes the developed flute geometry.
func New(p Params) (*Groove, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return compute(p), nil
}

// compute assumes validated input. The fallback branch additionally keeps it
// total for the raw parameter space so that no input can divide by zero.
func compute(p Params) *Groove {
	samples := p.SamplesPerRev
	if samples <= 0 {
		samples = DefaultSamplesPerRev
	}
	circ := pi * p.Diameter
	pitch := circ / math.Tan(DtoR(p.HelixAngle))
	revs := p.Length / pitch
	if revs <= 0 || math.IsNaN(revs) || math.IsInf(revs, 0) {
		// Pathological angle or length. Treat the flute as one synthetic
		// revolution spanning the whole tool.
		pitch = p.Length
		if p.Length <= 0 {
			pitch = 1
		}
		revs = 1
	}
	n := int(math.Round(revs * float64(samples)))
	if n < minSamples {
		n = minSamples
	}

	g := &Groove{
		Params:        p,
		Circumference: circ,
		Pitch:         pitch,
		Revolutions:   revs,
		Center:        make([]r2.Vec, 0, n+1),
		Left:          make([]r2.Vec, 0, n+1),
		Right:         make([]r2.Vec, 0, n+1),
	}
	half := p.BladeWidth / 2
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := t * p.Length
		// One circumferential wrap per pitch of axial advance: the
		// developed helix is the line y = x·tan(angle).
		y := x / pitch * circ
		g.Center = append(g.Center, r2.Vec{X: x, Y: y})
		g.Left = append(g.Left, r2.Vec{X: x, Y: y + half})
		g.Right = append(g.Right, r2.Vec{X: x, Y: y - half})
	}
	r := p.Diameter / 2
	g.Outline = []r2.Vec{
		{0, -r},
		{p.Length, -r},
		{p.Length, r},
		{0, r},
		{0, -r},
	}
	return g
}

// Pairs zips the boundary sequences into aligned pairs. If the sequences have
// been refined to different lengths the shorter one wins.
func (g *Groove) Pairs() []BoundaryPair {
	n := len(g.Left)
	if len(g.Right) < n {
		n = len(g.Right)
	}
	pairs := make([]BoundaryPair, n)
	for i := range pairs {
		pairs[i] = BoundaryPair{Left: g.Left[i], Right: g.Right[i]}
	}
	return pairs
}

// Bounds returns the bounding box over the centerline, both boundaries and
// the tool outline.
func (g *Groove) Bounds() r2.Box {
	bb := d2.Set(g.Center).Bounds()
	bb = bb.Extend(d2.Set(g.Left).Bounds())
	bb = bb.Extend(d2.Set(g.Right).Bounds())
	bb = bb.Extend(d2.Set(g.Outline).Bounds())
	return r2.Box(bb)
}

// Summary returns a one line description of the computed geometry.
func (g *Groove) Summary() string {
	bb := g.Bounds()
	return fmt.Sprintf("points: %d  pitch: %.3f mm  revolutions: %.3f  x: [%.2f, %.2f] mm  y: [%.2f, %.2f] mm",
		len(g.Center), g.Pitch, g.Revolutions, bb.Min.X, bb.Max.X, bb.Min.Y, bb.Max.Y)
}
