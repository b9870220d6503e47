package groove

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Flute is one of several equally phased flutes wrapped into the developed
// cylinder band [0, circumference) along the transverse axis. Wrapping splits
// each polyline into continuous runs at the band seam.
type Flute struct {
	Center [][]r2.Vec
	Left   [][]r2.Vec
	Right  [][]r2.Vec
}

// Flutes overlays count equally phased copies of the flute onto the developed
// band. Flute k is offset by k/count of the circumference. The primary
// developed view is unwrapped; this query serves multi flute overlays only.
func (g *Groove) Flutes(count int) []Flute {
	if count < 1 {
		count = 1
	}
	flutes := make([]Flute, count)
	for k := range flutes {
		off := float64(k) * g.Circumference / float64(count)
		flutes[k] = Flute{
			Center: wrapRuns(g.Center, off, g.Circumference),
			Left:   wrapRuns(g.Left, off, g.Circumference),
			Right:  wrapRuns(g.Right, off, g.Circumference),
		}
	}
	return flutes
}

// Band returns the developed cylinder surface as a closed rectangle spanning
// the tool length and one full circumference. Multi flute overlays are drawn
// inside it.
func (g *Groove) Band() []r2.Vec {
	l, c := g.Params.Length, g.Circumference
	return []r2.Vec{
		{0, 0},
		{l, 0},
		{l, c},
		{0, c},
		{0, 0},
	}
}

// wrapRuns offsets pts by dy along the transverse axis, wraps them into
// [0, c), and splits the polyline wherever it crosses the seam.
func wrapRuns(pts []r2.Vec, dy, c float64) [][]r2.Vec {
	var runs [][]r2.Vec
	var run []r2.Vec
	prev := 0.0
	for _, p := range pts {
		y := math.Mod(p.Y+dy, c)
		if y < 0 {
			y += c
		}
		if len(run) > 0 && math.Abs(y-prev) > c/2 {
			runs = append(runs, run)
			run = nil
		}
		run = append(run, r2.Vec{X: p.X, Y: y})
		prev = y
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}
