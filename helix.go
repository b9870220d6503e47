package groove

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Helix is the flute geometry wrapped back onto the tool cylinder. The tool
// axis runs along z: a developed point (x, y) maps to the angle
// θ = 2π·y/circumference plus the flute phase, at axial position z = x.
type Helix struct {
	// Center lies on the outer tool radius.
	Center []r3.Vec
	// Left and Right lie on the groove bottom radius: the outer radius
	// minus the blade height, clamped at the axis.
	Left  []r3.Vec
	Right []r3.Vec
}

// Helix reconstructs flute number index out of count equally phased flutes
// in three dimensions. This is where the blade height parameter participates,
// as the groove depth.
func (g *Groove) Helix(index, count int) Helix {
	if count < 1 {
		count = 1
	}
	phase := tau * float64(index) / float64(count)
	outer := g.Params.Diameter / 2
	floor := outer - g.Params.BladeHeight
	if floor < 0 {
		floor = 0
	}
	h := Helix{
		Center: make([]r3.Vec, len(g.Center)),
		Left:   make([]r3.Vec, len(g.Left)),
		Right:  make([]r3.Vec, len(g.Right)),
	}
	for i, p := range g.Center {
		h.Center[i] = g.wrapBack(p, phase, outer)
	}
	for i, p := range g.Left {
		h.Left[i] = g.wrapBack(p, phase, floor)
	}
	for i, p := range g.Right {
		h.Right[i] = g.wrapBack(p, phase, floor)
	}
	return h
}

func (g *Groove) wrapBack(p r2.Vec, phase, radius float64) r3.Vec {
	theta := p.Y/g.Circumference*tau + phase
	return r3.Vec{
		X: radius * math.Cos(theta),
		Y: radius * math.Sin(theta),
		Z: p.X,
	}
}
