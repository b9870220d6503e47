package groove

import (
	"errors"
	"math"

	"github.com/zhk0567/groove/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultMargin is the fraction of the target rectangle left blank around a
// fitted view.
const DefaultMargin = 0.15

// ErrDegenerate reports that a view transform is undefined because the
// geometry has zero extent on an axis or the target rectangle is empty.
// Callers retain their previous transform instead.
var ErrDegenerate = errors.New("groove: degenerate extent, view transform undefined")

// Transform maps model space to drawing space with a uniform scale and an
// offset: drawing = model*Scale + Offset.
type Transform struct {
	Scale  float64
	Offset r2.Vec
}

// Apply maps a model space point to drawing space.
func (t Transform) Apply(v r2.Vec) r2.Vec {
	return r2.Add(r2.Scale(t.Scale, v), t.Offset)
}

// Fit computes the transform that centers the bounding box of the given
// point sequences inside a width by height rectangle anchored at the origin,
// leaving the margin fraction blank. The scale is uniform on both axes so the
// true shape of the helix line is preserved. Fit returns ErrDegenerate when
// the box has zero extent on either axis, when no points are given, or when
// no strictly positive scale exists.
func Fit(width, height, margin float64, seqs ...[]r2.Vec) (Transform, error) {
	var bb d2.Box
	first := true
	for _, seq := range seqs {
		if len(seq) == 0 {
			continue
		}
		sb := d2.Set(seq).Bounds()
		if first {
			bb = sb
			first = false
		} else {
			bb = bb.Extend(sb)
		}
	}
	if first {
		return Transform{}, ErrDegenerate
	}
	size := bb.Size()
	if size.X <= 0 || size.Y <= 0 {
		return Transform{}, ErrDegenerate
	}
	scale := math.Min(width/size.X, height/size.Y) * (1 - margin)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Transform{}, ErrDegenerate
	}
	offset := r2.Vec{
		X: (width-size.X*scale)/2 - bb.Min.X*scale,
		Y: (height-size.Y*scale)/2 - bb.Min.Y*scale,
	}
	return Transform{Scale: scale, Offset: offset}, nil
}

// FitGroove fits the full geometry of g with the default margin.
func FitGroove(g *Groove, width, height float64) (Transform, error) {
	return Fit(width, height, DefaultMargin, g.Center, g.Left, g.Right, g.Outline)
}
