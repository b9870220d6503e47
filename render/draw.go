// Package render draws computed flute geometry: the developed 2d view onto
// raster and vector canvases, and the 3d groove ribbon as STL for CAD visual
// checks. It performs no geometry computation of its own.
package render

import (
	"image/color"

	"github.com/zhk0567/groove"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
)

// LineStyle couples a stroke color with a width in output pixels.
type LineStyle struct {
	Color color.Color
	Width float64
}

// Style selects the stroke of each developed view layer.
type Style struct {
	Outline LineStyle
	Left    LineStyle
	Right   LineStyle
	Center  LineStyle
}

// DefaultStyle mirrors the classic desktop tool: a thin gray tool outline,
// red and blue boundary curves, a green centerline.
func DefaultStyle() Style {
	return Style{
		Outline: LineStyle{color.RGBA{200, 200, 200, 255}, 1},
		Left:    LineStyle{color.RGBA{255, 0, 0, 255}, 2},
		Right:   LineStyle{color.RGBA{0, 0, 255, 255}, 2},
		Center:  LineStyle{color.RGBA{0, 128, 0, 255}, 1},
	}
}

// scaled returns a copy of s with stroke widths multiplied by k, used when
// drawing on a supersampled canvas.
func (s Style) scaled(k float64) Style {
	s.Outline.Width *= k
	s.Left.Width *= k
	s.Right.Width *= k
	s.Center.Width *= k
	return s
}

// drawGroove strokes the developed view back to front: outline, left
// boundary, right boundary, centerline. Empty sequences draw nothing.
func drawGroove(c vg.Canvas, g *groove.Groove, tr groove.Transform, sty Style) {
	strokePolyline(c, g.Outline, tr, sty.Outline)
	strokePolyline(c, g.Left, tr, sty.Left)
	strokePolyline(c, g.Right, tr, sty.Right)
	strokePolyline(c, g.Center, tr, sty.Center)
}

// drawFlutes strokes a multi flute overlay: the developed band and, per
// flute, solid centerline runs with dashed boundary runs in the same color.
func drawFlutes(c vg.Canvas, g *groove.Groove, count int, tr groove.Transform, sty Style, ss float64) {
	strokePolyline(c, g.Band(), tr, sty.Outline)
	dash := []vg.Length{vg.Points(3 * ss), vg.Points(2 * ss)}
	for k, flute := range g.Flutes(count) {
		col := flutePalette[k%len(flutePalette)]
		center := LineStyle{col, sty.Center.Width * 2}
		bound := LineStyle{col, sty.Center.Width}
		for _, run := range flute.Center {
			strokePolyline(c, run, tr, center)
		}
		c.SetLineDash(dash, 0)
		for _, run := range flute.Left {
			strokePolyline(c, run, tr, bound)
		}
		for _, run := range flute.Right {
			strokePolyline(c, run, tr, bound)
		}
		c.SetLineDash(nil, 0)
	}
}

var flutePalette = []color.Color{
	color.RGBA{0, 128, 0, 255},
	color.RGBA{255, 0, 0, 255},
	color.RGBA{0, 0, 255, 255},
	color.RGBA{230, 120, 0, 255},
	color.RGBA{128, 0, 160, 255},
	color.RGBA{0, 140, 140, 255},
}

func strokePolyline(c vg.Canvas, pts []r2.Vec, tr groove.Transform, ls LineStyle) {
	if len(pts) < 2 || ls.Color == nil || ls.Width <= 0 {
		return
	}
	c.SetColor(ls.Color)
	c.SetLineWidth(vg.Points(ls.Width))
	var p vg.Path
	v := tr.Apply(pts[0])
	p.Move(vg.Point{X: vg.Length(v.X), Y: vg.Length(v.Y)})
	for _, q := range pts[1:] {
		v = tr.Apply(q)
		p.Line(vg.Point{X: vg.Length(v.X), Y: vg.Length(v.Y)})
	}
	c.Stroke(p)
}
