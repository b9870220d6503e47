package render

import (
	"io"
	"os"

	"github.com/zhk0567/groove"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// WriteSVG renders the developed view of g and writes it as SVG. Vector
// output ignores the supersampling option.
func WriteSVG(w io.Writer, g *groove.Groove, opt ImageOptions) error {
	opt = opt.norm()
	cw := float64(opt.Width)
	ch := float64(opt.Height)
	c := vgsvg.New(vg.Points(cw), vg.Points(ch))
	// The SVG canvas starts transparent; lay down the background first.
	c.SetColor(opt.Background)
	var bg vg.Path
	bg.Move(vg.Point{X: 0, Y: 0})
	bg.Line(vg.Point{X: vg.Length(cw), Y: 0})
	bg.Line(vg.Point{X: vg.Length(cw), Y: vg.Length(ch)})
	bg.Line(vg.Point{X: 0, Y: vg.Length(ch)})
	bg.Close()
	c.Fill(bg)
	drawView(c, g, opt, cw, ch, 1)
	_, err := c.WriteTo(w)
	return err
}

// CreateSVG renders the developed view of g into an SVG file at path.
func CreateSVG(path string, g *groove.Groove, opt ImageOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSVG(f, g, opt)
}
