package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	"github.com/zhk0567/groove"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

// ImageOptions control the written image. The zero value selects an 800 by
// 500 pixel view of the single developed flute with the default style, white
// background, default margin and 4x supersampling for raster output.
type ImageOptions struct {
	// Width and Height of the output in pixels.
	Width, Height int
	// Margin is the blank border fraction of the fitted view. Zero or
	// negative selects the default margin.
	Margin float64
	// Supersample renders rasters at a multiple of the output size and
	// downsamples for antialiasing. Only used by PNG output.
	Supersample int
	// Flutes greater than one draws the multi flute overlay on the
	// developed band instead of the single flute view.
	Flutes int
	// Style of the strokes. Nil selects DefaultStyle.
	Style *Style
	// Background color. Nil selects white.
	Background color.Color
}

func (o ImageOptions) norm() ImageOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 500
	}
	if o.Margin <= 0 {
		o.Margin = groove.DefaultMargin
	}
	if o.Supersample <= 0 {
		o.Supersample = 4
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// Draw strokes the fitted developed view of g onto any vg canvas: tool
// outline first, then left boundary, right boundary and centerline, each
// vertex mapped through tr. Empty sequences draw nothing.
func Draw(c vg.Canvas, g *groove.Groove, tr groove.Transform, sty Style) {
	if g == nil {
		return
	}
	drawGroove(c, g, tr, sty)
}

// drawView fits and draws the view selected by opt onto a w by h canvas.
// A degenerate fit leaves the canvas blank rather than failing.
func drawView(c vg.Canvas, g *groove.Groove, opt ImageOptions, w, h, ss float64) {
	if g == nil {
		return
	}
	sty := DefaultStyle()
	if opt.Style != nil {
		sty = *opt.Style
	}
	sty = sty.scaled(ss)
	if opt.Flutes > 1 {
		tr, err := groove.Fit(w, h, opt.Margin, g.Band())
		if err != nil {
			return
		}
		drawFlutes(c, g, opt.Flutes, tr, sty, ss)
		return
	}
	tr, err := groove.Fit(w, h, opt.Margin, g.Center, g.Left, g.Right, g.Outline)
	if err != nil {
		return
	}
	drawGroove(c, g, tr, sty)
}

// WritePNG renders the developed view of g and writes it as PNG. The view is
// rendered supersampled and downsampled to the requested size.
func WritePNG(w io.Writer, g *groove.Groove, opt ImageOptions) error {
	opt = opt.norm()
	ss := opt.Supersample
	cw := float64(opt.Width * ss)
	ch := float64(opt.Height * ss)
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Points(cw), vg.Points(ch)),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(opt.Background),
	)
	drawView(c, g, opt, cw, ch, float64(ss))
	var img image.Image = c.Image()
	if ss > 1 {
		img = resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Bilinear)
	}
	return png.Encode(w, img)
}

// CreatePNG renders the developed view of g into a PNG file at path.
func CreatePNG(path string, g *groove.Groove, opt ImageOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WritePNG(f, g, opt)
}
