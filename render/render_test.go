package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/zhk0567/groove"
	"github.com/zhk0567/groove/render"
)

// countPixels scans img for pixels the classifier accepts.
func countPixels(img image.Image, accept func(r, g, b uint32) bool) int {
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if accept(r>>8, g>>8, b>>8) {
				n++
			}
		}
	}
	return n
}

func TestWritePNG(t *testing.T) {
	g := testGroove(t)
	opt := render.ImageOptions{Width: 400, Height: 250}
	var b bytes.Buffer
	if err := render.WritePNG(&b, g, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 250 {
		t.Fatalf("image size got %dx%d. want 400x250", img.Bounds().Dx(), img.Bounds().Dy())
	}
	// every stroke layer of the developed view leaves pixels behind
	for _, layer := range []struct {
		name   string
		accept func(r, g, b uint32) bool
	}{
		{"red left boundary", func(r, g, b uint32) bool { return r > 180 && g < 100 && b < 100 }},
		{"blue right boundary", func(r, g, b uint32) bool { return b > 180 && r < 100 && g < 100 }},
		{"green centerline", func(r, g, b uint32) bool { return g > 90 && g < 200 && r < 90 && b < 90 }},
		{"white background", func(r, g, b uint32) bool { return r >= 254 && g >= 254 && b >= 254 }},
	} {
		if n := countPixels(img, layer.accept); n == 0 {
			t.Errorf("no %s pixels in rendered view", layer.name)
		}
	}
}

func TestWritePNGNilGroove(t *testing.T) {
	var b bytes.Buffer
	opt := render.ImageOptions{Width: 64, Height: 64, Supersample: 1}
	if err := render.WritePNG(&b, nil, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	blank := countPixels(img, func(r, g, b uint32) bool { return r == 255 && g == 255 && b == 255 })
	if blank != 64*64 {
		t.Errorf("blank canvas has %d white pixels. want %d", blank, 64*64)
	}
}

func TestWritePNGFluteOverlay(t *testing.T) {
	g := testGroove(t)
	opt := render.ImageOptions{Width: 400, Height: 250, Flutes: 4}
	var b bytes.Buffer
	if err := render.WritePNG(&b, g, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	nonWhite := countPixels(img, func(r, g, b uint32) bool { return r != 255 || g != 255 || b != 255 })
	if nonWhite == 0 {
		t.Error("flute overlay rendered nothing")
	}
}

func TestWritePNGCustomBackground(t *testing.T) {
	g := testGroove(t)
	opt := render.ImageOptions{
		Width: 64, Height: 64, Supersample: 1,
		Background: color.RGBA{10, 20, 30, 255},
	}
	var b bytes.Buffer
	if err := render.WritePNG(&b, g, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	r, g8, b8, _ := img.At(1, 1).RGBA()
	if r>>8 != 10 || g8>>8 != 20 || b8>>8 != 30 {
		t.Errorf("corner pixel got (%d, %d, %d). want (10, 20, 30)", r>>8, g8>>8, b8>>8)
	}
}

func TestWriteSVG(t *testing.T) {
	g := testGroove(t)
	var b bytes.Buffer
	if err := render.WriteSVG(&b, g, render.ImageOptions{Width: 400, Height: 250}); err != nil {
		t.Fatal(err)
	}
	s := b.String()
	if !strings.Contains(s, "<svg") {
		t.Error("output is not an svg document")
	}
	if !strings.Contains(s, "stroke") {
		t.Error("svg contains no strokes")
	}
}

func BenchmarkWritePNG(b *testing.B) {
	g := testGroove(b)
	opt := render.ImageOptions{Width: 800, Height: 500}
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := render.WritePNG(&buf, g, opt); err != nil {
			b.Fatal(err)
		}
	}
}
