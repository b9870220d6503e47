package tui

import (
	"math"

	"github.com/zhk0567/groove"
	"gonum.org/v1/gonum/spatial/r2"
)

// canvas is a braille drawing surface. Each terminal cell packs a 2x4
// grid of dots, so a w by h cell canvas resolves 2w by 4h micro-pixels.
type canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit dot mask
}

func newCanvas(w, h int) *canvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, m: m}
}

func (c *canvas) microSize() (int, int) { return c.w * 2, c.h * 4 }

// setDot turns on the micro-pixel at (mx, my). Out of range is a no-op.
func (c *canvas) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.m[cy][cx] |= bit
}

// line draws on the micro grid using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// polyline projects pts through tr and strokes the connected segments.
// The projection is y-up while the micro grid grows downward, so rows
// are flipped here.
func (c *canvas) polyline(pts []r2.Vec, tr groove.Transform) {
	_, hMic := c.microSize()
	px, py := 0, 0
	for i, p := range pts {
		q := tr.Apply(p)
		x := int(math.Round(q.X))
		y := hMic - 1 - int(math.Round(q.Y))
		if i > 0 {
			c.line(px, py, x, y)
		}
		px, py = x, y
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			mask := c.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
