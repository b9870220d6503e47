package render

import (
	"github.com/zhk0567/groove"
	"github.com/zhk0567/groove/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a triangle in 3d space.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle surface normal.
func (t Triangle3) Normal() r3.Vec {
	e1 := t.V[1].Sub(t.V[0])
	e2 := t.V[2].Sub(t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

func (t Triangle3) area() float64 {
	e1 := t.V[1].Sub(t.V[0])
	e2 := t.V[2].Sub(t.V[0])
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}

// RibbonMesh builds the ruled groove floor surface between the wrapped left
// and right boundary curves of h as a triangle strip. It is a surface sheet
// for visual checks, not a closed solid.
func RibbonMesh(h groove.Helix) []Triangle3 {
	n := len(h.Left)
	if len(h.Right) < n {
		n = len(h.Right)
	}
	if n < 2 {
		return nil
	}
	tris := make([]Triangle3, 0, 2*(n-1))
	for i := 0; i+1 < n; i++ {
		l0, r0 := h.Left[i], h.Right[i]
		l1, r1 := h.Left[i+1], h.Right[i+1]
		// A groove floor clamped onto the tool axis collapses spans to
		// zero area. Those write NaN normals, so drop them.
		for _, tri := range []Triangle3{
			{V: [3]r3.Vec{l0, r0, r1}},
			{V: [3]r3.Vec{l0, r1, l1}},
		} {
			if tri.area() > 1e-12 {
				tris = append(tris, tri)
			}
		}
	}
	return tris
}

// HelixMesh builds the groove floor ribbons of count equally phased flutes.
func HelixMesh(g *groove.Groove, count int) []Triangle3 {
	if count < 1 {
		count = 1
	}
	var tris []Triangle3
	for k := 0; k < count; k++ {
		tris = append(tris, RibbonMesh(g.Helix(k, count))...)
	}
	return tris
}

// MeshBounds returns the axis aligned bounding box of the mesh vertices.
func MeshBounds(tris []Triangle3) r3.Box {
	if len(tris) == 0 {
		return r3.Box{}
	}
	bb := d3.Box{Min: tris[0].V[0], Max: tris[0].V[0]}
	for _, tri := range tris {
		for _, v := range tri.V {
			bb = bb.Include(v)
		}
	}
	return r3.Box(bb)
}
