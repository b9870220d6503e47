// Command groove computes the developed geometry of a helical flute
// and writes it out as images, coordinate tables and meshes.
package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhk0567/groove"
	"github.com/zhk0567/groove/export"
	"github.com/zhk0567/groove/internal/tui"
	"github.com/zhk0567/groove/refine"
	"github.com/zhk0567/groove/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("groove: ")

	var (
		angle   = flag.Float64("angle", 30, "helix angle in degrees, exclusive of 0 and 90")
		dia     = flag.Float64("diameter", 10, "tool diameter in mm")
		length  = flag.Float64("length", 50, "flute length in mm")
		bladeW  = flag.Float64("width", 2, "blade width in mm")
		bladeH  = flag.Float64("height", 1, "blade height in mm")
		samples = flag.Int("samples", groove.DefaultSamplesPerRev, "samples per helix revolution")
		flutes  = flag.Int("flutes", 1, "number of flutes to overlay")
		smooth  = flag.Bool("smooth", false, "fit cubic beziers through the sampled curves before rendering")

		imgW = flag.Int("imgw", 800, "output image width in pixels")
		imgH = flag.Int("imgh", 500, "output image height in pixels")

		pngPath = flag.String("png", "", "write a raster plot to this path")
		svgPath = flag.String("svg", "", "write a vector plot to this path")
		csvBase = flag.String("csv", "", "write coordinate tables with this path prefix")
		stlPath = flag.String("stl", "", "write the rewrapped 3-D flute ribbon to this path")
		preview = flag.String("preview", "", "write a shaded preview of the STL to this path (requires -stl)")

		useTUI = flag.Bool("tui", false, "explore parameters interactively")
	)
	flag.Parse()

	p := groove.Params{
		HelixAngle:    *angle,
		Diameter:      *dia,
		Length:        *length,
		BladeWidth:    *bladeW,
		BladeHeight:   *bladeH,
		SamplesPerRev: *samples,
	}

	if *useTUI {
		if _, err := tea.NewProgram(tui.New(p), tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	g, err := groove.New(p)
	if err != nil {
		log.Fatal(err)
	}

	// Plots may use smoothed curves. Tables always carry the raw samples.
	plotted := g
	if *smooth {
		fit := &refine.BezierFit{}
		rg := *g
		rg.Center = refine.Apply(fit, g.Center)
		rg.Left = refine.Apply(fit, g.Left)
		rg.Right = refine.Apply(fit, g.Right)
		plotted = &rg
	}

	opt := render.ImageOptions{Width: *imgW, Height: *imgH, Flutes: *flutes}
	if *pngPath != "" {
		if err := render.CreatePNG(*pngPath, plotted, opt); err != nil {
			log.Fatal(err)
		}
	}
	if *svgPath != "" {
		if err := render.CreateSVG(*svgPath, plotted, opt); err != nil {
			log.Fatal(err)
		}
	}
	if *csvBase != "" {
		if err := writeTables(*csvBase, g); err != nil {
			log.Fatal(err)
		}
	}
	if *stlPath != "" {
		mesh := render.HelixMesh(g, *flutes)
		if err := render.CreateSTL(*stlPath, mesh); err != nil {
			log.Fatal(err)
		}
		if *preview != "" {
			if err := render.PNGFromSTL(*stlPath, *preview, render.IsoView(3)); err != nil {
				log.Fatal(err)
			}
		}
	} else if *preview != "" {
		log.Fatal("-preview requires -stl")
	}

	fmt.Println(g.Summary())
}

func writeTables(base string, g *groove.Groove) error {
	if err := export.CreatePoints(base+"_center.csv", g.Center); err != nil {
		return err
	}
	if err := export.CreateBoundaries(base+"_boundaries.csv", g.Pairs()); err != nil {
		return err
	}
	return export.CreatePoints(base+"_outline.csv", g.Outline)
}
