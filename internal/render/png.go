package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/petrih/glaze/internal/grid"
	"github.com/petrih/glaze/internal/layer"
)

// PNGOptions controls the raster renderer.
type PNGOptions struct {
	// CellSize is the square edge of one cell in pixels. Minimum 1.
	CellSize int

	// Labels draws the x,y coordinate in each cell. Readable from
	// CellSize 24 upwards.
	Labels bool
}

// PNG rasterizes the grid, one filled square per cell.
func PNG(g *grid.Grid, base layer.Color, t int, opts PNGOptions) (image.Image, error) {
	if opts.CellSize < 1 {
		return nil, fmt.Errorf("cell size must be at least 1, got %d", opts.CellSize)
	}
	cs := float64(opts.CellSize)
	dc := gg.NewContext(g.Width()*opts.CellSize, g.Height()*opts.CellSize)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y).GetColor(base, t, x, y)
			dc.SetRGB255(int(c.R), int(c.G), int(c.B))
			dc.DrawRectangle(float64(x)*cs, float64(y)*cs, cs, cs)
			dc.Fill()
		}
	}

	if opts.Labels {
		if err := drawLabels(dc, g, base, t, cs); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// SavePNG rasterizes the grid and writes it to path.
func SavePNG(path string, g *grid.Grid, base layer.Color, t int, opts PNGOptions) error {
	img, err := PNG(g, base, t, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// drawLabels writes "x,y" centered in each cell, in black or white
// depending on the cell's luma.
func drawLabels(dc *gg.Context, g *grid.Grid, base layer.Color, t int, cs float64) error {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse label font: %w", err)
	}
	size := cs / 3.5
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y).GetColor(base, t, x, y)
			if luma(c) > 128 {
				dc.SetRGB255(0, 0, 0)
			} else {
				dc.SetRGB255(255, 255, 255)
			}
			label := fmt.Sprintf("%d,%d", x, y)
			dc.DrawStringAnchored(label, (float64(x)+0.5)*cs, (float64(y)+0.5)*cs, 0.5, 0.5)
		}
	}
	return nil
}

// luma is the integer BT.601 brightness approximation.
func luma(c layer.Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
