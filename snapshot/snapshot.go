// Package snapshot rasterizes draw lists on the CPU so a frame can be saved
// without a graphics context.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/go-theft-auto/life"
)

// Options control how world coordinates map to image pixels.
type Options struct {
	Scale      float64 // Pixels per world unit
	Padding    int     // Margin around the geometry, in pixels
	LineWidth  float64
	Background life.Color
}

// DefaultOptions returns one pixel per world unit on the default background.
func DefaultOptions() Options {
	return Options{
		Scale:      1,
		Padding:    8,
		LineWidth:  1,
		Background: life.ColorBackground,
	}
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func worldBounds(v []float32) (bounds, bool) {
	if len(v) < life.FloatsPerVertex {
		return bounds{}, false
	}
	b := bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	for i := 0; i+life.FloatsPerVertex <= len(v); i += life.FloatsPerVertex {
		x, y := float64(v[i]), float64(v[i+1])
		b.minX = math.Min(b.minX, x)
		b.maxX = math.Max(b.maxX, x)
		b.minY = math.Min(b.minY, y)
		b.maxY = math.Max(b.maxY, y)
	}
	return b, true
}

// Render rasterizes list into a new context. World y grows upward and is
// flipped so the image matches what the camera shows. The caller owns the
// returned context and must Close it.
func Render(list *life.DrawList, opts Options) (*gg.Context, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("snapshot: invalid scale %v", opts.Scale)
	}
	pad := float64(opts.Padding)
	b, ok := worldBounds(list.Vertices())
	if !ok {
		b = bounds{}
	}

	w := int(math.Ceil((b.maxX-b.minX)*opts.Scale + 2*pad))
	h := int(math.Ceil((b.maxY-b.minY)*opts.Scale + 2*pad))
	dc := gg.NewContext(max(w, 1), max(h, 1))
	bg := opts.Background
	dc.ClearWithColor(gg.RGB(float64(bg.R), float64(bg.G), float64(bg.B)))

	verts := list.Vertices()
	idx := list.Indices()
	project := func(i uint32) (x, y float64) {
		o := int(i) * life.FloatsPerVertex
		x = pad + (float64(verts[o])-b.minX)*opts.Scale
		y = pad + (b.maxY-float64(verts[o+1]))*opts.Scale
		return x, y
	}
	color := func(i uint32) life.Color {
		o := int(i)*life.FloatsPerVertex + 2
		return life.Color{R: verts[o], G: verts[o+1], B: verts[o+2]}
	}
	setColor := func(c life.Color) {
		dc.SetRGB(float64(c.R), float64(c.G), float64(c.B))
	}

	// Consecutive triangles of one color are filled as one path; filling
	// them one by one leaves an anti-aliased seam on every shared edge.
	dc.SetFillRule(gg.FillRuleNonZero)
	var (
		fill    life.Color
		pending bool
	)
	flush := func() error {
		if !pending {
			return nil
		}
		pending = false
		setColor(fill)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("snapshot: fill: %w", err)
		}
		return nil
	}

	for _, run := range list.Batches() {
		first, end := run.IndexOffset, run.IndexOffset+run.ElemCount
		switch run.Primitive {
		case life.Triangles:
			for i := first; i+3 <= end; i += 3 {
				v0, v1, v2 := idx[i], idx[i+1], idx[i+2]
				if c := color(v0); !pending || c != fill {
					if err := flush(); err != nil {
						dc.Close()
						return nil, err
					}
					fill = c
				}
				dc.MoveTo(project(v0))
				dc.LineTo(project(v1))
				dc.LineTo(project(v2))
				dc.ClosePath()
				pending = true
			}
			if err := flush(); err != nil {
				dc.Close()
				return nil, err
			}
		case life.Lines:
			dc.SetLineWidth(opts.LineWidth)
			for i := first; i+2 <= end; i += 2 {
				v0, v1 := idx[i], idx[i+1]
				setColor(color(v0))
				x1, y1 := project(v0)
				x2, y2 := project(v1)
				dc.DrawLine(x1, y1, x2, y2)
				if err := dc.Stroke(); err != nil {
					dc.Close()
					return nil, fmt.Errorf("snapshot: stroke: %w", err)
				}
			}
		}
	}
	return dc, nil
}

// WritePNG rasterizes list and encodes it to w.
func WritePNG(w io.Writer, list *life.DrawList, opts Options) error {
	dc, err := Render(list, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG writes a PNG snapshot of list to path.
func SavePNG(path string, list *life.DrawList, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := WritePNG(bw, list, opts); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
