// =======================
// planet/raster.go
// =======================

package planet

import (
	"fmt"
	"sort"

	"github.com/gogpu/gg"
)

// Two-level opacity: strokes on the camera-facing hemisphere read stronger.
const (
	frontOpacity = 0.9
	backOpacity  = 0.5
)

// Renderer rasterizes one transformed, shaded geometry into a
// transparent-background canvas per call. The sort scratch slice is reused
// across frames; no other state survives an invocation.
type Renderer struct {
	cfg   *Config
	order []int
}

func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// RenderFrame depth-sorts all segments and paints them farthest first so
// nearer strokes occlude farther ones without a z-buffer. A stroke of width
// W is simulated as a WxW grid of 1-pixel lines offset by integer deltas
// centered on zero.
func (r *Renderer) RenderFrame(g *Geometry) (*gg.Context, error) {
	dc := gg.NewContext(r.cfg.Width, r.cfg.Height)
	dc.SetLineWidth(1)

	r.order = r.order[:0]
	for i := range g.Segments {
		r.order = append(r.order, i)
	}
	sort.Slice(r.order, func(a, b int) bool {
		return g.depth(&g.Segments[r.order[a]]) < g.depth(&g.Segments[r.order[b]])
	})

	for _, i := range r.order {
		seg := &g.Segments[i]
		p1, p2 := &g.Points[seg.P1], &g.Points[seg.P2]

		opacity := backOpacity
		if g.depth(seg) > 0 {
			opacity = frontOpacity
		}
		dc.SetRGBA(seg.Color.R, seg.Color.G, seg.Color.B, opacity)

		w := int(seg.Width + 0.5)
		if w < 1 {
			w = 1
		}
		for dx := 0; dx < w; dx++ {
			for dy := 0; dy < w; dy++ {
				ox := float64(dx - w/2)
				oy := float64(dy - w/2)
				dc.DrawLine(p1.SX+ox, p1.SY+oy, p2.SX+ox, p2.SY+oy)
			}
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroke segment %d: %w", i, err)
		}
	}
	return dc, nil
}
