// =======================
// planet/raster_test.go
// =======================

package planet

import (
	"testing"
)

// depthLadder builds a synthetic geometry of isolated segments whose average
// rotated depths are all distinct.
func depthLadder(depths []float64) *Geometry {
	g := &Geometry{}
	for _, d := range depths {
		p1 := g.addPoint(0, 0, 0)
		p2 := g.addPoint(0, 0, 0)
		g.Points[p1].RZ = d - 1
		g.Points[p2].RZ = d + 1
		g.Points[p1].SX, g.Points[p1].SY = 10, 10
		g.Points[p2].SX, g.Points[p2].SY = 20, 20
		g.Segments = append(g.Segments, Segment{P1: p1, P2: p2, Width: 1})
	}
	return g
}

func renderOrder(t *testing.T, g *Geometry) []int {
	t.Helper()
	cfg := testConfig()
	r := NewRenderer(&cfg)
	if _, err := r.RenderFrame(g); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

func TestPainterOrderAscending(t *testing.T) {
	g := depthLadder([]float64{40, -12, 3, 88, -60, 0.5})
	order := renderOrder(t, g)

	for i := 1; i < len(order); i++ {
		prev := g.depth(&g.Segments[order[i-1]])
		cur := g.depth(&g.Segments[order[i]])
		if prev > cur {
			t.Fatalf("order position %d: depth %v after %v", i, cur, prev)
		}
	}
}

func TestPainterOrderReversalSymmetry(t *testing.T) {
	g := depthLadder([]float64{40, -12, 3, 88, -60, 0.5, 17, -33})
	forward := renderOrder(t, g)

	for i := range g.Points {
		g.Points[i].RZ = -g.Points[i].RZ
	}
	backward := renderOrder(t, g)

	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Fatalf("negated depths did not reverse the order: %v vs %v", forward, backward)
		}
	}
}

func TestRenderFrameCanvasAndContent(t *testing.T) {
	cfg := testConfig()
	cfg.LatitudeLines = 2
	cfg.LongitudeLines = 4
	cfg.ShadingDensity = 0
	cfg.OverlayEnabled = false
	cfg.Seed = 1

	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img, err := gen.RenderAt(0)
	if err != nil {
		t.Fatalf("RenderAt: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != cfg.Width || bounds.Dy() != cfg.Height {
		t.Fatalf("canvas %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), cfg.Width, cfg.Height)
	}

	// The structural wireframe must leave visible pixels, and every segment
	// endpoint must project inside the canvas.
	painted := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !painted; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("rendered frame is fully transparent")
	}

	g := gen.Geometry()
	for _, seg := range g.Segments {
		for _, pi := range []int{seg.P1, seg.P2} {
			p := g.Points[pi]
			if p.SX < 0 || p.SX > float64(cfg.Width) || p.SY < 0 || p.SY > float64(cfg.Height) {
				t.Fatalf("point %d projected outside canvas: (%v,%v)", pi, p.SX, p.SY)
			}
		}
	}
}
