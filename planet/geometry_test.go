// =======================
// planet/geometry_test.go
// =======================

package planet

import (
	"math"
	"math/rand"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	cfg.LatitudeLines = 4
	cfg.LongitudeLines = 6
	cfg.ShadingDensity = 20
	cfg.OverlaySegments = 10
	cfg.Seed = 1
	return cfg
}

func TestGridCounts(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon int
	}{
		{"tiny", 2, 4},
		{"asymmetric", 3, 8},
		{"stock", 40, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.LatitudeLines = tt.lat
			cfg.LongitudeLines = tt.lon
			cfg.ShadingDensity = 0
			cfg.OverlayEnabled = false

			g := NewGeometry(&cfg, rand.New(rand.NewSource(1)))

			wantPoints := (tt.lat + 1) * (tt.lon + 1)
			if len(g.Points) != wantPoints {
				t.Errorf("vertices = %d, want %d", len(g.Points), wantPoints)
			}
			wantSegments := (tt.lat+1)*tt.lon + (tt.lon+1)*tt.lat
			if len(g.Segments) != wantSegments {
				t.Errorf("structural segments = %d, want %d", len(g.Segments), wantSegments)
			}
		})
	}
}

func TestStructuralSegmentsShareVertices(t *testing.T) {
	cfg := testConfig()
	cfg.ShadingDensity = 0
	cfg.OverlayEnabled = false
	g := NewGeometry(&cfg, rand.New(rand.NewSource(1)))

	// Every endpoint must index into the vertex grid, and interior vertices
	// must be referenced by several segments.
	refs := make([]int, len(g.Points))
	for _, seg := range g.Segments {
		if seg.P1 < 0 || seg.P1 >= len(g.Points) || seg.P2 < 0 || seg.P2 >= len(g.Points) {
			t.Fatalf("segment endpoints %d,%d out of arena range %d", seg.P1, seg.P2, len(g.Points))
		}
		refs[seg.P1]++
		refs[seg.P2]++
	}
	// An interior grid vertex belongs to two band segments and two meridian
	// segments.
	interior := (cfg.LatitudeLines/2)*(cfg.LongitudeLines+1) + cfg.LongitudeLines/2
	if refs[interior] != 4 {
		t.Errorf("interior vertex referenced %d times, want 4", refs[interior])
	}
}

func TestShadingStrokeCount(t *testing.T) {
	for _, density := range []int{0, 1, 17, 1200} {
		for _, seed := range []int64{1, 42, 999} {
			cfg := testConfig()
			cfg.ShadingDensity = density
			cfg.OverlayEnabled = false

			g := NewGeometry(&cfg, rand.New(rand.NewSource(seed)))

			structural := (cfg.LatitudeLines+1)*cfg.LongitudeLines + (cfg.LongitudeLines+1)*cfg.LatitudeLines
			if got := len(g.Segments) - structural; got != density {
				t.Errorf("density %d seed %d: shading strokes = %d", density, seed, got)
			}
			// Each stroke owns two fresh points.
			gridPoints := (cfg.LatitudeLines + 1) * (cfg.LongitudeLines + 1)
			if got := len(g.Points) - gridPoints; got != 2*density {
				t.Errorf("density %d seed %d: shading points = %d, want %d", density, seed, got, 2*density)
			}
		}
	}
}

func TestShadingStrokesOnSphere(t *testing.T) {
	cfg := testConfig()
	cfg.OverlayEnabled = false
	g := NewGeometry(&cfg, rand.New(rand.NewSource(3)))

	radius := cfg.Radius()
	for i, p := range g.Points {
		norm := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if math.Abs(norm-radius) > 1e-9 {
			t.Fatalf("point %d at distance %v from origin, want %v", i, norm, radius)
		}
	}
}

func TestOverlayPath(t *testing.T) {
	cfg := testConfig()
	cfg.ShadingDensity = 0
	g := NewGeometry(&cfg, rand.New(rand.NewSource(1)))

	var overlay []Segment
	for _, seg := range g.Segments {
		if seg.Overlay {
			overlay = append(overlay, seg)
		}
	}
	if len(overlay) != cfg.OverlaySegments {
		t.Fatalf("overlay segments = %d, want %d", len(overlay), cfg.OverlaySegments)
	}
	// The path must be connected: each segment starts where the previous one
	// ended.
	for i := 1; i < len(overlay); i++ {
		if overlay[i].P1 != overlay[i-1].P2 {
			t.Errorf("overlay segment %d starts at point %d, previous ended at %d",
				i, overlay[i].P1, overlay[i-1].P2)
		}
	}
}

func TestOverlayDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.OverlayEnabled = false
	g := NewGeometry(&cfg, rand.New(rand.NewSource(1)))
	for i, seg := range g.Segments {
		if seg.Overlay {
			t.Fatalf("segment %d flagged overlay with overlay disabled", i)
		}
	}
}

func TestZigzag(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.125, 0.5},
		{0.25, 1},
		{0.5, 0},
		{0.75, 1},
		{1, 0},
	}
	for _, tt := range tests {
		if got := zigzag(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("zigzag(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestGeometryDeterministicForSeed(t *testing.T) {
	cfg := testConfig()
	a := NewGeometry(&cfg, rand.New(rand.NewSource(99)))
	b := NewGeometry(&cfg, rand.New(rand.NewSource(99)))

	if len(a.Points) != len(b.Points) || len(a.Segments) != len(b.Segments) {
		t.Fatalf("same seed produced different geometry sizes")
	}
	for i := range a.Points {
		if a.Points[i].X != b.Points[i].X || a.Points[i].Y != b.Points[i].Y || a.Points[i].Z != b.Points[i].Z {
			t.Fatalf("same seed diverged at point %d", i)
		}
	}
}
