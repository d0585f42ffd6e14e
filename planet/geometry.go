// =======================
// planet/geometry.go
// =======================

package planet

import (
	"math"
	"math/rand"
)

// NewGeometry builds the full line set once per run: the latitude/longitude
// wireframe, the random shading strokes and the overlay glyph. The rng is
// only consumed by the shading strokes, so their texture is fixed for the
// animation's lifetime and rotates rigidly with the sphere.
func NewGeometry(cfg *Config, rng *rand.Rand) *Geometry {
	g := &Geometry{}
	g.buildGrid(cfg)
	g.buildShading(cfg, rng)
	if cfg.OverlayEnabled {
		g.buildOverlay(cfg)
	}
	return g
}

// buildGrid creates the (lat+1)x(lon+1) vertex grid and the structural
// segments along each band and meridian. Neighboring segments reference the
// same arena slots, so a vertex is transformed once per frame no matter how
// many segments meet there.
func (g *Geometry) buildGrid(cfg *Config) {
	radius := cfg.Radius()
	lat, lon := cfg.LatitudeLines, cfg.LongitudeLines

	base := len(g.Points)
	for i := 0; i <= lat; i++ {
		theta := float64(i) * math.Pi / float64(lat)
		for j := 0; j <= lon; j++ {
			phi := float64(j) * 2 * math.Pi / float64(lon)
			g.addPoint(spherePoint(radius, theta, phi))
		}
	}

	index := func(i, j int) int { return base + i*(lon+1) + j }

	// Latitude bands
	for i := 0; i <= lat; i++ {
		for j := 0; j < lon; j++ {
			g.Segments = append(g.Segments, Segment{P1: index(i, j), P2: index(i, j+1)})
		}
	}

	// Meridians
	for j := 0; j <= lon; j++ {
		for i := 0; i < lat; i++ {
			g.Segments = append(g.Segments, Segment{P1: index(i, j), P2: index(i+1, j)})
		}
	}
}

// buildShading scatters short two-point strokes over the surface. Each
// stroke owns two fresh arena points; strokes are deliberately not stitched
// into the grid. A FrontBias share of the samples is squeezed toward the
// camera-facing hemisphere so frontal texture reads denser.
func (g *Geometry) buildShading(cfg *Config, rng *rand.Rand) {
	radius := cfg.Radius()
	for i := 0; i < cfg.ShadingDensity; i++ {
		theta1 := rng.Float64() * math.Pi
		phi1 := rng.Float64() * 2 * math.Pi
		if rng.Float64() < cfg.FrontBias {
			phi1 = phi1*0.5 + math.Pi*0.75
		}

		theta2 := theta1 + (rng.Float64()-0.5)*0.5
		phi2 := phi1 + (rng.Float64()-0.5)*0.5

		p1 := g.addPoint(spherePoint(radius, theta1, phi1))
		p2 := g.addPoint(spherePoint(radius, theta2, phi2))
		g.Segments = append(g.Segments, Segment{P1: p1, P2: p2})
	}
}

// zigzag is a period-1 triangle wave with four alternating slopes, tracing
// a "W" over one period. Output is in [0, 1].
func zigzag(t float64) float64 {
	n := math.Mod(t, 1) * 4
	switch {
	case n < 1:
		return n
	case n < 2:
		return 2 - n
	case n < 3:
		return n - 2
	default:
		return 4 - n
	}
}

// buildOverlay traces the glyph path on the sphere surface across a bounded
// longitude arc at the equator. Consecutive segments share their junction
// point so the path stays connected under transformation.
func (g *Geometry) buildOverlay(cfg *Config) {
	radius := cfg.Radius()
	n := cfg.OverlaySegments

	at := func(t float64) (float64, float64, float64) {
		lat := (zigzag(t) - 0.5) * cfg.OverlayAmplitude
		lon := t * cfg.OverlayArc
		return spherePoint(radius, math.Pi/2-lat, lon)
	}

	prev := g.addPoint(at(0))
	for i := 0; i < n; i++ {
		next := g.addPoint(at(float64(i+1) / float64(n)))
		g.Segments = append(g.Segments, Segment{P1: prev, P2: next, Overlay: true})
		prev = next
	}
}
