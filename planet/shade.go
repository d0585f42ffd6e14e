// =======================
// planet/shade.go
// =======================

package planet

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Stroke widths. Overlay strokes are distinctly bolder than anything else.
const (
	frontWidth   = 0.8
	backWidth    = 0.4
	overlayWidth = 8.0
)

// Overlay accent colors, front and back of the sphere.
const (
	overlayFrontHex = "#FF6B35"
	overlayBackHex  = "#8B2E1F"
)

// Lighting band thresholds. Strict comparisons: a scalar of exactly 0.5
// falls through to the medium band.
const (
	lightThreshold  = 0.5
	mediumThreshold = 0.0
	darkThreshold   = -0.3
)

// Shader assigns per-segment color and width from the rotated positions.
// Non-overlay colors are re-rolled from the band palette every frame unless
// StaticShading is set, in which case the first frame's picks are cached.
type Shader struct {
	cfg          *Config
	rng          *rand.Rand
	palettes     [4][]colorful.Color
	overlayFront colorful.Color
	overlayBack  colorful.Color
	cache        []colorful.Color
}

func NewShader(cfg *Config, rng *rand.Rand) (*Shader, error) {
	palettes, err := cfg.palettes()
	if err != nil {
		return nil, err
	}
	front, err := colorful.Hex(overlayFrontHex)
	if err != nil {
		return nil, fmt.Errorf("overlay front color: %w", err)
	}
	back, err := colorful.Hex(overlayBackHex)
	if err != nil {
		return nil, fmt.Errorf("overlay back color: %w", err)
	}
	return &Shader{
		cfg:          cfg,
		rng:          rng,
		palettes:     palettes,
		overlayFront: front,
		overlayBack:  back,
	}, nil
}

// band maps a lighting scalar to a palette index, brightest first.
func band(lighting float64) int {
	switch {
	case lighting > lightThreshold:
		return 0
	case lighting > mediumThreshold:
		return 1
	case lighting > darkThreshold:
		return 2
	default:
		return 3
	}
}

// lighting is the dot product of the midpoint's unit-sphere normal with the
// fixed directional light. The light weights are used raw, unnormalized.
func (s *Shader) lighting(g *Geometry, seg *Segment) float64 {
	radius := s.cfg.Radius()
	p1, p2 := &g.Points[seg.P1], &g.Points[seg.P2]
	nx := (p1.RX + p2.RX) / 2 / radius
	ny := (p1.RY + p2.RY) / 2 / radius
	nz := (p1.RZ + p2.RZ) / 2 / radius
	return nx*s.cfg.LightX + ny*s.cfg.LightY + nz*s.cfg.LightZ
}

// Shade rewrites every segment's color and width for the current rotation.
// Widths and overlay colors depend only on the front/back test and are
// always refreshed; only the randomized band picks honor StaticShading.
func (s *Shader) Shade(g *Geometry) {
	useCache := s.cfg.StaticShading && s.cache != nil
	fill := s.cfg.StaticShading && s.cache == nil
	if fill {
		s.cache = make([]colorful.Color, len(g.Segments))
	}

	for i := range g.Segments {
		seg := &g.Segments[i]
		front := g.depth(seg) > 0

		if seg.Overlay {
			if front {
				seg.Color = s.overlayFront
			} else {
				seg.Color = s.overlayBack
			}
			seg.Width = overlayWidth
			continue
		}

		if useCache {
			seg.Color = s.cache[i]
		} else {
			pal := s.palettes[band(s.lighting(g, seg))]
			seg.Color = pal[s.rng.Intn(len(pal))]
			if fill {
				s.cache[i] = seg.Color
			}
		}

		if front {
			seg.Width = frontWidth
		} else {
			seg.Width = backWidth
		}
	}
}
