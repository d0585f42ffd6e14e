// =======================
// planet/config.go
// =======================

package planet

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Config carries every tunable of the generator. DefaultConfig reproduces
// the stock ornament; all fields are plain values so callers can adjust
// them before handing the struct to New.
type Config struct {
	// Canvas and sphere proportions.
	Width, Height int
	RadiusFrac    float64 // sphere radius as a fraction of min(Width, Height)
	Focal         float64 // perspective focal length, must exceed the radius

	// Wireframe density.
	LatitudeLines  int
	LongitudeLines int

	// Random shading strokes.
	ShadingDensity int
	FrontBias      float64 // probability of biasing a stroke toward the camera

	// Orientation and lighting.
	AxialTilt              float64
	LightX, LightY, LightZ float64

	// Hex palettes for the four lighting bands, brightest first.
	LightPalette  []string
	MediumPalette []string
	DarkPalette   []string
	ShadowPalette []string

	// Decorative overlay glyph near the equator.
	OverlayEnabled   bool
	OverlaySegments  int
	OverlayArc       float64 // longitude span of the glyph
	OverlayAmplitude float64 // latitude amplitude of the zig-zag

	// Animation.
	Frames       int
	StartAngle   float64
	FrameDelayMS int

	// StaticShading picks each stroke's band color once and keeps it for the
	// whole animation instead of re-rolling every frame.
	StaticShading bool

	// Seed for the stroke sampler and palette picks. Zero derives a seed
	// from the wall clock.
	Seed int64

	OutputPath string
}

// DefaultConfig returns the parameters of the stock rotating ornament.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		RadiusFrac: 0.3,
		Focal:      800,

		LatitudeLines:  40,
		LongitudeLines: 48,

		ShadingDensity: 1200,
		FrontBias:      0.6,

		AxialTilt: 25.19 * math.Pi / 180,
		LightX:    -0.5,
		LightY:    -0.7,
		LightZ:    1,

		LightPalette:  []string{"#FF6B35", "#FF8C42", "#FFA552", "#FFB366"},
		MediumPalette: []string{"#C44536", "#D4573B", "#E06940", "#B43D2F"},
		DarkPalette:   []string{"#8B2E1F", "#6B1F14", "#4A1410", "#2C0D0A"},
		ShadowPalette: []string{"#1A0806", "#0D0403", "#000000"},

		OverlayEnabled:   true,
		OverlaySegments:  50,
		OverlayArc:       math.Pi / 12,
		OverlayAmplitude: 0.225,

		Frames:       240,
		StartAngle:   -math.Pi / 6,
		FrameDelayMS: 33,

		OutputPath: "planet-ornament.gif",
	}
}

// Radius returns the sphere radius in pixels.
func (c *Config) Radius() float64 {
	return math.Min(float64(c.Width), float64(c.Height)) * c.RadiusFrac
}

func (c *Config) centerX() float64 { return float64(c.Width) / 2 }
func (c *Config) centerY() float64 { return float64(c.Height) / 2 }

// Validate rejects configurations that cannot render before any work is
// done. In particular Focal > Radius keeps the projection denominator
// positive for every rotated point.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d invalid", c.Width, c.Height)
	}
	if c.RadiusFrac <= 0 || c.RadiusFrac > 0.5 {
		return fmt.Errorf("radius fraction %v outside (0, 0.5]", c.RadiusFrac)
	}
	if c.LatitudeLines <= 0 || c.LongitudeLines <= 0 {
		return fmt.Errorf("grid %dx%d needs positive latitude and longitude counts",
			c.LatitudeLines, c.LongitudeLines)
	}
	if c.ShadingDensity < 0 {
		return fmt.Errorf("shading density %d negative", c.ShadingDensity)
	}
	if c.FrontBias < 0 || c.FrontBias > 1 {
		return fmt.Errorf("front bias %v outside [0, 1]", c.FrontBias)
	}
	if c.Focal <= c.Radius() {
		return fmt.Errorf("focal length %v must exceed sphere radius %v", c.Focal, c.Radius())
	}
	if c.OverlayEnabled {
		if c.OverlaySegments <= 0 {
			return fmt.Errorf("overlay segment count %d invalid", c.OverlaySegments)
		}
		if c.OverlayArc <= 0 || c.OverlayAmplitude <= 0 {
			return fmt.Errorf("overlay shape arc %v amplitude %v invalid",
				c.OverlayArc, c.OverlayAmplitude)
		}
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frame count %d invalid", c.Frames)
	}
	if c.FrameDelayMS <= 0 {
		return fmt.Errorf("frame delay %dms invalid", c.FrameDelayMS)
	}
	if _, err := c.palettes(); err != nil {
		return err
	}
	return nil
}

// palettes parses the four hex palettes, brightest band first.
func (c *Config) palettes() ([4][]colorful.Color, error) {
	var out [4][]colorful.Color
	bands := []struct {
		name string
		hex  []string
	}{
		{"light", c.LightPalette},
		{"medium", c.MediumPalette},
		{"dark", c.DarkPalette},
		{"shadow", c.ShadowPalette},
	}
	for i, band := range bands {
		if len(band.hex) == 0 {
			return out, fmt.Errorf("%s palette empty", band.name)
		}
		colors := make([]colorful.Color, len(band.hex))
		for j, hex := range band.hex {
			col, err := colorful.Hex(hex)
			if err != nil {
				return out, fmt.Errorf("%s palette entry %q: %w", band.name, hex, err)
			}
			colors[j] = col
		}
		out[i] = colors
	}
	return out, nil
}
