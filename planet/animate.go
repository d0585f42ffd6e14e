// =======================
// planet/animate.go
// =======================

package planet

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
)

// Generator owns one fully built pipeline: geometry, shader and renderer
// share the same Config and seeded random source. Frames are produced
// strictly one after another because each frame mutates the shared arena in
// place before rasterizing it.
type Generator struct {
	cfg      Config
	geo      *Geometry
	shader   *Shader
	renderer *Renderer

	// Progress, if set, is called after each frame is rendered.
	Progress func(frame, total int)
}

// New validates the configuration, seeds the random source and builds the
// static geometry. A zero Seed derives one from the wall clock.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	gen := &Generator{cfg: cfg}
	gen.geo = NewGeometry(&gen.cfg, rng)
	shader, err := NewShader(&gen.cfg, rng)
	if err != nil {
		return nil, err
	}
	gen.shader = shader
	gen.renderer = NewRenderer(&gen.cfg)
	return gen, nil
}

// Config returns the generator's effective configuration.
func (gen *Generator) Config() *Config { return &gen.cfg }

// Geometry exposes the shared line set, primarily for previews and tests.
func (gen *Generator) Geometry() *Geometry { return gen.geo }

// AngleAt returns the spin angle for a frame index: one full rotation
// advanced linearly over the configured frame count, offset by StartAngle.
func (gen *Generator) AngleAt(frame int) float64 {
	return gen.cfg.StartAngle + float64(frame)*2*math.Pi/float64(gen.cfg.Frames)
}

// Advance transforms and shades the geometry for the given spin angle
// without rasterizing, for callers that draw the line set themselves.
func (gen *Generator) Advance(spin float64) {
	cfg := &gen.cfg
	gen.geo.Transform(cfg.AxialTilt, spin, cfg.Focal, cfg.centerX(), cfg.centerY())
	gen.shader.Shade(gen.geo)
}

// RenderAt produces one frame at the given spin angle.
func (gen *Generator) RenderAt(spin float64) (image.Image, error) {
	dc, err := gen.contextAt(spin)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (gen *Generator) contextAt(spin float64) (*gg.Context, error) {
	gen.Advance(spin)
	return gen.renderer.RenderFrame(gen.geo)
}

// WriteGIF renders all frames and assembles the looping animation. The file
// is written to a temporary name in the destination directory and renamed
// into place only after a successful encode, so a failed run never leaves a
// readable-but-corrupt output behind.
func (gen *Generator) WriteGIF(path string) error {
	frames := gen.cfg.Frames
	delay := gen.cfg.FrameDelayMS / 10
	if delay < 1 {
		delay = 1
	}
	pal := transparentPalette()

	anim := &gif.GIF{LoopCount: 0}
	for f := 0; f < frames; f++ {
		img, err := gen.RenderAt(gen.AngleAt(f))
		if err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
		anim.Image = append(anim.Image, toPaletted(img, pal))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
		if gen.Progress != nil {
			gen.Progress(f+1, frames)
		}
	}
	return writeGIFAtomic(path, anim)
}

// WritePNG dumps a single frame at the given spin angle, for inspecting the
// render without waiting on the full animation.
func (gen *Generator) WritePNG(path string, spin float64) error {
	dc, err := gen.contextAt(spin)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}

// transparentPalette is Plan9 with slot 0 given over to full transparency
// so the cleared background survives quantization.
func transparentPalette() color.Palette {
	pal := make(color.Palette, len(palette.Plan9))
	copy(pal, palette.Plan9)
	pal[0] = color.RGBA{}
	return pal
}

func toPaletted(img image.Image, pal color.Palette) *image.Paletted {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, pal)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func writeGIFAtomic(path string, anim *gif.GIF) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	if err := gif.EncodeAll(tmp, anim); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode gif: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace output %s: %w", path, err)
	}
	return nil
}
