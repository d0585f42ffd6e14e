// main.go
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/magnus-w/animation/planet"
)

func main() {
	cfg := planet.DefaultConfig()

	out := flag.String("out", cfg.OutputPath, "Output GIF path")
	frames := flag.Int("frames", cfg.Frames, "Frame count for one full rotation")
	delay := flag.Int("delay", cfg.FrameDelayMS, "Inter-frame delay in milliseconds")
	size := flag.Int("size", cfg.Width, "Canvas size in pixels (square)")
	lat := flag.Int("lat", cfg.LatitudeLines, "Latitude line count")
	lon := flag.Int("lon", cfg.LongitudeLines, "Longitude line count")
	density := flag.Int("density", cfg.ShadingDensity, "Random shading stroke count")
	tilt := flag.Float64("tilt", cfg.AxialTilt*180/math.Pi, "Axial tilt in degrees")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	static := flag.Bool("static", false, "Shade strokes once instead of every frame")
	noOverlay := flag.Bool("no-overlay", false, "Disable the decorative glyph")
	pngPath := flag.String("png", "", "Write a single-frame PNG to this path instead of a GIF")
	angle := flag.Float64("angle", 0, "Spin angle in degrees for -png")
	preview := flag.Bool("preview", false, "Interactive terminal preview")
	flag.Parse()

	cfg.OutputPath = *out
	cfg.Frames = *frames
	cfg.FrameDelayMS = *delay
	cfg.Width, cfg.Height = *size, *size
	cfg.LatitudeLines = *lat
	cfg.LongitudeLines = *lon
	cfg.ShadingDensity = *density
	cfg.AxialTilt = *tilt * math.Pi / 180
	cfg.Seed = *seed
	cfg.StaticShading = *static
	cfg.OverlayEnabled = !*noOverlay

	gen, err := planet.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize generator: %v\n", err)
		os.Exit(1)
	}

	if *preview {
		if err := runPreview(gen); err != nil {
			fmt.Fprintf(os.Stderr, "Preview error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *pngPath != "" {
		if err := gen.WritePNG(*pngPath, *angle*math.Pi/180); err != nil {
			fmt.Fprintf(os.Stderr, "PNG render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Frame saved as %s\n", *pngPath)
		return
	}

	fmt.Printf("Generating %d frames...\n", cfg.Frames)
	gen.Progress = func(frame, total int) {
		fmt.Printf("Generated frame %d/%d\n", frame, total)
	}
	if err := gen.WriteGIF(cfg.OutputPath); err != nil {
		fmt.Fprintf(os.Stderr, "GIF generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("GIF saved as %s\n", cfg.OutputPath)
}
