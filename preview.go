// preview.go
package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/magnus-w/animation/planet"
)

// Shading character ramps, far to near.
var previewStyles = [][]rune{
	{'·', '░', '▒', '▓', '█'},
	{'.', ':', '+', '*', '#', '@'},
	{'◦', '○', '◎', '●', '◉'},
}

type previewState struct {
	gen        *planet.Generator
	angle      float64
	step       float64
	autoRotate bool
	style      int
}

func runPreview(gen *planet.Generator) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	cfg := gen.Config()
	st := &previewState{
		gen:        gen,
		angle:      cfg.StartAngle,
		step:       2 * math.Pi / float64(cfg.Frames),
		autoRotate: true,
	}
	baseTilt := cfg.AxialTilt

	quit := make(chan struct{})

	// Input handler
	go func() {
		defer close(quit)
		for {
			select {
			case <-quit:
				return
			default:
				ev := s.PollEvent()
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch ev.Key() {
					case tcell.KeyEscape, tcell.KeyCtrlC:
						return
					case tcell.KeyUp:
						cfg.AxialTilt -= 0.15
					case tcell.KeyDown:
						cfg.AxialTilt += 0.15
					case tcell.KeyLeft:
						st.angle -= 0.15
					case tcell.KeyRight:
						st.angle += 0.15
					case tcell.KeyRune:
						switch ev.Rune() {
						case 'q', 'Q':
							return
						case 'r':
							cfg.AxialTilt = baseTilt
							st.angle = cfg.StartAngle
						case 'a', ' ':
							st.autoRotate = !st.autoRotate
						case 's', 'S':
							st.style = (st.style + 1) % len(previewStyles)
						}
					}
				case *tcell.EventResize:
					s.Sync()
				}
			}
		}
	}()

	// Render loop
	ticker := time.NewTicker(40 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			if st.autoRotate {
				st.angle += st.step
			}
			s.Clear()
			w, h := s.Size()

			if w <= 15 || h <= 8 {
				continue
			}

			st.render(s, w, h)
			s.Show()
		}
	}
}

func (st *previewState) render(s tcell.Screen, w, h int) {
	st.gen.Advance(st.angle)
	geo := st.gen.Geometry()
	radius := st.gen.Config().Radius()

	drawText(s, 1, 1, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"Planet preview | Arrows:rotate A:auto S:style R:reset Q:quit")

	scale := 0.8 * math.Min(float64(w)/2, float64(h)) / radius
	centerX, centerY := float64(w)/2, float64(h)/2

	type cell struct {
		x, y  int
		z     float64
		char  rune
		color tcell.Color
	}
	var cells []cell

	// Depth range for ramp normalization.
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for i := range geo.Points {
		rz := geo.Points[i].RZ
		if rz < minZ {
			minZ = rz
		}
		if rz > maxZ {
			maxZ = rz
		}
	}
	depthRange := maxZ - minZ
	if depthRange == 0 {
		depthRange = 1
	}

	for i := range geo.Segments {
		seg := &geo.Segments[i]
		p1, p2 := &geo.Points[seg.P1], &geo.Points[seg.P2]

		// Endpoints plus midpoint give a readable wireframe at cell resolution.
		samples := [3][3]float64{
			{p1.RX, p1.RY, p1.RZ},
			{(p1.RX + p2.RX) / 2, (p1.RY + p2.RY) / 2, (p1.RZ + p2.RZ) / 2},
			{p2.RX, p2.RY, p2.RZ},
		}
		color := tcell.NewRGBColor(
			int32(seg.Color.R*255+0.5),
			int32(seg.Color.G*255+0.5),
			int32(seg.Color.B*255+0.5),
		)
		for _, pt := range samples {
			// Cells are roughly twice as tall as wide.
			sx := int(pt[0]*scale + centerX)
			sy := int(pt[1]*scale*0.5 + centerY)
			if sx < 0 || sx >= w || sy < 3 || sy >= h-1 {
				continue
			}
			depth := (pt[2] - minZ) / depthRange
			char := depthRune(depth, st.style)
			if seg.Overlay {
				char = '█'
			}
			cells = append(cells, cell{x: sx, y: sy, z: pt[2], char: char, color: color})
		}
	}

	// Painter's order: far cells first so near ones overwrite them.
	sort.Slice(cells, func(a, b int) bool { return cells[a].z < cells[b].z })
	for _, c := range cells {
		s.SetContent(c.x, c.y, c.char, nil, tcell.StyleDefault.Foreground(c.color))
	}

	info := fmt.Sprintf("Segments: %d | Angle: %.2f | Tilt: %.2f | Style: %d",
		len(geo.Segments), st.angle, st.gen.Config().AxialTilt, st.style+1)
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

func depthRune(depth float64, style int) rune {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	chars := previewStyles[style%len(previewStyles)]
	return chars[int(depth*float64(len(chars)-1))]
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
