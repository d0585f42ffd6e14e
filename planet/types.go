// =======================
// planet/types.go
// =======================

package planet

import "github.com/lucasb-eyer/go-colorful"

// Segment is one drawable line. Endpoints are indices into the owning
// Geometry's point arena so that segments sharing a vertex stay connected
// after transformation. Color and Width are rewritten by the shader every
// frame; the endpoints never change.
type Segment struct {
	P1, P2  int
	Color   colorful.Color
	Width   float64
	Overlay bool
}

// Geometry is the full line set for one planet: the shared point arena plus
// all structural, shading and overlay segments. Built once per run; the
// arena's rotated/projected fields are mutated in place every frame.
type Geometry struct {
	Points   []Point3D
	Segments []Segment
}

func (g *Geometry) addPoint(x, y, z float64) int {
	g.Points = append(g.Points, Point3D{X: x, Y: y, Z: z})
	return len(g.Points) - 1
}

// depth returns the segment's average rotated Z, the sort key for the
// painter's algorithm and the front/back test for widths and opacity.
func (g *Geometry) depth(s *Segment) float64 {
	return (g.Points[s.P1].RZ + g.Points[s.P2].RZ) / 2
}
