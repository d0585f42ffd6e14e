// =======================
// planet/transform.go
// =======================

package planet

// Transform rotates and projects every arena point for one frame: axial
// tilt about X first, then the animated spin about Y, then the perspective
// divide. The order must not be swapped. Because segments store indices
// into the arena, each shared point is transformed exactly once.
func (g *Geometry) Transform(tilt, spin, focal, centerX, centerY float64) {
	for i := range g.Points {
		p := &g.Points[i]
		p.Orient(tilt, spin)
		p.Project(focal, centerX, centerY)
	}
}
