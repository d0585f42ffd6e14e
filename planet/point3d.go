// =======================
// planet/point3d.go
// =======================

package planet

import "math"

// Point3D holds one arena slot: the fixed object-space coordinate plus the
// per-frame rotated and projected positions derived from it.
type Point3D struct {
	X, Y, Z    float64 // object space, fixed after geometry build
	RX, RY, RZ float64 // rotated, refreshed every frame
	SX, SY     float64 // projected screen position
}

// Orient applies the axial tilt (X-axis rotation) followed by the spin
// (Y-axis rotation) using proper rotation matrices. It always starts from
// the object-space coordinates, never from a previous frame's result, so
// repeated calls cannot accumulate drift.
func (p *Point3D) Orient(tilt, spin float64) {
	cosX, sinX := math.Cos(tilt), math.Sin(tilt)
	cosY, sinY := math.Cos(spin), math.Sin(spin)

	// X-axis rotation
	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX

	// Y-axis rotation
	x1 := p.X*cosY + z1*sinY
	z2 := -p.X*sinY + z1*cosY

	p.RX, p.RY, p.RZ = x1, y1, z2
}

// Project maps the rotated position to screen space with a fixed-focal
// perspective divide. The caller guarantees focal+RZ > 0.
func (p *Point3D) Project(focal, centerX, centerY float64) {
	scale := focal / (focal + p.RZ)
	p.SX = p.RX*scale + centerX
	p.SY = p.RY*scale + centerY
}

// spherePoint maps spherical angles to Cartesian coordinates on a sphere of
// the given radius. Theta is the polar angle from the +Y pole, phi the
// azimuth in the XZ plane.
func spherePoint(radius, theta, phi float64) (x, y, z float64) {
	x = radius * math.Sin(theta) * math.Cos(phi)
	y = radius * math.Cos(theta)
	z = radius * math.Sin(theta) * math.Sin(phi)
	return
}
