// Package orbit computes per-frame transforms for the celestial scene.
package orbit

import (
	"math"

	"orrerygo/pkg/model"
)

// Global rate coefficients. Per-body speeds from the catalog are multiplied
// by these to get angular velocity in radians per second of scene time.
const (
	SpinRate  = 0.5
	OrbitRate = 0.2
)

// TransformAt computes a body's transform from two clocks: spinT drives axial
// rotation, orbitT drives the position on the orbit. The clocks are separate
// so orbital motion can be scaled or frozen without touching rotation.
// The function is pure; equal inputs always yield equal outputs.
func TransformAt(b *model.Body, spinT, orbitT float64) model.Transform {
	t := model.Transform{
		BodyID:   b.ID,
		Rotation: spinT * b.RotationSpeed * SpinRate,
	}

	if b.Distance > 0 {
		angle := orbitT * b.OrbitSpeed * OrbitRate
		t.Position = model.Vec3{
			X: math.Sin(angle) * b.Distance,
			Y: 0,
			Z: math.Cos(angle) * b.Distance,
		}
	}

	return t
}
