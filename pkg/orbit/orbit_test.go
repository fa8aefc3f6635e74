package orbit

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orrerygo/pkg/catalog"
	"orrerygo/pkg/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]model.Body{
		{ID: "sun", Kind: model.KindStar, Name: model.LocalizedText{Default: "Sun"}, RotationSpeed: 0.1},
		{ID: "fast", Kind: model.KindPlanet, Name: model.LocalizedText{Default: "Fast"}, Distance: 10, OrbitSpeed: 4, RotationSpeed: 0.5},
		{ID: "slow", Kind: model.KindPlanet, Name: model.LocalizedText{Default: "Slow"}, Distance: 40, OrbitSpeed: 0.05, RotationSpeed: 1.2},
	})
	require.NoError(t, err)
	return c
}

func findTransform(t *testing.T, frame Frame, id string) model.Transform {
	t.Helper()
	for _, tr := range frame.Transforms {
		if tr.BodyID == id {
			return tr
		}
	}
	t.Fatalf("no transform for %q", id)
	return model.Transform{}
}

func TestTransformAtStarStaysAtOrigin(t *testing.T) {
	star := &model.Body{ID: "sun", Kind: model.KindStar, RotationSpeed: 0.1}

	for _, tt := range []float64{0, 1, 17.5, 1e6} {
		tr := TransformAt(star, tt, tt)
		assert.Equal(t, model.Vec3{}, tr.Position, "t=%g", tt)
	}

	// The star still spins.
	tr := TransformAt(star, 10, 0)
	assert.InDelta(t, 10*0.1*SpinRate, tr.Rotation, 1e-12)
}

func TestTransformAtPreservesOrbitalRadius(t *testing.T) {
	body := &model.Body{ID: "p", Kind: model.KindPlanet, Distance: 25, OrbitSpeed: 1.3, RotationSpeed: 0.4}

	for _, tt := range []float64{0, 0.25, 3, 100, 9999.5} {
		tr := TransformAt(body, tt, tt)
		r := math.Hypot(tr.Position.X, tr.Position.Z)
		assert.InDelta(t, 25, r, 1e-9, "t=%g", tt)
		assert.Zero(t, tr.Position.Y, "orbital plane is Y=0")
	}
}

func TestTransformAtIsPure(t *testing.T) {
	body := &model.Body{ID: "p", Kind: model.KindPlanet, Distance: 12, OrbitSpeed: 2, RotationSpeed: 1}

	a := TransformAt(body, 42.5, 17.25)
	b := TransformAt(body, 42.5, 17.25)
	assert.Equal(t, a, b)
}

func TestAnimatorFreezeKeepsOrbitsAndSpinsBodies(t *testing.T) {
	a := NewAnimator(testCatalog(t), 50*time.Millisecond, 1.0, nil)

	a.Advance(2 * time.Second)
	before := a.Snapshot()

	a.SetSpeed(0)
	a.Advance(3 * time.Second)
	after := a.Snapshot()

	// Orbital positions are frozen.
	for _, id := range []string{"fast", "slow"} {
		assert.Equal(t, findTransform(t, before, id).Position, findTransform(t, after, id).Position, "body %s", id)
	}

	// Axial rotation kept advancing.
	assert.Greater(t, findTransform(t, after, "fast").Rotation, findTransform(t, before, "fast").Rotation)
	assert.Greater(t, findTransform(t, after, "sun").Rotation, findTransform(t, before, "sun").Rotation)
}

func TestAnimatorSpeedChangeDoesNotJump(t *testing.T) {
	a := NewAnimator(testCatalog(t), 50*time.Millisecond, 1.0, nil)

	a.Advance(5 * time.Second)
	before := a.Snapshot()

	// Changing the multiplier alone must not move anything.
	a.SetSpeed(10)
	assert.Equal(t, before.Transforms, a.Snapshot().Transforms)

	// After the change, motion accumulates at the new rate from the current
	// position: 1s at 10x equals 10s at 1x on the orbit clock.
	a.Advance(1 * time.Second)
	assert.InDelta(t, 15, a.Snapshot().Elapsed, 1e-9)
}

func TestAnimatorIndependentOfStepSize(t *testing.T) {
	coarse := NewAnimator(testCatalog(t), 50*time.Millisecond, 2.0, nil)
	fine := NewAnimator(testCatalog(t), 50*time.Millisecond, 2.0, nil)

	coarse.Advance(4 * time.Second)
	for i := 0; i < 400; i++ {
		fine.Advance(10 * time.Millisecond)
	}

	cf, ff := coarse.Snapshot(), fine.Snapshot()
	require.Len(t, ff.Transforms, len(cf.Transforms))
	for i := range cf.Transforms {
		assert.InDelta(t, cf.Transforms[i].Position.X, ff.Transforms[i].Position.X, 1e-6)
		assert.InDelta(t, cf.Transforms[i].Position.Z, ff.Transforms[i].Position.Z, 1e-6)
		assert.InDelta(t, cf.Transforms[i].Rotation, ff.Transforms[i].Rotation, 1e-6)
	}
}

func TestAnimatorPushesFrames(t *testing.T) {
	var got []Frame
	a := NewAnimator(testCatalog(t), 50*time.Millisecond, 1.0, func(f Frame) { got = append(got, f) })

	a.onFrame(a.Advance(100 * time.Millisecond))
	a.onFrame(a.Advance(100 * time.Millisecond))

	require.Len(t, got, 2)
	assert.Greater(t, got[1].Elapsed, got[0].Elapsed)
	assert.Len(t, got[0].Transforms, 3)
}
