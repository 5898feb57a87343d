package core

import (
	"testing"

	"github.com/automoto/netinterp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrifter(t *testing.T) {
	t.Parallel()

	center := mgl64.Vec3{480, 270, 0}

	t.Run("alternates kinds", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, netconfig.BodyOrbit, NewDrifter(0, 4, center).Kind)
		assert.Equal(t, netconfig.BodyFigureEight, NewDrifter(1, 4, center).Kind)
		assert.Equal(t, netconfig.BodyOrbit, NewDrifter(2, 4, center).Kind)
	})

	t.Run("body carries label and color", func(t *testing.T) {
		t.Parallel()
		d := NewDrifter(1, 4, center)
		body := d.Body()
		assert.Equal(t, "figure8-1", body.Label)
		assert.Equal(t, drifterPalette[1], body.Color)
		assert.Equal(t, netconfig.BodyFigureEight, body.Kind)
	})

	t.Run("zero drifter count does not divide by zero", func(t *testing.T) {
		t.Parallel()
		require.NotPanics(t, func() { NewDrifter(0, 0, center) })
	})
}

func TestDrifterStep(t *testing.T) {
	t.Parallel()

	t.Run("position follows path", func(t *testing.T) {
		t.Parallel()
		d := NewDrifter(0, 1, mgl64.Vec3{})
		d.Step(250)

		want, wantVel := d.Path.Sample(250)
		tf := d.Transform()
		assert.InDelta(t, want.X(), tf.Position.X(), 1e-9)
		assert.InDelta(t, want.Y(), tf.Position.Y(), 1e-9)
		assert.InDelta(t, wantVel.X(), tf.Velocity.X(), 1e-9)
		assert.InDelta(t, wantVel.Y(), tf.Velocity.Y(), 1e-9)
	})

	t.Run("rotation faces velocity", func(t *testing.T) {
		t.Parallel()
		d := NewDrifter(1, 2, mgl64.Vec3{})
		d.Step(400)

		tf := d.Transform()
		heading := tf.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
		dir := tf.Velocity.Normalize()
		assert.InDelta(t, dir.X(), heading.X(), 1e-9)
		assert.InDelta(t, dir.Y(), heading.Y(), 1e-9)
	})

	t.Run("scale pulses within bounds", func(t *testing.T) {
		t.Parallel()
		d := NewDrifter(0, 1, mgl64.Vec3{})
		minSeen, maxSeen := 10.0, 0.0
		for i := 0; i < 300; i++ {
			d.Step(50)
			s := d.Transform().Scale
			assert.Equal(t, s.X(), s.Y())
			minSeen = min(minSeen, s.X())
			maxSeen = max(maxSeen, s.X())
		}
		assert.GreaterOrEqual(t, minSeen, pulseMin-1e-6)
		assert.LessOrEqual(t, maxSeen, pulseMax+1e-6)
		assert.Greater(t, maxSeen-minSeen, 0.3)
	})
}
