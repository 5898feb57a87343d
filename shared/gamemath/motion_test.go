package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPathVelocityMatchesDerivative(t *testing.T) {
	t.Parallel()

	paths := map[string]Path{
		"orbit": Orbit{Center: mgl64.Vec3{100, 50, 0}, Radius: 80, Period: 4000, Phase: 0.3},
		"figure eight": FigureEight{Center: mgl64.Vec3{0, 0, 0}, Width: 300, Height: 120, Period: 6000},
	}

	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			const h = 1e-3
			for _, at := range []float64{0, 250, 1234, 3999} {
				before, _ := p.Sample(at - h)
				after, _ := p.Sample(at + h)
				_, vel := p.Sample(at)
				numeric := after.Sub(before).Mul(1 / (2 * h))
				for i := 0; i < 3; i++ {
					assert.InDelta(t, numeric[i], vel[i], 1e-6)
				}
			}
		})
	}
}

func TestOrbitStaysOnCircle(t *testing.T) {
	t.Parallel()

	o := Orbit{Center: mgl64.Vec3{10, 10, 0}, Radius: 25, Period: 1000}
	for at := 0.0; at < 2000; at += 37 {
		pos, _ := o.Sample(at)
		assert.InDelta(t, 25, pos.Sub(o.Center).Len(), 1e-9)
	}
}

func TestHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		vel   mgl64.Vec3
		angle float64
	}{
		{"east", mgl64.Vec3{1, 0, 0}, 0},
		{"north", mgl64.Vec3{0, 2, 0}, math.Pi / 2},
		{"south west", mgl64.Vec3{-1, -1, 0}, -3 * math.Pi / 4},
		{"stationary", mgl64.Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.angle, HeadingAngle(Heading(tt.vel)), 1e-9)
		})
	}
}
