package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Path is a closed curve sampled by elapsed time in milliseconds. Velocity is
// the analytic derivative in units per millisecond.
type Path interface {
	Sample(t float64) (position, velocity mgl64.Vec3)
}

// Orbit is a circle around Center.
type Orbit struct {
	Center mgl64.Vec3
	Radius float64
	Period float64 // ms per revolution
	Phase  float64 // radians
}

func (o Orbit) Sample(t float64) (mgl64.Vec3, mgl64.Vec3) {
	w := 2 * math.Pi / o.Period
	theta := w*t + o.Phase
	sin, cos := math.Sincos(theta)
	pos := o.Center.Add(mgl64.Vec3{o.Radius * cos, o.Radius * sin, 0})
	vel := mgl64.Vec3{-o.Radius * w * sin, o.Radius * w * cos, 0}
	return pos, vel
}

// FigureEight is a 1:2 Lissajous curve, Width wide and Height tall.
type FigureEight struct {
	Center mgl64.Vec3
	Width  float64
	Height float64
	Period float64 // ms per loop
	Phase  float64 // radians
}

func (f FigureEight) Sample(t float64) (mgl64.Vec3, mgl64.Vec3) {
	w := 2 * math.Pi / f.Period
	theta := w*t + f.Phase
	sin, cos := math.Sincos(theta)
	a := f.Width / 2
	b := f.Height // sin*cos peaks at 1/2
	pos := f.Center.Add(mgl64.Vec3{a * sin, b * sin * cos, 0})
	vel := mgl64.Vec3{a * w * cos, b * w * math.Cos(2*theta), 0}
	return pos, vel
}

// Heading returns the rotation about +Z that faces along velocity. A zero
// velocity keeps the identity rotation.
func Heading(velocity mgl64.Vec3) mgl64.Quat {
	if velocity.X() == 0 && velocity.Y() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(math.Atan2(velocity.Y(), velocity.X()), mgl64.Vec3{0, 0, 1})
}

// HeadingAngle returns the rotation of q about +Z in radians.
func HeadingAngle(q mgl64.Quat) float64 {
	v := q.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(v.Y(), v.X())
}
