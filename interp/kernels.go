package interp

import "github.com/go-gl/mathgl/mgl64"

// Lerp blends a toward b by t component-wise. t is not clamped.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp interpolates rotations along the shortest arc.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

// Hermite evaluates the cubic Hermite curve from p1 to p2 with tangents v1
// and v2 at t.
func Hermite(p1, p2, v1, v2 mgl64.Vec3, t float64) mgl64.Vec3 {
	t2 := t * t
	t3 := t2 * t
	a := 2*t3 - 3*t2 + 1
	b := -2*t3 + 3*t2
	c := t3 - 2*t2 + t
	d := t3 - t2

	return p1.Mul(a).Add(p2.Mul(b)).Add(v1.Mul(c)).Add(v2.Mul(d))
}
