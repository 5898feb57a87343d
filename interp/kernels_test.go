package interp

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLerp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b mgl64.Vec3
		t    float64
		want mgl64.Vec3
	}{
		{"start", vec(0, 0, 0), vec(10, 20, 30), 0, vec(0, 0, 0)},
		{"end", vec(0, 0, 0), vec(10, 20, 30), 1, vec(10, 20, 30)},
		{"midpoint", vec(-2, 4, 0), vec(2, 8, 10), 0.5, vec(0, 6, 5)},
		{"overshoot is not clamped", vec(0, 0, 0), vec(10, 0, 0), 1.5, vec(15, 0, 0)},
		{"undershoot is not clamped", vec(0, 0, 0), vec(10, 0, 0), -0.5, vec(-5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertVecInDelta(t, tt.want, Lerp(tt.a, tt.b, tt.t), 1e-12)
		})
	}
}

func TestSlerp(t *testing.T) {
	t.Parallel()

	z := vec(0, 0, 1)
	x := vec(1, 0, 0)

	t.Run("halfway around z", func(t *testing.T) {
		t.Parallel()
		q := Slerp(mgl64.QuatIdent(), mgl64.QuatRotate(math.Pi/2, z), 0.5)
		assertVecInDelta(t, vec(math.Sqrt2/2, math.Sqrt2/2, 0), q.Rotate(x), 1e-9)
	})

	t.Run("takes the shortest arc", func(t *testing.T) {
		t.Parallel()
		// Same orientation as a 90 degree turn but in the opposite hemisphere.
		far := mgl64.QuatRotate(math.Pi/2, z).Scale(-1)
		q := Slerp(mgl64.QuatIdent(), far, 0.5)
		assertVecInDelta(t, vec(math.Sqrt2/2, math.Sqrt2/2, 0), q.Rotate(x), 1e-9)
	})

	t.Run("endpoints", func(t *testing.T) {
		t.Parallel()
		a := mgl64.QuatRotate(0.2, vec(0, 1, 0))
		b := mgl64.QuatRotate(1.2, vec(0, 1, 0))
		assertVecInDelta(t, a.Rotate(x), Slerp(a, b, 0).Rotate(x), 1e-9)
		assertVecInDelta(t, b.Rotate(x), Slerp(a, b, 1).Rotate(x), 1e-9)
	})
}

func TestHermite(t *testing.T) {
	t.Parallel()

	p1 := vec(1, 2, 3)
	p2 := vec(4, -2, 7)
	v1 := vec(3, 0, 0)
	v2 := vec(0, 5, 0)

	t.Run("passes through endpoints", func(t *testing.T) {
		t.Parallel()
		assertVecInDelta(t, p1, Hermite(p1, p2, v1, v2, 0), 1e-12)
		assertVecInDelta(t, p2, Hermite(p1, p2, v1, v2, 1), 1e-12)
	})

	t.Run("tangents match at endpoints", func(t *testing.T) {
		t.Parallel()
		const h = 1e-6
		d0 := Hermite(p1, p2, v1, v2, h).Sub(Hermite(p1, p2, v1, v2, 0)).Mul(1 / h)
		d1 := Hermite(p1, p2, v1, v2, 1).Sub(Hermite(p1, p2, v1, v2, 1-h)).Mul(1 / h)
		assertVecInDelta(t, v1, d0, 1e-4)
		assertVecInDelta(t, v2, d1, 1e-4)
	})

	t.Run("straight line with chord tangents", func(t *testing.T) {
		t.Parallel()
		chord := p2.Sub(p1)
		for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
			assertVecInDelta(t, Lerp(p1, p2, tt), Hermite(p1, p2, chord, chord, tt), 1e-12)
		}
	})
}
