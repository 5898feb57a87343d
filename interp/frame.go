package interp

import "github.com/go-gl/mathgl/mgl64"

// Frame is one real or synthesized sample on the buffer's clock.
type Frame struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3 // position units per millisecond
	Scale    mgl64.Vec3
	Rotation mgl64.Quat
	Time     float64 // milliseconds
}

// reset clears f to a neutral pose: zero position and velocity, identity
// rotation and unit scale. A sample that never sets scale therefore keeps
// size 1 instead of collapsing to 0.
func (f *Frame) reset() {
	f.Position = mgl64.Vec3{}
	f.Velocity = mgl64.Vec3{}
	f.Scale = mgl64.Vec3{1, 1, 1}
	f.Rotation = mgl64.QuatIdent()
	f.Time = 0
}

func (f *Frame) copyFrom(src *Frame) {
	*f = *src
}

// framePool is a free list of retired frames. It is owned by a single Buffer
// and is not safe for concurrent use.
type framePool struct {
	free      []*Frame
	allocated int
}

// get returns a frame with identity rotation and unit scale.
func (p *framePool) get() *Frame {
	n := len(p.free)
	if n == 0 {
		p.allocated++
		f := &Frame{}
		f.reset()
		return f
	}
	f := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	f.reset()
	return f
}

// put releases a frame that is no longer referenced by the queue or origin.
func (p *framePool) put(f *Frame) {
	p.free = append(p.free, f)
}
