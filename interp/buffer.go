package interp

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultBufferTime is the default buffering delay in seconds.
const DefaultBufferTime = 0.15

// State is the playback state of a Buffer.
type State int

const (
	StateInitializing State = iota
	StateBuffering
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateBuffering:
		return "buffering"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

// Mode selects how position is blended. Rotation is always spherical and
// scale always linear.
type Mode int

const (
	ModeLerp Mode = iota
	ModeHermite
)

func (m Mode) String() string {
	switch m {
	case ModeLerp:
		return "lerp"
	case ModeHermite:
		return "hermite"
	}
	return "unknown"
}

// ParseMode maps "lerp" or "hermite" (any case) to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lerp", "linear":
		return ModeLerp, true
	case "hermite", "cubic":
		return ModeHermite, true
	}
	return ModeLerp, false
}

type fieldMask uint8

const (
	hasPosition fieldMask = 1 << iota
	hasVelocity
	hasRotation
	hasScale
)

type sample struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	rotation mgl64.Quat
	scale    mgl64.Vec3
	fields   fieldMask
}

// Buffer renders a remote entity bufferTime in the past by interpolating
// between the two received samples that bracket the playback mark.
//
// A Buffer is not safe for concurrent use; ingest and Update must run on the
// same goroutine or be serialized by the caller.
type Buffer struct {
	state      State
	mode       Mode
	time       float64 // ms
	bufferTime float64 // ms

	queue  frameQueue
	origin *Frame
	pool   framePool

	position mgl64.Vec3
	rotation mgl64.Quat
	scale    mgl64.Vec3
	poseTime float64
}

// NewBuffer creates a buffer. bufferTime is in seconds.
func NewBuffer(mode Mode, bufferTime float64) *Buffer {
	b := &Buffer{
		state:      StateInitializing,
		mode:       mode,
		bufferTime: bufferTime * 1000,
		rotation:   mgl64.QuatIdent(),
		scale:      mgl64.Vec3{1, 1, 1},
	}
	b.origin = b.pool.get()
	return b
}

// NewDefaultBuffer creates a linear buffer with DefaultBufferTime.
func NewDefaultBuffer() *Buffer {
	return NewBuffer(ModeLerp, DefaultBufferTime)
}

// SetTarget ingests a full sample.
func (b *Buffer) SetTarget(position, velocity mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) {
	b.ingest(sample{
		position: position,
		velocity: velocity,
		rotation: rotation,
		scale:    scale,
		fields:   hasPosition | hasVelocity | hasRotation | hasScale,
	})
}

// SetPosition ingests position and velocity only.
func (b *Buffer) SetPosition(position, velocity mgl64.Vec3) {
	b.ingest(sample{
		position: position,
		velocity: velocity,
		fields:   hasPosition | hasVelocity,
	})
}

// SetRotation ingests rotation only.
func (b *Buffer) SetRotation(rotation mgl64.Quat) {
	b.ingest(sample{rotation: rotation, fields: hasRotation})
}

// SetScale ingests scale only.
func (b *Buffer) SetScale(scale mgl64.Vec3) {
	b.ingest(sample{scale: scale, fields: hasScale})
}

// ingest coalesces into the tail when it was stamped at the current time,
// otherwise appends a new frame whose unsupplied fields come from the
// previous tail, or the origin when the queue is empty.
func (b *Buffer) ingest(s sample) {
	tail := b.queue.back()
	if tail != nil && tail.Time == b.time {
		s.applyTo(tail)
		return
	}

	prior := tail
	if prior == nil {
		prior = b.origin
	}

	f := b.pool.get()
	f.copyFrom(prior)
	s.applyTo(f)
	f.Time = b.time
	b.queue.push(f)
}

func (s *sample) applyTo(f *Frame) {
	if s.fields&hasPosition != 0 {
		f.Position = s.position
	}
	if s.fields&hasVelocity != 0 {
		f.Velocity = s.velocity
	}
	if s.fields&hasRotation != 0 {
		f.Rotation = s.rotation
	}
	if s.fields&hasScale != 0 {
		f.Scale = s.scale
	}
}

// advanceOrigin retires the origin and promotes the queue head.
func (b *Buffer) advanceOrigin() {
	b.pool.put(b.origin)
	b.origin = b.queue.pop()
	if b.origin == nil {
		b.origin = b.pool.get()
	}
}

// Update advances the clock by delta milliseconds and recomputes the pose.
func (b *Buffer) Update(delta float64) {
	if b.state == StateInitializing && b.queue.len() > 0 {
		b.advanceOrigin()
		b.position = b.origin.Position
		b.rotation = b.origin.Rotation
		b.scale = b.origin.Scale
		b.poseTime = b.origin.Time
		b.state = StateBuffering
	}

	if b.state == StateBuffering && b.queue.len() > 0 && b.time > b.bufferTime {
		b.state = StatePlaying
	}

	if b.state == StatePlaying {
		mark := b.time - b.bufferTime
		b.purge(mark, delta)
		b.interpolate(mark)
	}

	if b.state != StateInitializing {
		b.time += delta
	}
}

// purge drops frames the mark has passed. The last queued frame is never
// removed: it is copied into the origin and pushed forward to the next tick.
func (b *Buffer) purge(mark, delta float64) {
	for b.queue.len() > 0 && mark > b.queue.front().Time {
		if b.queue.len() > 1 {
			b.advanceOrigin()
			continue
		}
		head := b.queue.front()
		b.origin.copyFrom(head)
		head.Time = b.time + delta
		break
	}
}

func (b *Buffer) interpolate(mark float64) {
	target := b.queue.front()
	if target == nil || target.Time <= 0 {
		return
	}

	dt := target.Time - b.origin.Time
	alpha := 1.0
	if dt > 0 {
		alpha = (mark - b.origin.Time) / dt
	}

	switch b.mode {
	case ModeHermite:
		v1 := b.origin.Velocity.Mul(dt)
		v2 := target.Velocity.Mul(dt)
		b.position = Hermite(b.origin.Position, target.Position, v1, v2, alpha)
	default:
		b.position = Lerp(b.origin.Position, target.Position, alpha)
	}
	b.rotation = Slerp(b.origin.Rotation, target.Rotation, alpha)
	b.scale = Lerp(b.origin.Scale, target.Scale, alpha)
	b.poseTime = mark
}

// Position returns the current interpolated position.
func (b *Buffer) Position() mgl64.Vec3 { return b.position }

// Rotation returns the current interpolated rotation.
func (b *Buffer) Rotation() mgl64.Quat { return b.rotation }

// Scale returns the current interpolated scale.
func (b *Buffer) Scale() mgl64.Vec3 { return b.scale }

// PoseTime returns the clock time the current pose was evaluated at.
func (b *Buffer) PoseTime() float64 { return b.poseTime }

// State returns the playback state.
func (b *Buffer) State() State { return b.state }

// Mode returns the position blending mode fixed at construction.
func (b *Buffer) Mode() Mode { return b.mode }

// Time returns the internal clock in milliseconds.
func (b *Buffer) Time() float64 { return b.time }

// BufferTime returns the buffering delay in milliseconds.
func (b *Buffer) BufferTime() float64 { return b.bufferTime }

// Mark returns the playback mark, the clock minus the buffering delay.
func (b *Buffer) Mark() float64 { return b.time - b.bufferTime }

// Len returns the number of queued frames, not counting the origin.
func (b *Buffer) Len() int { return b.queue.len() }
