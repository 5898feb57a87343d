package core

import (
	"fmt"
	"math"

	"github.com/automoto/netinterp/shared/gamemath"
	"github.com/automoto/netinterp/shared/netcomponents"
	"github.com/automoto/netinterp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pulseMin      = 0.7
	pulseMax      = 1.3
	pulseDuration = 1.2 // seconds per half cycle
)

var drifterPalette = []uint32{
	0xff8c00, 0x64ff64, 0x64b4ff, 0xff3c78, 0xf0e68c, 0xb07cff,
}

// Drifter is a server-side body moving along a closed path. Its pose is
// written into a NetTransform each tick.
type Drifter struct {
	Path    gamemath.Path
	Kind    netconfig.BodyKind
	Color   uint32
	Label   string
	elapsed float64 // ms

	pulse     *gween.Tween
	pulseUp   bool
	pulseSize float32
}

// NewDrifter builds the i-th of n drifters, alternating orbits and figure
// eights around center.
func NewDrifter(i, n int, center mgl64.Vec3) *Drifter {
	kind := netconfig.BodyKind(i % int(netconfig.BodyKindCount))
	phase := 2 * math.Pi * float64(i) / float64(max(n, 1))
	ring := float64(i/int(netconfig.BodyKindCount) + 1)

	var path gamemath.Path
	switch kind {
	case netconfig.BodyFigureEight:
		path = gamemath.FigureEight{
			Center: center,
			Width:  240 + 80*ring,
			Height: 120 + 40*ring,
			Period: 6000 + 1500*ring,
			Phase:  phase,
		}
	default:
		path = gamemath.Orbit{
			Center: center,
			Radius: 60 * ring,
			Period: 4000 + 2000*ring,
			Phase:  phase,
		}
	}

	d := &Drifter{
		Path:      path,
		Kind:      kind,
		Color:     drifterPalette[i%len(drifterPalette)],
		Label:     fmt.Sprintf("%s-%d", kind, i),
		pulseSize: pulseMin,
	}
	d.nextPulse()
	return d
}

// Step advances the drifter by dt milliseconds.
func (d *Drifter) Step(dt float64) {
	d.elapsed += dt

	size, done := d.pulse.Update(float32(dt / 1000))
	d.pulseSize = size
	if done {
		d.nextPulse()
	}
}

// Transform returns the current pose. Velocity is in units per millisecond.
func (d *Drifter) Transform() netcomponents.NetTransformData {
	pos, vel := d.Path.Sample(d.elapsed)
	s := float64(d.pulseSize)
	return netcomponents.NetTransformData{
		Position: pos,
		Velocity: vel,
		Scale:    mgl64.Vec3{s, s, s},
		Rotation: gamemath.Heading(vel),
	}
}

func (d *Drifter) Body() netcomponents.NetBodyData {
	return netcomponents.NetBodyData{
		Kind:  d.Kind,
		Color: d.Color,
		Label: d.Label,
	}
}

// nextPulse starts the next half of the scale cycle in the opposite direction.
func (d *Drifter) nextPulse() {
	d.pulseUp = !d.pulseUp
	from, to := float32(pulseMax), float32(pulseMin)
	if d.pulseUp {
		from, to = pulseMin, pulseMax
	}
	d.pulse = gween.New(from, to, pulseDuration, ease.InOutSine)
}
