package netcomponents

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NetTransformData is the authoritative pose of a synced body.
type NetTransformData struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3 // Units per millisecond
	Scale    mgl64.Vec3
	Rotation mgl64.Quat
}

var NetTransform = donburi.NewComponentType[NetTransformData]()

// NewNetTransform returns a transform at position with identity rotation and
// unit scale.
func NewNetTransform(position mgl64.Vec3) NetTransformData {
	return NetTransformData{
		Position: position,
		Scale:    mgl64.Vec3{1, 1, 1},
		Rotation: mgl64.QuatIdent(),
	}
}
