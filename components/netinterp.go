package components

import (
	"github.com/automoto/netinterp/interp"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NetInterpData smooths a remote networked entity between server snapshots.
type NetInterpData struct {
	Buffer *interp.Buffer

	// Latest raw sample, drawn by the debug overlay
	RawPosition mgl64.Vec3
	RawRotation mgl64.Quat
	Samples     int
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
