// Package netconfig defines lightweight constants shared between viewer and
// server. It must have zero dependencies on ebiten or any graphics library so
// the dedicated server binary stays headless.
package netconfig

import "strconv"

// ProtocolVersion is sent in JoinRequest; servers may reject other versions.
const ProtocolVersion = "1"

const (
	DefaultPort     = 7373
	DefaultTickRate = 20 // Snapshots per second
)

// DefaultPortString is DefaultPort formatted for addresses.
var DefaultPortString = strconv.Itoa(DefaultPort)

// BodyKind identifies how a synced body moves on the server.
type BodyKind int

const (
	BodyOrbit BodyKind = iota
	BodyFigureEight
	BodyKindCount // Must be last - used for cycling kinds
)

var bodyKindNames = map[BodyKind]string{
	BodyOrbit:       "orbit",
	BodyFigureEight: "figure8",
}

func (k BodyKind) String() string {
	if name, ok := bodyKindNames[k]; ok {
		return name
	}
	return "unknown"
}
