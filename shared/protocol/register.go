package protocol

import (
	"github.com/automoto/netinterp/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetTransform uint = 10
	SyncIDNetBody      uint = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and viewer before any network operations.
//
// Neither component is registered with an interpolation function: the viewer
// smooths transforms itself with interp.Buffer.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetTransform,
		netcomponents.NetTransformData{},
		netcomponents.NetTransform,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetBody,
		netcomponents.NetBodyData{},
		netcomponents.NetBody,
	); err != nil {
		return err
	}

	return nil
}
