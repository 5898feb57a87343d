package netcomponents

import (
	"github.com/automoto/netinterp/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetBodyData struct {
	Kind  netconfig.BodyKind
	Color uint32 // 0xRRGGBB
	Label string
}

var NetBody = donburi.NewComponentType[NetBodyData]()
