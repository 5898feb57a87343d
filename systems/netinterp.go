package systems

import (
	"github.com/automoto/netinterp/components"
	"github.com/automoto/netinterp/interp"
	"github.com/automoto/netinterp/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem returns an update system that advances every remote
// entity's interpolation buffer by delta() milliseconds and copies the
// smoothed pose into its NetTransform for rendering.
func NewNetInterpSystem(delta func() float64) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		UpdateNetInterp(e.World, delta())
	}
}

// UpdateNetInterp ticks all buffers in world once.
func UpdateNetInterp(world donburi.World, delta float64) {
	components.NetInterp.Each(world, func(entry *donburi.Entry) {
		data := components.NetInterp.Get(entry)
		if data.Buffer == nil {
			return
		}
		data.Buffer.Update(delta)

		if !entry.HasComponent(netcomponents.NetTransform) {
			return
		}
		tf := netcomponents.NetTransform.Get(entry)
		tf.Position = data.Buffer.Position()
		tf.Rotation = data.Buffer.Rotation()
		tf.Scale = data.Buffer.Scale()
	})
}

// InterpSummary aggregates buffer state for the HUD.
type InterpSummary struct {
	Entities  int
	Buffering int
	Playing   int
	Queued    int // Frames waiting across all buffers
}

func SummarizeNetInterp(world donburi.World) InterpSummary {
	var s InterpSummary
	components.NetInterp.Each(world, func(entry *donburi.Entry) {
		b := components.NetInterp.Get(entry).Buffer
		if b == nil {
			return
		}
		s.Entities++
		switch b.State() {
		case interp.StateBuffering:
			s.Buffering++
		case interp.StatePlaying:
			s.Playing++
		}
		s.Queued += b.Len()
	})
	return s
}

// SnapshotApplier turns server world snapshots into ingested samples. Remote
// entities are created on first sight with a fresh buffer from newBuffer and
// removed once they drop out of a snapshot.
type SnapshotApplier struct {
	newBuffer  func() *interp.Buffer
	presentIDs map[esync.NetworkId]bool
}

func NewSnapshotApplier(newBuffer func() *interp.Buffer) *SnapshotApplier {
	return &SnapshotApplier{
		newBuffer:  newBuffer,
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

// Apply ingests a full snapshot and removes entities missing from it.
func (a *SnapshotApplier) Apply(world donburi.World, snapshot esync.WorldSnapshot) {
	clear(a.presentIDs)

	for _, ent := range snapshot {
		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}
		a.ApplyEntity(world, ent.Id, compData)
	}

	a.RemoveMissing(world)
}

// ApplyEntity creates or updates one remote entity and marks it present.
func (a *SnapshotApplier) ApplyEntity(world donburi.World, id esync.NetworkId, compData []any) {
	a.presentIDs[id] = true

	entity := esync.FindByNetworkId(world, id)
	if !world.Valid(entity) {
		entity = world.Create(netcomponents.NetTransform, netcomponents.NetBody, components.NetInterp)

		entry := world.Entry(entity)
		entry.AddComponent(esync.NetworkIdComponent)
		esync.NetworkIdComponent.SetValue(entry, id)
		components.NetInterp.SetValue(entry, components.NetInterpData{Buffer: a.newBuffer()})
	}

	entry := world.Entry(entity)
	for _, data := range compData {
		switch v := data.(type) {
		case netcomponents.NetTransformData:
			interpData := components.NetInterp.Get(entry)
			interpData.Buffer.SetTarget(v.Position, v.Velocity, v.Rotation, v.Scale)
			interpData.RawPosition = v.Position
			interpData.RawRotation = v.Rotation
			interpData.Samples++
		case netcomponents.NetBodyData:
			netcomponents.NetBody.SetValue(entry, v)
		}
	}
}

// RemoveMissing deletes remote entities not seen since the last Apply.
func (a *SnapshotApplier) RemoveMissing(world donburi.World) {
	var stale []donburi.Entity
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !a.presentIDs[*id] {
			stale = append(stale, entry.Entity())
		}
	})
	for _, entity := range stale {
		world.Remove(entity)
	}
}

// Reset forgets which entities were present.
func (a *SnapshotApplier) Reset() {
	clear(a.presentIDs)
}
