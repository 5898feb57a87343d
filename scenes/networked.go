package scenes

import (
	"log"
	"sync"

	"github.com/automoto/netinterp/components"
	"github.com/automoto/netinterp/interp"
	"github.com/automoto/netinterp/network"
	"github.com/automoto/netinterp/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/netinterp/config"
)

const bufferTimeStep = 0.01 // seconds per key press

type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	applier      *systems.SnapshotApplier
	once         sync.Once
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		applier:      systems.NewSnapshotApplier(systems.NewConfiguredBuffer),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Println("[networked] disconnected, reconnecting")
		ns.netClient.Disconnect()
		ns.sceneChanger.ChangeScene(NewConnectingScene(ns.sceneChanger))
		return
	}

	ns.handleKeys()

	// Ingest before ticking so a snapshot is stamped at the current buffer time.
	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applier.Apply(ns.ecsWorld.World, *snap)
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	ns.ecsWorld.AddSystem(systems.NewNetInterpSystem(func() float64 {
		return cfg.Interp.TickDelta
	}))
	ns.ecsWorld.AddRenderer(ecs.LayerDefault, DrawGrid)
	ns.ecsWorld.AddRenderer(ecs.LayerDefault, DrawBodies)
	ns.ecsWorld.AddRenderer(ecs.LayerDefault, func(e *ecs.ECS, screen *ebiten.Image) {
		DrawHUD(e, screen, ns.netClient)
	})
}

func (ns *NetworkedScene) handleKeys() {
	changed := false

	if actionJustPressed(ActionToggleMode) {
		if cfg.Interp.Mode == interp.ModeLerp {
			cfg.Interp.Mode = interp.ModeHermite
		} else {
			cfg.Interp.Mode = interp.ModeLerp
		}
		ns.resetBuffers()
		changed = true
	}
	if actionJustPressed(ActionDelayUp) {
		cfg.Interp.BufferTime += bufferTimeStep
		ns.resetBuffers()
		changed = true
	}
	if actionJustPressed(ActionDelayDown) && cfg.Interp.BufferTime > bufferTimeStep {
		cfg.Interp.BufferTime -= bufferTimeStep
		ns.resetBuffers()
		changed = true
	}
	if actionJustPressed(ActionToggleRaw) {
		cfg.Debug.ShowRaw = !cfg.Debug.ShowRaw
		changed = true
	}
	if actionJustPressed(ActionToggleHUD) {
		cfg.Debug.ShowHUD = !cfg.Debug.ShowHUD
		changed = true
	}

	if changed {
		systems.SaveCurrentSettings()
	}
}

// resetBuffers drops all remote entities; the next snapshot recreates them
// with buffers built from the current settings. Mode and delay are fixed per
// buffer, so this is the only way to apply a change.
func (ns *NetworkedScene) resetBuffers() {
	world := ns.ecsWorld.World
	var entities []donburi.Entity
	components.NetInterp.Each(world, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, entity := range entities {
		world.Remove(entity)
	}
	ns.applier.Reset()
	log.Printf("[networked] buffers reset: mode=%s delay=%.0fms",
		cfg.Interp.Mode, cfg.Interp.BufferTime*1000)
}
