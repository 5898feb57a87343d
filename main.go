package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/netinterp/config"
	"github.com/automoto/netinterp/fonts"
	"github.com/automoto/netinterp/interp"
	"github.com/automoto/netinterp/scenes"
	"github.com/automoto/netinterp/shared/protocol"
	"github.com/automoto/netinterp/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewConnectingScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	addr := flag.String("addr", config.Net.Address, "Server address (host:port)")
	mode := flag.String("mode", "", "Interpolation mode: lerp or hermite (default: saved or lerp)")
	bufferMs := flag.Float64("buffer", 0, "Playback delay in milliseconds (default: saved or 150)")
	raw := flag.Bool("raw", false, "Show raw samples next to the smoothed pose")
	name := flag.String("name", config.Net.PlayerName, "Viewer name sent to the server")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	// Saved settings first, flags override them
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	config.Net.Address = *addr
	config.Net.PlayerName = *name
	if *mode != "" {
		m, ok := interp.ParseMode(*mode)
		if !ok {
			log.Fatalf("Unknown interpolation mode %q", *mode)
		}
		config.Interp.Mode = m
	}
	if *bufferMs > 0 {
		config.Interp.BufferTime = *bufferMs / 1000
	}
	if *raw {
		config.Debug.ShowRaw = true
	}
	config.Interp.TickDelta = 1000.0 / float64(config.C.TPS)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("netinterp")
	ebiten.SetTPS(config.C.TPS)

	log.Printf("Viewer: server=%s mode=%s delay=%.0fms",
		config.Net.Address, config.Interp.Mode, config.Interp.BufferTime*1000)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
