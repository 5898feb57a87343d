package scenes

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/netinterp/config"
	"github.com/automoto/netinterp/components"
	"github.com/automoto/netinterp/fonts"
	"github.com/automoto/netinterp/interp"
	"github.com/automoto/netinterp/network"
	"github.com/automoto/netinterp/shared/gamemath"
	"github.com/automoto/netinterp/shared/netcomponents"
	"github.com/automoto/netinterp/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridSpacing = 60
	hudMargin   = 10
)

// DrawGrid paints a static reference grid so jitter is easy to spot.
func DrawGrid(_ *ecs.ECS, screen *ebiten.Image) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	for x := float32(0); x < w; x += gridSpacing {
		vector.StrokeLine(screen, x, 0, x, h, 1, cfg.GridColor, false)
	}
	for y := float32(0); y < h; y += gridSpacing {
		vector.StrokeLine(screen, 0, y, w, y, 1, cfg.GridColor, false)
	}
}

// DrawBodies renders every remote entity at its smoothed pose, plus the raw
// latest sample when the overlay is enabled.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	netcomponents.NetTransform.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.NetInterp) {
			// No pose until the first sample has been taken as origin.
			b := components.NetInterp.Get(entry).Buffer
			if b == nil || b.State() == interp.StateInitializing {
				return
			}
		}
		tf := netcomponents.NetTransform.Get(entry)

		bodyColor := color.Color(cfg.White)
		label := ""
		if entry.HasComponent(netcomponents.NetBody) {
			body := netcomponents.NetBody.Get(entry)
			bodyColor = rgbaFromUint32(body.Color)
			label = body.Label
		}

		x := float32(tf.Position.X())
		y := float32(tf.Position.Y())
		radius := float32(cfg.Draw.BodySize * 0.5 * tf.Scale.X())
		if radius < 1 {
			radius = 1
		}
		vector.DrawFilledCircle(screen, x, y, radius, bodyColor, true)

		// Heading needle
		angle := gamemath.HeadingAngle(tf.Rotation)
		hx := x + float32(math.Cos(angle))*radius*1.6
		hy := y + float32(math.Sin(angle))*radius*1.6
		vector.StrokeLine(screen, x, y, hx, hy, cfg.Draw.HeadingWidth, cfg.White, true)

		if label != "" {
			text.Draw(screen, label, fonts.Mono.Get(), int(x+radius)+4, int(y-radius), cfg.StatusColor)
		}

		if cfg.Debug.ShowRaw && entry.HasComponent(components.NetInterp) {
			drawRawSample(screen, components.NetInterp.Get(entry))
		}
	})
}

// DrawHUD shows buffer state, the active mode and snapshot arrival jitter.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image, client *network.Client) {
	if !cfg.Debug.ShowHUD {
		return
	}

	summary := systems.SummarizeNetInterp(e.World)
	arrivals := client.ArrivalStats()

	lines := []string{
		fmt.Sprintf("entities %d  buffering %d  playing %d  queued %d",
			summary.Entities, summary.Buffering, summary.Playing, summary.Queued),
		fmt.Sprintf("mode %s  delay %.0fms  raw %v",
			cfg.Interp.Mode, cfg.Interp.BufferTime*1000, cfg.Debug.ShowRaw),
		fmt.Sprintf("snapshots %d  interval %.1fms +/- %.1fms  max %.1fms",
			client.Received(), arrivals.MeanMs, arrivals.StdMs, arrivals.MaxMs),
		"[M] mode  [R] raw  [H] hud  [Up/Down] delay",
	}

	stateColor := color.Color(cfg.LightGreen)
	if summary.Buffering > 0 {
		stateColor = cfg.LightRed
	}

	face := fonts.Mono.Get()
	y := hudMargin + cfg.Draw.HUDLineY
	for i, line := range lines {
		clr := color.Color(cfg.White)
		switch i {
		case 0:
			clr = stateColor
		case len(lines) - 1:
			clr = cfg.StatusColor
		}
		text.Draw(screen, line, face, hudMargin, y, clr)
		y += cfg.Draw.HUDLineY + 4
	}
}

// drawRawSample marks the newest ingested sample, the point the smoothed
// pose is trailing.
func drawRawSample(screen *ebiten.Image, data *components.NetInterpData) {
	if data.Samples == 0 {
		return
	}
	raw := data.RawPosition
	half := cfg.Draw.RawMarker / 2
	vector.DrawFilledRect(screen,
		float32(raw.X()-half), float32(raw.Y()-half),
		float32(cfg.Draw.RawMarker), float32(cfg.Draw.RawMarker),
		cfg.RawOverlay, false)

	angle := gamemath.HeadingAngle(data.RawRotation)
	x, y := float32(raw.X()), float32(raw.Y())
	length := float32(cfg.Draw.RawMarker * 2)
	vector.StrokeLine(screen, x, y,
		x+float32(math.Cos(angle))*length, y+float32(math.Sin(angle))*length,
		1, cfg.RawOverlay, false)
}

func rgbaFromUint32(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255,
	}
}
