package config

import (
	"image/color"

	"github.com/automoto/netinterp/interp"
	"github.com/automoto/netinterp/shared/netconfig"
)

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	TPS    int // Ebiten ticks per second
}

// InterpConfig controls the interpolation buffers created for remote entities
type InterpConfig struct {
	Mode       interp.Mode
	BufferTime float64 // Seconds of delay between ingest and playback
	TickDelta  float64 // Milliseconds the buffers advance per viewer tick
}

// NetConfig contains client connection settings
type NetConfig struct {
	Address         string
	PlayerName      string
	ProtocolVersion string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowRaw bool // Draw the latest raw sample next to the smoothed pose
	ShowHUD bool
}

// DrawConfig contains sizes used when drawing remote entities
type DrawConfig struct {
	BodySize     float64 // Side length of a body at unit scale
	RawMarker    float64 // Side length of the raw sample marker
	HeadingWidth float32
	HUDLineY     int
}

// Global configuration instances
var C *Config
var Interp InterpConfig
var Net NetConfig
var Debug DebugConfig
var Draw DrawConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	RawOverlay  = color.RGBA{R: 255, G: 60, B: 60, A: 160}
	Background  = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	GridColor   = color.RGBA{R: 30, G: 45, B: 80, A: 255}
	StatusColor = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Interp = InterpConfig{
		Mode:       interp.ModeLerp,
		BufferTime: interp.DefaultBufferTime,
		TickDelta:  1000.0 / 60.0,
	}

	Net = NetConfig{
		Address:         "localhost:" + netconfig.DefaultPortString,
		PlayerName:      "viewer",
		ProtocolVersion: netconfig.ProtocolVersion,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowRaw: true,
		ShowHUD: true,
	}

	Draw = DrawConfig{
		BodySize:     24,
		RawMarker:    6,
		HeadingWidth: 2,
		HUDLineY:     14,
	}
}
