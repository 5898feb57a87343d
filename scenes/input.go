package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleMode
	ActionToggleRaw
	ActionToggleHUD
	ActionDelayUp
	ActionDelayDown
	ActionRetry
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = [ActionCount]InputBinding{
	ActionToggleMode: {
		Keys:                   []ebiten.Key{ebiten.KeyM},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionToggleRaw: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	ActionToggleHUD: {
		Keys:                   []ebiten.Key{ebiten.KeyH},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionDelayUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyEqual},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionDelayDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyMinus},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionRetry: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

var gamepadIDs []ebiten.GamepadID

// actionJustPressed reports whether any key or standard gamepad button bound
// to id was pressed this tick.
func actionJustPressed(id ActionID) bool {
	b := bindings[id]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}
