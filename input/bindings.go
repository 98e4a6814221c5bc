// Package input maps keyboard, gamepad and mouse state to page actions.
package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionBottom
	ActionToggleTheme
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// Binding represents the keys and buttons bound to an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[ActionID]Binding
	// Deadzone for analog stick scrolling (0.0 to 1.0)
	AnalogDeadzone float64
	// Pixels scrolled per frame while an analog stick is fully tilted
	AnalogScrollSpeed float64
	// Pixels scrolled per wheel notch
	WheelStep float64
}

// Bindings is the global input configuration
var Bindings Config

func init() {
	Bindings = Config{
		AnalogDeadzone:    0.25,
		AnalogScrollSpeed: 18,
		WheelStep:         40,
		Bindings: map[ActionID]Binding{
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyK},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyJ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionTop: {
				Keys: []ebiten.Key{ebiten.KeyHome},
			},
			ActionBottom: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			ActionToggleTheme: {
				Keys: []ebiten.Key{ebiten.KeyT},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
		},
	}
}
