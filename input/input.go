package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Click is a left button press or tap in screen coordinates.
type Click struct {
	X, Y float64
}

// State stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	// Wheel and analog movement this frame in pixels, positive scrolls down
	Scroll float64
	Clicks []Click

	touchIDs []ebiten.TouchID
}

// Poll reads raw input for this frame. Call it once per Update.
func (s *State) Poll() {
	// Swap buffers: current becomes previous, then zero out current
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}
	s.Scroll = 0
	s.Clicks = s.Clicks[:0]

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}

	_, wheelY := ebiten.Wheel()
	s.Scroll -= wheelY * Bindings.WheelStep
	s.Scroll += analogScroll(gamepadIDs)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.Clicks = append(s.Clicks, Click{X: float64(x), Y: float64(y)})
	}
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.Clicks = append(s.Clicks, Click{X: float64(x), Y: float64(y)})
	}
}

// Pressed reports whether the action is held this frame.
func (s *State) Pressed(a ActionID) bool {
	return s.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (s *State) JustPressed(a ActionID) bool {
	return s.Current[a] && !s.Previous[a]
}

// analogScroll reads the right stick of every gamepad, after the deadzone.
func analogScroll(gamepads []ebiten.GamepadID) float64 {
	deadzone := Bindings.AnalogDeadzone
	total := 0.0
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if v > deadzone || v < -deadzone {
			total += v * Bindings.AnalogScrollSpeed
		}
	}
	return total
}
