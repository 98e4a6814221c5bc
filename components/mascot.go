package components

import (
	"github.com/automoto/clawd/config"
	"github.com/yohamta/donburi"
)

// JumpData is the airborne sub-state of an actor. It composes with every behaviour state.
type JumpData struct {
	Velocity float64 // pixels per tick, negative is up
}

type MascotData struct {
	Direction  float64 // config.DirectionLeft or config.DirectionRight
	State      config.StateID
	Frame      int // ticks since creation, drives the sprite cycle
	StateTimer int // ticks since the last state change
	BaseY      float64

	// Target is the bug being hunted or eaten. It does not own the bug;
	// donburi.Null means no target.
	Target donburi.Entity

	// Jump is nil while the actor is on the ground.
	Jump *JumpData
}

// SetState switches behaviour and restarts the state timer.
func (m *MascotData) SetState(state config.StateID) {
	m.State = state
	m.StateTimer = 0
}

// HasTarget reports whether the actor currently claims a bug.
func (m *MascotData) HasTarget() bool {
	return m.Target != donburi.Null
}

// IsJumping reports whether the jump sub-state is active.
func (m *MascotData) IsJumping() bool {
	return m.Jump != nil
}

var Mascot = donburi.NewComponentType[MascotData]()
