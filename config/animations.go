package config

// SpriteKey names one pixel-art frame of the mascot.
type SpriteKey string

const (
	SpriteBody   SpriteKey = "body"
	SpriteBlink  SpriteKey = "blink"
	SpriteWalk1  SpriteKey = "walk1"
	SpriteWalk2  SpriteKey = "walk2"
	SpriteEating SpriteKey = "eating"
	SpriteJump   SpriteKey = "jump"
)

type AnimationDef struct {
	Frames []SpriteKey
	Hold   int // ticks each frame is shown
}

// MascotAnimations maps each behaviour state to its frame cycle.
// The cycle is driven by the actor's tick counter, so it keeps its phase across state changes.
var MascotAnimations = map[StateID]AnimationDef{
	// Blink for one hold out of every ten
	Idle: {
		Frames: []SpriteKey{
			SpriteBlink, SpriteBody, SpriteBody, SpriteBody, SpriteBody,
			SpriteBody, SpriteBody, SpriteBody, SpriteBody, SpriteBody,
		},
		Hold: 3,
	},
	Walking: {Frames: []SpriteKey{SpriteWalk1, SpriteWalk2}, Hold: 3},
	Hunting: {Frames: []SpriteKey{SpriteWalk1, SpriteWalk2}, Hold: 3},
	Eating:  {Frames: []SpriteKey{SpriteEating}, Hold: 1},
}

// JumpAnimation overrides every state while an actor is airborne.
var JumpAnimation = AnimationDef{Frames: []SpriteKey{SpriteJump}, Hold: 1}
