package animations

import "github.com/automoto/clawd/config"

// Animation is a looping frame cycle indexed by an external tick counter.
type Animation struct {
	Frames []config.SpriteKey
	Hold   int // how many ticks each frame is shown
}

// Index returns the position in Frames shown at the given tick.
func (a *Animation) Index(tick int) int {
	if len(a.Frames) == 0 {
		return 0
	}
	hold := a.Hold
	if hold < 1 {
		hold = 1
	}
	if tick < 0 {
		tick = 0
	}
	return (tick / hold) % len(a.Frames)
}

// Frame returns the sprite shown at the given tick.
func (a *Animation) Frame(tick int) config.SpriteKey {
	if len(a.Frames) == 0 {
		return config.SpriteBody
	}
	return a.Frames[a.Index(tick)]
}

// Period returns the number of ticks before the cycle repeats.
func (a *Animation) Period() int {
	hold := a.Hold
	if hold < 1 {
		hold = 1
	}
	return hold * len(a.Frames)
}

func NewAnimation(def config.AnimationDef) *Animation {
	return &Animation{
		Frames: def.Frames,
		Hold:   def.Hold,
	}
}
