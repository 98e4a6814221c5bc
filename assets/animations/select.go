package animations

import (
	"github.com/automoto/clawd/components"
	"github.com/automoto/clawd/config"
)

var (
	jump  = NewAnimation(config.JumpAnimation)
	cache = map[config.StateID]*Animation{}
)

func init() {
	for state, def := range config.MascotAnimations {
		cache[state] = NewAnimation(def)
	}
}

// ForMascot returns the sprite an actor shows this tick. Jumping overrides the state.
func ForMascot(m *components.MascotData) config.SpriteKey {
	if m.IsJumping() {
		return jump.Frame(m.Frame)
	}
	anim, ok := cache[m.State]
	if !ok {
		return config.SpriteBody
	}
	return anim.Frame(m.Frame)
}
