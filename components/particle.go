package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ParticleData struct {
	Velocity math.Vec2
	Life     float64 // 1 when emitted, removed at or below 0
	Glyph    string
}

var Particle = donburi.NewComponentType[ParticleData]()
