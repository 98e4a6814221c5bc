package factory

import (
	"github.com/automoto/clawd/archetypes"
	"github.com/automoto/clawd/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateParticle(w donburi.World, x, y, vx, vy float64, glyph string) *donburi.Entry {
	p := archetypes.Particle.Spawn(w)
	components.Position.SetValue(p, math.Vec2{X: x, Y: y})
	components.Particle.SetValue(p, components.ParticleData{
		Velocity: math.Vec2{X: vx, Y: vy},
		Life:     1,
		Glyph:    glyph,
	})
	return p
}
