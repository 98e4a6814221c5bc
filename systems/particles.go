package systems

import (
	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/systems/factory"
	"github.com/automoto/clawd/tags"
	"github.com/yohamta/donburi"
)

// EmitBurst spawns the consumption particles at (x, y).
func EmitBurst(w donburi.World, x, y float64) {
	rng := GetOrCreateRandom(w)
	for i := 0; i < cfg.Particle.BurstSize; i++ {
		vx := (rng.Float64() - 0.5) * cfg.Particle.SpreadX
		vy := -rng.Float64()*cfg.Particle.RiseRange - cfg.Particle.MinRise
		glyph := cfg.Particle.Glyphs[rng.IntN(len(cfg.Particle.Glyphs))]
		factory.CreateParticle(w, x, y, vx, vy, glyph)
	}
}

func UpdateParticles(w donburi.World) {
	var toRemove []*donburi.Entry
	tags.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		pos := components.Position.Get(e)

		pos.X += p.Velocity.X
		pos.Y += p.Velocity.Y
		p.Velocity.Y += cfg.Particle.Gravity
		p.Life -= cfg.Particle.Decay

		if p.Life <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
