package systems

import (
	"math"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/systems/factory"
	"github.com/automoto/clawd/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateMascots advances every actor by one logic tick, in world order.
func UpdateMascots(w donburi.World) {
	track := GetOrCreateTrack(w)
	rng := GetOrCreateRandom(w)

	// Bursts are emitted after the query so no entity is created mid-iteration.
	var bursts []math2.Vec2
	tags.Mascot.Each(w, func(e *donburi.Entry) {
		if at, ate := updateMascot(w, e, track, rng.Float64); ate {
			bursts = append(bursts, at)
		}
	})

	for _, at := range bursts {
		EmitBurst(w, at.X, at.Y)
	}
}

func updateMascot(w donburi.World, e *donburi.Entry, track *components.TrackData, roll func() float64) (math2.Vec2, bool) {
	m := components.Mascot.Get(e)
	obj := components.Object.Get(e)

	m.Frame++
	m.StateTimer++

	if m.Jump != nil {
		m.Jump.Velocity += cfg.Mascot.Gravity
		obj.Y += m.Jump.Velocity
		if obj.Y >= m.BaseY {
			obj.Y = m.BaseY
			m.Jump = nil
		}
	}

	center := obj.CenterX()

	switch m.State {
	case cfg.Idle:
		if m.StateTimer > cfg.Mascot.IdleDwell {
			m.SetState(cfg.Walking)
		}
		startHunt(w, e, m)

	case cfg.Walking:
		obj.X += m.Direction * cfg.Mascot.WalkStep
		if obj.X > track.Width-cfg.Mascot.SpriteWidth-cfg.Mascot.TrackMargin {
			m.Direction = cfg.DirectionLeft
		} else if obj.X < cfg.Mascot.TrackMargin {
			m.Direction = cfg.DirectionRight
		}
		if roll() < cfg.Mascot.IdleChance {
			m.SetState(cfg.Idle)
		}
		startHunt(w, e, m)

	case cfg.Hunting:
		nearest := findNearestBug(w, e)
		if nearest == nil {
			m.Target = donburi.Null
			m.SetState(cfg.Walking)
			break
		}
		m.Target = nearest.Entity()

		pos := components.Position.Get(nearest)
		if dist := math.Abs(pos.X - center); dist > cfg.Mascot.EatDistance {
			if pos.X > center {
				m.Direction = cfg.DirectionRight
			} else {
				m.Direction = cfg.DirectionLeft
			}
			obj.X += m.Direction * cfg.Mascot.HuntStep
			break
		}

		components.Bug.Get(nearest).BeingEaten = true
		RecordEaten(w)
		m.SetState(cfg.Eating)
		return *pos, true

	case cfg.Eating:
		if m.StateTimer > cfg.Mascot.EatDuration {
			m.Target = donburi.Null
			m.SetState(cfg.Walking)
		}
	}

	return math2.Vec2{}, false
}

// startHunt switches an idle or walking actor to Hunting when a bug is free.
func startHunt(w donburi.World, e *donburi.Entry, m *components.MascotData) {
	nearest := findNearestBug(w, e)
	if nearest == nil {
		return
	}
	m.Target = nearest.Entity()
	m.SetState(cfg.Hunting)
}

// findNearestBug returns the closest bug to the actor's centre that is neither
// being eaten nor targeted by another actor. Ties keep the earlier bug.
func findNearestBug(w donburi.World, self *donburi.Entry) *donburi.Entry {
	claimed := map[donburi.Entity]bool{}
	tags.Mascot.Each(w, func(e *donburi.Entry) {
		if e.Entity() == self.Entity() {
			return
		}
		if m := components.Mascot.Get(e); m.HasTarget() {
			claimed[m.Target] = true
		}
	})

	center := components.Object.Get(self).CenterX()
	var nearest *donburi.Entry
	best := math.Inf(1)
	tags.Bug.Each(w, func(e *donburi.Entry) {
		if components.Bug.Get(e).BeingEaten || claimed[e.Entity()] {
			return
		}
		if dist := math.Abs(components.Position.Get(e).X - center); dist < best {
			best = dist
			nearest = e
		}
	})
	return nearest
}

// UpdateReinforcements adds the second actor once enough bugs have been eaten.
func UpdateReinforcements(w donburi.World) {
	score := GetOrCreateScore(w)
	if score.ReinforcementSpawned || score.Eaten < cfg.Mascot.ReinforcementThreshold {
		return
	}
	score.ReinforcementSpawned = true

	track := GetOrCreateTrack(w)
	factory.CreateMascot(w, track.Width-cfg.Mascot.ReinforcementInset, cfg.DirectionLeft)
	log.Info().Int("eaten", score.Eaten).Msg("reinforcement spawned")
}

// TargetOf returns the entry an actor is hunting or eating, or nil.
func TargetOf(w donburi.World, m *components.MascotData) *donburi.Entry {
	if !m.HasTarget() || !w.Valid(m.Target) {
		return nil
	}
	return w.Entry(m.Target)
}
