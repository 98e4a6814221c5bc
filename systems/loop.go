package systems

import (
	"time"

	cfg "github.com/automoto/clawd/config"
	"github.com/yohamta/donburi"
)

// System is a logic step over the world. Logic systems take the world rather
// than the ECS so they run without a graphics context.
type System func(w donburi.World)

// UpdateClock records the frame time and decides whether a logic tick is due.
// A tick runs when at least one tick interval has passed since the previous
// one; missed ticks are dropped, never replayed.
func UpdateClock(w donburi.World, now time.Time) {
	clock := GetOrCreateClock(w)
	if !clock.Now.IsZero() {
		clock.Delta = now.Sub(clock.Now)
	}
	clock.Now = now
	clock.TickDue = false

	if !clock.LastTick.IsZero() && now.Sub(clock.LastTick) < cfg.Loop.TickInterval {
		return
	}
	clock.LastTick = now
	clock.TickDue = true
	clock.Ticks++
}

// OnLogicTick wraps a system so it only runs on frames with a due logic tick.
func OnLogicTick(system System) System {
	return func(w donburi.World) {
		if !GetOrCreateClock(w).TickDue {
			return
		}
		system(w)
	}
}

// LogicSystems returns the per-tick mascot simulation in execution order.
func LogicSystems() []System {
	return []System{
		UpdateSpawner,
		UpdateReinforcements,
		UpdateMascots,
		UpdateObjects,
		UpdateParticles,
		UpdateBugs,
	}
}

// Step runs one frame of the mascot simulation: pending clicks, the logic
// tick if due, and the counter tween.
func Step(w donburi.World, now time.Time) {
	UpdateClock(w, now)
	UpdatePointer(w)
	for _, system := range LogicSystems() {
		OnLogicTick(system)(w)
	}
	UpdateScore(w)
}
