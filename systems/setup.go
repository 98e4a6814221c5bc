package systems

import (
	"time"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/systems/factory"
	"github.com/yohamta/donburi"
)

// InitSimulation prepares the overlay singletons and creates the first actor.
// A zero seed picks one from the start time.
func InitSimulation(w donburi.World, now time.Time, seed uint64, width float64) *donburi.Entry {
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	clock := GetOrCreateClock(w)
	clock.Start = now
	clock.Now = now

	rng := GetOrCreateRandom(w)
	rng.Rand = newRand(seed)

	track := GetOrCreateTrack(w)
	track.Width = width
	track.Height = cfg.Overlay.Height
	GetOrCreateSurface(w).ViewportWidth = width
	UpdateSurface(w)

	spawner := GetOrCreateSpawner(w)
	spawner.LastSpawn = now
	spawner.InitialAt = now.Add(cfg.Bug.InitialDelay)

	score := GetOrCreateScore(w)
	score.Lifetime = LoadLifetimeScore()

	GetOrCreateSpace(w)
	return factory.CreateMascot(w, cfg.Mascot.StartX, cfg.DirectionRight)
}

// InitHero prepares snake spawning in the page-space band [top, bottom).
func InitHero(w donburi.World, now time.Time, top, bottom, width float64) *components.HeroData {
	clock := GetOrCreateClock(w)
	if clock.Start.IsZero() {
		clock.Start = now
		clock.Now = now
	}
	GetOrCreateRandom(w)

	hero := GetOrCreateHero(w)
	hero.Top = top
	hero.Bottom = bottom
	hero.Width = width
	hero.LastSpawn = now
	hero.InitialSpawned = 0
	return hero
}
