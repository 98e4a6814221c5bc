package systems

import (
	"math"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/systems/factory"
	"github.com/automoto/clawd/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateSpawner releases the one-off initial bug and then one bug per spawn interval.
func UpdateSpawner(w donburi.World) {
	clock := GetOrCreateClock(w)
	spawner := GetOrCreateSpawner(w)

	if !spawner.InitialDone && !spawner.InitialAt.IsZero() && !clock.Now.Before(spawner.InitialAt) {
		spawner.InitialDone = true
		SpawnBug(w)
	}

	if clock.Now.Sub(spawner.LastSpawn) > cfg.Bug.SpawnInterval {
		SpawnBug(w)
		spawner.LastSpawn = clock.Now
	}
}

// CountBugs returns the number of live bugs, including ones being eaten.
func CountBugs(w donburi.World) int {
	n := 0
	tags.Bug.Each(w, func(e *donburi.Entry) {
		n++
	})
	return n
}

// SpawnBug adds a bug to the track unless the cap is reached. Placement tries
// to keep clear of existing bugs but gives up after a fixed number of draws.
func SpawnBug(w donburi.World) (*donburi.Entry, bool) {
	if CountBugs(w) >= cfg.Bug.MaxBugs {
		return nil, false
	}

	rng := GetOrCreateRandom(w)
	track := GetOrCreateTrack(w)

	var taken []float64
	tags.Bug.Each(w, func(e *donburi.Entry) {
		taken = append(taken, components.Position.Get(e).X)
	})

	var x float64
	for attempt := 1; ; attempt++ {
		x = rng.Float64()*(track.Width-2*cfg.Bug.SpawnMargin) + cfg.Bug.SpawnMargin
		if attempt >= cfg.Bug.PlacementAttempts || !crowded(x, taken) {
			break
		}
	}

	text := cfg.Bug.Vocabulary[rng.IntN(len(cfg.Bug.Vocabulary))]
	bug := factory.CreateBug(w, x, track.Height-cfg.Bug.GroundOffset, text)
	log.Debug().Str("text", text).Float64("x", x).Msg("bug spawned")
	return bug, true
}

func crowded(x float64, taken []float64) bool {
	for _, other := range taken {
		if math.Abs(x-other) < cfg.Bug.MinSpacing {
			return true
		}
	}
	return false
}
