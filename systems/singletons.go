package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// getOrCreate returns the first entry holding c, creating one with value if needed.
func getOrCreate[T any](w donburi.World, c *donburi.ComponentType[T], value T) *T {
	if _, ok := c.First(w); !ok {
		ent := w.Entry(w.Create(c))
		c.SetValue(ent, value)
	}

	ent, _ := c.First(w)
	return c.Get(ent)
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(w donburi.World) *components.ClockData {
	return getOrCreate(w, components.Clock, components.ClockData{})
}

// GetOrCreateRandom returns the singleton random source. A source created here
// is seeded from the wall clock; InitSimulation seeds it explicitly.
func GetOrCreateRandom(w donburi.World) *components.RandomData {
	return getOrCreate(w, components.Random, components.RandomData{
		Rand: newRand(uint64(time.Now().UnixNano())),
	})
}

// SeedRandom reseeds the world's random source. A zero seed is ignored.
func SeedRandom(w donburi.World, seed uint64) {
	if seed == 0 {
		return
	}
	GetOrCreateRandom(w).Rand = newRand(seed)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func GetOrCreateTrack(w donburi.World) *components.TrackData {
	return getOrCreate(w, components.Track, components.TrackData{
		Width:  float64(cfg.C.Width),
		Height: cfg.Overlay.Height,
	})
}

func GetOrCreateScore(w donburi.World) *components.ScoreData {
	return getOrCreate(w, components.Score, components.ScoreData{PopScale: 1})
}

func GetOrCreateSpawner(w donburi.World) *components.SpawnerData {
	return getOrCreate(w, components.Spawner, components.SpawnerData{})
}

func GetOrCreatePointer(w donburi.World) *components.PointerData {
	return getOrCreate(w, components.Pointer, components.PointerData{})
}

func GetOrCreateSurface(w donburi.World) *components.SurfaceData {
	return getOrCreate(w, components.Surface, components.SurfaceData{
		ViewportWidth:  float64(cfg.C.Width),
		ViewportHeight: float64(cfg.C.Height),
	})
}

func GetOrCreateHero(w donburi.World) *components.HeroData {
	return getOrCreate(w, components.Hero, components.HeroData{
		Width:  float64(cfg.C.Width),
		Bottom: cfg.Page.HeroHeight,
	})
}

// GetOrCreateSpace returns the hit-test space sized for the widest supported overlay.
func GetOrCreateSpace(w donburi.World) *resolv.Space {
	ent, ok := components.Space.First(w)
	if !ok {
		ent = factory.CreateSpace(w, cfg.Overlay.MaxWidth, int(cfg.Overlay.Height), cfg.Overlay.CellSize, cfg.Overlay.CellSize)
	}
	return components.Space.Get(ent)
}
