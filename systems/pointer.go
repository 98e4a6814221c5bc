package systems

import (
	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/tags"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Click queues a pointer press in screen coordinates.
func Click(w donburi.World, x, y float64) {
	pointer := GetOrCreatePointer(w)
	pointer.Clicks = append(pointer.Clicks, components.Click{X: x, Y: y})
}

// UpdatePointer handles queued clicks. It runs every frame so a jump starts
// on the frame the press arrives.
func UpdatePointer(w donburi.World) {
	pointer := GetOrCreatePointer(w)
	if len(pointer.Clicks) == 0 {
		return
	}
	clicks := pointer.Clicks
	pointer.Clicks = nil

	for _, c := range clicks {
		HandleClick(w, c.X, c.Y)
	}
}

// HandleClick starts a jump on the first actor under the screen point and
// spawns a bug. It reports whether a jump started. An actor that is already
// airborne still absorbs the click.
func HandleClick(w donburi.World, x, y float64) bool {
	surface := GetOrCreateSurface(w)
	localY := y - surface.Top

	candidates := probe(w, x, localY)
	if len(candidates) == 0 {
		return false
	}

	var hit *donburi.Entry
	tags.Mascot.Each(w, func(e *donburi.Entry) {
		if hit != nil {
			return
		}
		obj := components.Object.Get(e)
		if candidates[obj.Object] && obj.Contains(x, localY) {
			hit = e
		}
	})
	if hit == nil {
		return false
	}

	m := components.Mascot.Get(hit)
	if m.IsJumping() {
		return false
	}
	m.Jump = &components.JumpData{Velocity: cfg.Mascot.JumpVelocity}
	SpawnBug(w)
	log.Debug().Float64("x", x).Float64("y", y).Msg("mascot jump")
	return true
}

// probe returns the actor objects sharing a space cell with the point. The
// probe straddles the point so clicks on a right or bottom edge still find it.
func probe(w donburi.World, x, y float64) map[*resolv.Object]bool {
	space := GetOrCreateSpace(w)
	p := resolv.NewObject(x-1, y-1, 2, 2, tags.ResolvProbe)
	space.Add(p)
	defer space.Remove(p)

	hits := map[*resolv.Object]bool{}
	if c := p.Check(0, 0, tags.ResolvMascot); c != nil {
		for _, o := range c.Objects {
			hits[o] = true
		}
	}
	return hits
}
