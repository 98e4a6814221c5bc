package systems

import (
	"math"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/tags"
	"github.com/yohamta/donburi"
)

// UpdateBugs fades out bugs being eaten and wiggles the rest.
func UpdateBugs(w donburi.World) {
	ms := GetOrCreateClock(w).Millis()

	var toRemove []*donburi.Entry
	tags.Bug.Each(w, func(e *donburi.Entry) {
		bug := components.Bug.Get(e)
		if bug.BeingEaten {
			bug.Opacity -= cfg.Bug.FadeRate
			bug.Scale -= cfg.Bug.ShrinkRate
			if bug.Opacity <= 0 {
				toRemove = append(toRemove, e)
			}
			return
		}

		x := components.Position.Get(e).X
		bug.Wiggle = math.Sin(ms/cfg.Bug.WigglePeriodMs+x) * cfg.Bug.WiggleAmplitude
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
