package factory

import (
	"github.com/automoto/clawd/archetypes"
	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateMascot spawns a walking actor at x, resting on the overlay floor.
func CreateMascot(w donburi.World, x, direction float64) *donburi.Entry {
	mascot := archetypes.Mascot.Spawn(w)

	baseY := cfg.Overlay.Height - cfg.Mascot.SpriteHeight - cfg.Mascot.GroundOffset
	obj := resolv.NewObject(x, baseY, cfg.Mascot.SpriteWidth, cfg.Mascot.SpriteHeight, tags.ResolvMascot)
	obj.Data = mascot
	components.Object.SetValue(mascot, components.ObjectData{Object: obj})

	components.Mascot.SetValue(mascot, components.MascotData{
		Direction: direction,
		State:     cfg.Walking,
		BaseY:     baseY,
		Target:    donburi.Null,
	})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return mascot
}
