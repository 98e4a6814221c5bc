package factory

import (
	"github.com/automoto/clawd/archetypes"
	"github.com/automoto/clawd/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateBug(w donburi.World, x, y float64, text string) *donburi.Entry {
	bug := archetypes.Bug.Spawn(w)
	components.Position.SetValue(bug, math.Vec2{X: x, Y: y})
	components.Bug.SetValue(bug, components.BugData{
		Text:    text,
		Opacity: 1,
		Scale:   1,
	})
	return bug
}
