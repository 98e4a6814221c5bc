package factory

import (
	"github.com/automoto/clawd/archetypes"
	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateSnake spawns a live snake whose head starts at start. The remaining
// fields of data (speed, colour, lengths) are taken as given.
func CreateSnake(w donburi.World, start math.Vec2, data components.SnakeData) *donburi.Entry {
	snake := archetypes.Snake.Spawn(w)

	data.Points = []math.Vec2{start, start}
	data.Alive = true
	data.SegmentTravel = 0
	data.TailProgress = 0
	data.TotalLength = 0
	data.FadeIn = gween.New(0, 1, cfg.Snake.FadeIn, ease.OutQuad)
	data.Alpha = 0

	components.Snake.SetValue(snake, data)
	return snake
}
