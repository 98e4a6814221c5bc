package render

import (
	"image"

	"github.com/automoto/clawd/components"
	"github.com/automoto/clawd/systems"
	"github.com/automoto/clawd/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSnakes renders the hero lines clipped to the hero band. Snakes live in
// page space and are shifted by the scroll offset.
func DrawSnakes(e *ecs.ECS, screen *ebiten.Image) {
	hero := systems.GetOrCreateHero(e.World)
	scroll := systems.GetOrCreateSurface(e.World).ScrollY

	top := int(hero.Top - scroll)
	bottom := int(hero.Bottom - scroll)
	clip := image.Rect(0, top, int(hero.Width), bottom).Intersect(screen.Bounds())
	if clip.Empty() {
		return
	}
	dst := screen.SubImage(clip).(*ebiten.Image)

	tags.Snake.Each(e.World, func(entry *donburi.Entry) {
		s := components.Snake.Get(entry)
		path := systems.VisiblePath(s.Points, s.TailProgress)
		if len(path) < 2 {
			return
		}

		c := fade(s.Color, float64(s.Alpha))
		width := float32(s.LineWidth)
		for i := 0; i < len(path)-1; i++ {
			a, b := path[i], path[i+1]
			vector.StrokeLine(dst,
				float32(a.X), float32(a.Y-scroll),
				float32(b.X), float32(b.Y-scroll),
				width, c, true)
		}
		// Round the corners
		for _, p := range path[1 : len(path)-1] {
			vector.FillCircle(dst, float32(p.X), float32(p.Y-scroll), width/2, c, true)
		}
	})
}
