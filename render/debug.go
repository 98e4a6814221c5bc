package render

import (
	"image/color"

	"github.com/automoto/clawd/components"
	"github.com/automoto/clawd/fonts"
	"github.com/automoto/clawd/systems"
	"github.com/automoto/clawd/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Debug toggles the collision outline overlay.
var Debug bool

// DrawDebug outlines every object in the collision space, the overlay band
// and the bug each actor has claimed.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !Debug {
		return
	}

	surface := systems.GetOrCreateSurface(e.World)
	track := systems.GetOrCreateTrack(e.World)
	outline(screen, 0, surface.Top, track.Width, track.Height, color.RGBA{100, 100, 100, 255})

	space := systems.GetOrCreateSpace(e.World)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvMascot) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}
		outline(screen, obj.X, surface.Top+obj.Y, obj.W, obj.H, c)
	}

	face := fonts.MonoBold.Get()
	tags.Mascot.Each(e.World, func(entry *donburi.Entry) {
		target := systems.TargetOf(e.World, components.Mascot.Get(entry))
		if target == nil {
			return
		}
		pos := components.Position.Get(target)
		b := text.BoundString(face, components.Bug.Get(target).Text)
		outline(screen, pos.X+float64(b.Min.X), surface.Top+pos.Y+float64(b.Min.Y),
			float64(b.Dx()), float64(b.Dy()), color.RGBA{255, 0, 0, 255}) // Red
	})
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
