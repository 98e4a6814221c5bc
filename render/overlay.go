package render

import (
	"fmt"

	"github.com/automoto/clawd/assets"
	"github.com/automoto/clawd/assets/animations"
	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/fonts"
	"github.com/automoto/clawd/systems"
	"github.com/automoto/clawd/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var textOp = &ebiten.DrawImageOptions{}

// DrawMascots renders every actor as filled cells of its current sprite.
func DrawMascots(e *ecs.ECS, screen *ebiten.Image) {
	surface := systems.GetOrCreateSurface(e.World)
	c := Ink()

	tags.Mascot.Each(e.World, func(entry *donburi.Entry) {
		m := components.Mascot.Get(entry)
		obj := components.Object.Get(entry)

		sprite := assets.MascotSprites[animations.ForMascot(m)]
		flip := m.Direction == cfg.DirectionLeft
		for _, r := range sprite.Rects(obj.X, surface.Top+obj.Y, obj.W, obj.H, flip) {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		}
	})
}

// DrawBugs renders bug labels, scaled about their centre while being eaten.
func DrawBugs(e *ecs.ECS, screen *ebiten.Image) {
	surface := systems.GetOrCreateSurface(e.World)
	face := fonts.MonoBold.Get()
	c := Ink()

	tags.Bug.Each(e.World, func(entry *donburi.Entry) {
		bug := components.Bug.Get(entry)
		pos := components.Position.Get(entry)
		if bug.Opacity <= 0 {
			return
		}

		bounds := text.BoundString(face, bug.Text)
		cx := float64(bounds.Dx()) / 2
		cy := float64(bounds.Min.Y+bounds.Max.Y) / 2

		textOp.GeoM.Reset()
		textOp.ColorScale.Reset()
		textOp.GeoM.Translate(-cx, -cy)
		textOp.GeoM.Scale(bug.Scale, bug.Scale)
		textOp.GeoM.Translate(pos.X+bug.Wiggle+cx, surface.Top+pos.Y+cy)
		textOp.ColorScale.ScaleWithColor(c)
		textOp.ColorScale.ScaleAlpha(float32(bug.Opacity))
		text.DrawWithOptions(screen, bug.Text, face, textOp)
	})
}

// DrawParticles renders burst glyphs fading with their remaining life.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	surface := systems.GetOrCreateSurface(e.World)
	face := fonts.MonoSmall.Get()
	c := Ink()

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		pos := components.Position.Get(entry)
		text.Draw(screen, p.Glyph, face, int(pos.X), int(surface.Top+pos.Y), fade(c, p.Life))
	})
}

// DrawCounter renders the session and lifetime eaten totals in the overlay corner.
func DrawCounter(e *ecs.ECS, screen *ebiten.Image) {
	surface := systems.GetOrCreateSurface(e.World)
	score := systems.GetOrCreateScore(e.World)
	face := fonts.Mono.Get()
	theme := Theme()

	label := fmt.Sprintf("bugs eaten: %d", score.Eaten)
	x := cfg.Overlay.CounterX
	y := surface.Top + cfg.Overlay.CounterY + fonts.LineHeight(fonts.Mono)

	scale := float64(score.PopScale)
	if scale <= 0 {
		scale = 1
	}
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Scale(scale, scale)
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(theme.Foreground)
	text.DrawWithOptions(screen, label, face, textOp)

	if score.Lifetime > score.Eaten {
		total := fmt.Sprintf("(%d all time)", score.Lifetime)
		tx := x + float64(len(label)+1)*fonts.Advance(fonts.Mono)*scale
		text.Draw(screen, total, face, int(tx), int(y), theme.Muted)
	}
}
