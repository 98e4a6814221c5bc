package scenes

import (
	"sync"
	"time"

	"github.com/automoto/clawd/blog"
	"github.com/automoto/clawd/config"
	"github.com/automoto/clawd/input"
	"github.com/automoto/clawd/page"
	"github.com/automoto/clawd/render"
	"github.com/automoto/clawd/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PageScene is the scrolling portfolio page with the hero snakes and the
// footer mascot overlay.
type PageScene struct {
	settings *config.Settings
	posts    []blog.Post
	once     sync.Once

	// overlay is nil when the mascot is disabled for this viewport
	overlay *ecs.ECS
	hero    *ecs.ECS

	input  input.State
	layout page.Layout
	scroll float64

	width, height      float64
	pendingW, pendingH float64
	quitting           bool

	now func() time.Time
}

// NewPageScene creates the page scene for the given posts
func NewPageScene(settings *config.Settings, posts []blog.Post) *PageScene {
	return &PageScene{
		settings: settings,
		posts:    posts,
		width:    float64(settings.WindowWidth),
		height:   float64(settings.WindowHeight),
		pendingW: float64(settings.WindowWidth),
		pendingH: float64(settings.WindowHeight),
		now:      time.Now,
	}
}

// SetViewport records the window size; it is applied on the next Update.
func (ps *PageScene) SetViewport(width, height int) {
	ps.pendingW = float64(width)
	ps.pendingH = float64(height)
}

// Quitting reports whether the quit action was pressed.
func (ps *PageScene) Quitting() bool {
	return ps.quitting
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	if ps.pendingW != ps.width || ps.pendingH != ps.height {
		ps.resize(ps.pendingW, ps.pendingH)
	}

	ps.input.Poll()
	ps.handleActions()

	if ps.overlay != nil {
		for _, c := range ps.input.Clicks {
			systems.Click(ps.overlay.World, c.X, c.Y)
		}
		ps.overlay.Update()
	}
	if ps.hero != nil {
		ps.hero.Update()
	}
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	render.DrawPage(screen, ps.layout, ps.scroll)

	if ps.hero != nil {
		ps.hero.Draw(screen)
	}
	if ps.overlay != nil {
		ps.overlay.Draw(screen)
	}
}

func (ps *PageScene) configure() {
	now := ps.now()
	ps.layout = page.Build(ps.posts, ps.width, ps.height, render.Metrics())

	if !ps.settings.ReducedMotion {
		ps.hero = ps.newHero(now)
	}
	if ps.settings.MascotEnabled(int(ps.width)) {
		ps.overlay = ps.newOverlay(now)
	} else {
		log.Info().Float64("width", ps.width).Bool("reducedMotion", ps.settings.ReducedMotion).
			Msg("mascot disabled")
	}
}

func (ps *PageScene) newOverlay(now time.Time) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	w := e.World

	systems.InitSimulation(w, now, ps.settings.Seed, ps.width)
	systems.Resize(w, ps.width, ps.height)
	systems.SetFooter(w, ps.layout.FooterY, ps.settings.ShowFooter)
	systems.Scroll(w, ps.scroll)

	e.AddSystem(func(e *ecs.ECS) {
		systems.UpdateClock(e.World, ps.now())
	})
	e.AddSystem(worldSystem(systems.UpdatePointer))
	for _, s := range systems.LogicSystems() {
		e.AddSystem(worldSystem(systems.OnLogicTick(s)))
	}
	e.AddSystem(worldSystem(systems.UpdateScore))

	e.AddRenderer(render.LayerOverlay, render.DrawBugs)
	e.AddRenderer(render.LayerOverlay, render.DrawParticles)
	e.AddRenderer(render.LayerOverlay, render.DrawMascots)
	e.AddRenderer(render.LayerOverlay, render.DrawCounter)
	e.AddRenderer(render.LayerDebug, render.DrawDebug)
	return e
}

func (ps *PageScene) newHero(now time.Time) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	w := e.World

	systems.InitHero(w, now, ps.layout.HeroTop, ps.layout.HeroBottom, ps.width)
	systems.SeedRandom(w, ps.settings.Seed)

	e.AddSystem(func(e *ecs.ECS) {
		systems.UpdateClock(e.World, ps.now())
	})
	e.AddSystem(worldSystem(systems.UpdateSnakes))
	e.AddRenderer(render.LayerHero, render.DrawSnakes)
	return e
}

func (ps *PageScene) handleActions() {
	in := &ps.input

	if in.JustPressed(input.ActionQuit) {
		ps.quitting = true
	}
	if in.JustPressed(input.ActionToggleTheme) {
		config.ActiveTheme.Toggle()
		log.Info().Str("theme", config.ActiveTheme.Name).Msg("theme toggled")
	}
	if in.JustPressed(input.ActionToggleDebug) {
		render.Debug = !render.Debug
	}

	scroll := ps.scroll + ScrollDelta(in, ps.height, ps.layout.MaxScroll(ps.height))
	ps.setScroll(scroll)
}

// ScrollDelta converts this frame's actions and wheel movement into a scroll change.
func ScrollDelta(in *input.State, viewportH, maxScroll float64) float64 {
	delta := in.Scroll
	if in.Pressed(input.ActionScrollUp) {
		delta -= config.Page.ScrollStep
	}
	if in.Pressed(input.ActionScrollDown) {
		delta += config.Page.ScrollStep
	}
	if in.JustPressed(input.ActionPageUp) {
		delta -= viewportH * 0.9
	}
	if in.JustPressed(input.ActionPageDown) {
		delta += viewportH * 0.9
	}
	if in.JustPressed(input.ActionTop) {
		delta = -maxScroll
	}
	if in.JustPressed(input.ActionBottom) {
		delta = maxScroll
	}
	return delta
}

func (ps *PageScene) setScroll(scroll float64) {
	scroll = ps.layout.ClampScroll(scroll, ps.height)
	if scroll == ps.scroll {
		return
	}
	ps.scroll = scroll
	for _, e := range []*ecs.ECS{ps.overlay, ps.hero} {
		if e != nil {
			systems.Scroll(e.World, scroll)
		}
	}
}

func (ps *PageScene) resize(width, height float64) {
	ps.width, ps.height = width, height
	ps.layout = page.Build(ps.posts, width, height, render.Metrics())

	if ps.overlay != nil {
		w := ps.overlay.World
		systems.Resize(w, width, height)
		systems.SetFooter(w, ps.layout.FooterY, ps.settings.ShowFooter)
	}
	if ps.hero != nil {
		hero := systems.GetOrCreateHero(ps.hero.World)
		hero.Top = ps.layout.HeroTop
		hero.Bottom = ps.layout.HeroBottom
		hero.Width = width
	}
	ps.setScroll(ps.scroll)
	log.Debug().Float64("width", width).Float64("height", height).Msg("viewport resized")
}
