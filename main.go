package main

import (
	"flag"
	"io"
	"os"

	"github.com/automoto/clawd/blog"
	"github.com/automoto/clawd/config"
	"github.com/automoto/clawd/fonts"
	"github.com/automoto/clawd/logging"
	"github.com/automoto/clawd/render"
	"github.com/automoto/clawd/scenes"
	"github.com/automoto/clawd/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	width  int
	height int
}

func NewGame(settings *config.Settings, posts []blog.Post) *Game {
	return &Game{
		scene:  scenes.NewPageScene(settings, posts),
		width:  settings.WindowWidth,
		height: settings.WindowHeight,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(interface{ Quitting() bool }); ok && q.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the page reflows on resize.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		if v, ok := g.scene.(interface{ SetViewport(w, h int) }); ok {
			v.SetViewport(width, height)
		}
	}
	return width, height
}

func main() {
	configDir := flag.String("config", ".", "Directory containing clawd.json")
	logFile := flag.String("logfile", "", "Also write logs to this file")
	debug := flag.Bool("debug", false, "Outline collision bounds")
	flag.Parse()

	settings, err := config.LoadSettings(*configDir)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings, using defaults")
		settings = config.DefaultSettings()
	}

	var file io.Writer
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn().Err(err).Str("path", *logFile).Msg("could not open log file")
		} else {
			defer f.Close()
			file = f
		}
	}
	logging.Setup(settings.LogLevel, file)

	config.ActiveTheme.Name = settings.Theme
	render.Debug = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("could not load fonts")
	}

	if settings.PersistScore {
		if err := systems.InitPersistence(); err != nil {
			log.Warn().Err(err).Msg("could not initialize persistence")
		}
	}

	store := blog.Open(afero.NewOsFs(), settings.ContentDir, log.Logger)
	posts := store.Recent(settings.RecentPosts)
	log.Info().Int("posts", len(posts)).Str("theme", settings.Theme).Msg("starting clawd")

	ebiten.SetWindowTitle(config.Page.Title)
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(settings, posts)); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
