// Command writings renders the blog posts to static HTML fragments and a JSON index.
package main

import (
	"flag"

	"github.com/automoto/clawd/blog"
	"github.com/automoto/clawd/config"
	"github.com/automoto/clawd/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	configDir := flag.String("config", ".", "Directory containing clawd.json")
	contentDir := flag.String("content", "", "Posts directory (default from settings)")
	outDir := flag.String("out", "public/writings", "Output directory")
	flag.Parse()

	settings, err := config.LoadSettings(*configDir)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings, using defaults")
		settings = config.DefaultSettings()
	}
	logging.Setup(settings.LogLevel, nil)

	dir := settings.ContentDir
	if *contentDir != "" {
		dir = *contentDir
	}

	fsys := afero.NewOsFs()
	n, err := blog.Open(fsys, dir, log.Logger).Export(fsys, *outDir)
	if err != nil {
		log.Fatal().Err(err).Str("out", *outDir).Msg("export failed")
	}
	log.Info().Int("posts", n).Str("out", *outDir).Msg("export complete")
}
