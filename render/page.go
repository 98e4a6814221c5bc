package render

import (
	"image/color"

	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/fonts"
	"github.com/automoto/clawd/page"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPage clears the screen and draws the visible lines of the page and the footer band.
func DrawPage(screen *ebiten.Image, layout page.Layout, scroll float64) {
	theme := Theme()
	screen.Fill(theme.Background)

	width := float32(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	footerTop := layout.FooterY - scroll
	if footerTop < height {
		vector.FillRect(screen, 0, float32(footerTop), width, float32(cfg.Page.FooterHeight), theme.Footer, false)
	}

	for _, ln := range layout.Lines {
		name := styleFont(ln.Style)
		lh := fonts.LineHeight(name)
		if !ln.Visible(scroll, height, lh) {
			continue
		}
		// Line.Y is the top of the row; text.Draw wants the baseline.
		baseline := ln.Y - scroll + float64(name.Get().Metrics().Ascent)/64
		text.Draw(screen, ln.Text, name.Get(), int(ln.X), int(baseline), styleColor(ln.Style, theme))
	}
}

// Metrics measures the loaded faces for page layout.
func Metrics() page.Metrics {
	return page.Metrics{
		CharWidth:       fonts.Advance(fonts.Mono),
		LineHeight:      fonts.LineHeight(fonts.Mono),
		TitleCharWidth:  fonts.Advance(fonts.MonoTitle),
		TitleLineHeight: fonts.LineHeight(fonts.MonoTitle),
	}
}

func styleFont(s page.Style) fonts.FontName {
	switch s {
	case page.StyleTitle:
		return fonts.MonoTitle
	case page.StyleHeading:
		return fonts.MonoBold
	default:
		return fonts.Mono
	}
}

func styleColor(s page.Style, theme cfg.ThemeConfig) color.Color {
	if s == page.StyleMuted {
		return theme.Muted
	}
	return theme.Foreground
}
