// Package render draws the page, the footer overlay and the hero snakes.
package render

import (
	"image/color"

	"github.com/automoto/clawd/config"
	"github.com/yohamta/donburi/ecs"
)

// Layers, drawn in order
const (
	LayerPage ecs.LayerID = iota
	LayerHero
	LayerOverlay
	LayerDebug
)

// Theme returns the active palette. It is sampled on every draw.
func Theme() config.ThemeConfig {
	return config.ActiveTheme.Colors()
}

// Ink is the colour of every overlay shape and label: the theme foreground.
func Ink() color.RGBA {
	return Theme().Foreground
}

// fade scales the alpha of c by a in [0, 1].
func fade(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
