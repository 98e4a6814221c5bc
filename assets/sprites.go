package assets

import (
	"math"

	"github.com/automoto/clawd/config"
)

// Pixel values in a sprite matrix.
const (
	PixelEmpty = 0
	PixelFill  = 1
	PixelEye   = 2 // Left undrawn so the background shows through
)

// Sprite is a row-major pixel matrix (10 rows x 14 columns for the mascot).
type Sprite [][]uint8

// Width returns the number of columns.
func (s Sprite) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s)
}

// Filled reports whether the pixel at row, col is drawn. Columns are mirrored when flip is set.
func (s Sprite) Filled(row, col int, flip bool) bool {
	if flip {
		col = s.Width() - 1 - col
	}
	return s[row][col] == PixelFill
}

// Rect is one filled pixel in screen units.
type Rect struct {
	X, Y, W, H float64
}

// Rects scales the sprite onto a w x h box at (x, y). Positions are floored
// and sizes rounded up so neighbouring pixels never leave seams.
func (s Sprite) Rects(x, y, w, h float64, flip bool) []Rect {
	if s.Width() == 0 {
		return nil
	}
	pw := w / float64(s.Width())
	ph := h / float64(s.Height())

	var rects []Rect
	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			if !s.Filled(row, col, flip) {
				continue
			}
			rects = append(rects, Rect{
				X: math.Floor(x + float64(col)*pw),
				Y: math.Floor(y + float64(row)*ph),
				W: math.Ceil(pw),
				H: math.Ceil(ph),
			})
		}
	}
	return rects
}

// MascotSprites holds every frame of the mascot. Body, arms and legs fit a 14x10 grid.
var MascotSprites = map[config.SpriteKey]Sprite{
	config.SpriteBody: {
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 2, 1, 1, 2, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0},
	},
	// Eyes closed
	config.SpriteBlink: {
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0},
	},
	// Legs spread
	config.SpriteWalk1: {
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 2, 1, 1, 2, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	},
	// Legs together
	config.SpriteWalk2: {
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 2, 1, 1, 2, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	},
	// Mouth open
	config.SpriteEating: {
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 2, 1, 1, 2, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0},
	},
	// Legs tucked
	config.SpriteJump: {
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 2, 1, 1, 2, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}
