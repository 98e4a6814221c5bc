package assets

import (
	"testing"

	"github.com/automoto/clawd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMascotSpritesShape(t *testing.T) {
	keys := []config.SpriteKey{
		config.SpriteBody, config.SpriteBlink, config.SpriteWalk1,
		config.SpriteWalk2, config.SpriteEating, config.SpriteJump,
	}
	for _, key := range keys {
		sprite, ok := MascotSprites[key]
		require.True(t, ok, key)
		assert.Equal(t, 10, sprite.Height(), key)
		for _, row := range sprite {
			assert.Len(t, row, 14, key)
		}
	}
}

func TestEyesAreNotDrawn(t *testing.T) {
	body := MascotSprites[config.SpriteBody]
	assert.Equal(t, uint8(PixelEye), body[2][5])
	assert.False(t, body.Filled(2, 5, false))
	assert.True(t, body.Filled(2, 4, false))
}

func TestRects(t *testing.T) {
	sprite := Sprite{
		{1, 0},
		{0, 2},
	}

	rects := sprite.Rects(10, 20, 7, 4, false)
	assert.Equal(t, []Rect{{X: 10, Y: 20, W: 4, H: 2}}, rects)

	flipped := sprite.Rects(10, 20, 7, 4, true)
	assert.Equal(t, []Rect{{X: 13, Y: 20, W: 4, H: 2}}, flipped)

	assert.Nil(t, Sprite{}.Rects(0, 0, 10, 10, false))
}

func TestRectsCoverMascotBox(t *testing.T) {
	sprite := MascotSprites[config.SpriteBody]
	filled := 0
	for row := range sprite {
		for col := range sprite[row] {
			if sprite[row][col] == PixelFill {
				filled++
			}
		}
	}

	rects := sprite.Rects(100, 38, 48, 40, true)
	require.Len(t, rects, filled)
	for _, r := range rects {
		assert.GreaterOrEqual(t, r.X, 100.0)
		assert.LessOrEqual(t, r.X+r.W, 149.0)
		assert.GreaterOrEqual(t, r.Y, 38.0)
		assert.LessOrEqual(t, r.Y+r.H, 78.0)
	}
}
