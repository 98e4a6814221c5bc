package systems

import (
	"testing"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickOnMascotStartsJumpAndSpawnsBug(t *testing.T) {
	w, e := newTestWorldWithMascot(t)
	surface := GetOrCreateSurface(w)
	_, obj := requireMascot(t, e)

	ok := HandleClick(w, obj.X+10, surface.Top+obj.Y+10)

	require.True(t, ok)
	m := components.Mascot.Get(e)
	require.NotNil(t, m.Jump)
	assert.Equal(t, cfg.Mascot.JumpVelocity, m.Jump.Velocity)
	assert.Equal(t, 1, CountBugs(w))
}

func TestClickOnEdgesHits(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"top left", 0, 0},
		{"bottom right", cfg.Mascot.SpriteWidth, cfg.Mascot.SpriteHeight},
		{"right edge", cfg.Mascot.SpriteWidth, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			e := addMascot(w, 96, cfg.DirectionRight)
			obj := components.Object.Get(e)
			top := GetOrCreateSurface(w).Top

			assert.True(t, HandleClick(w, obj.X+tt.dx, top+obj.Y+tt.dy))
		})
	}
}

func TestClickOutsideDoesNothing(t *testing.T) {
	w, e := newTestWorldWithMascot(t)
	surface := GetOrCreateSurface(w)
	_, obj := requireMascot(t, e)

	misses := [][2]float64{
		{obj.X - 1, surface.Top + obj.Y + 10},
		{obj.X + cfg.Mascot.SpriteWidth + 1, surface.Top + obj.Y + 10},
		{obj.X + 10, surface.Top + obj.Y - 1},
		{obj.X + 10, 5},
		{900, surface.Top + obj.Y + 10},
	}
	for _, c := range misses {
		assert.False(t, HandleClick(w, c[0], c[1]), "click at %v", c)
	}

	assert.Nil(t, components.Mascot.Get(e).Jump)
	assert.Equal(t, 0, CountBugs(w))
}

func TestClickOnJumpingMascotIsIgnored(t *testing.T) {
	w, e := newTestWorldWithMascot(t)
	surface := GetOrCreateSurface(w)
	_, obj := requireMascot(t, e)
	x, y := obj.X+10, surface.Top+obj.Y+10

	require.True(t, HandleClick(w, x, y))
	assert.False(t, HandleClick(w, x, y))
	assert.Equal(t, 1, CountBugs(w))
}

func TestClickHitsOnlyFirstMascot(t *testing.T) {
	w, first := newTestWorldWithMascot(t)
	second := addMascot(w, components.Object.Get(first).X+10, cfg.DirectionLeft)
	surface := GetOrCreateSurface(w)
	obj := components.Object.Get(first)

	require.True(t, HandleClick(w, obj.X+20, surface.Top+obj.Y+10))

	assert.NotNil(t, components.Mascot.Get(first).Jump)
	assert.Nil(t, components.Mascot.Get(second).Jump)
}

func TestClickFollowsOverlaySurface(t *testing.T) {
	w, e := newTestWorldWithMascot(t)
	obj := components.Object.Get(e)

	SetFooter(w, 2000, true)
	Scroll(w, 1500)
	top := GetOrCreateSurface(w).Top
	require.Equal(t, 500-cfg.Overlay.Height, top)

	assert.True(t, HandleClick(w, obj.X+10, top+obj.Y+10))
}

func TestUpdatePointerDrainsQueue(t *testing.T) {
	w, e := newTestWorldWithMascot(t)
	obj := components.Object.Get(e)
	top := GetOrCreateSurface(w).Top

	Click(w, obj.X+10, top+obj.Y+10)
	Click(w, 5, 5)
	UpdatePointer(w)

	assert.Empty(t, GetOrCreatePointer(w).Clicks)
	assert.NotNil(t, components.Mascot.Get(e).Jump)
	assert.Equal(t, 1, CountBugs(w))
}
