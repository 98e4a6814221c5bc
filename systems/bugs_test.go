package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBugBeingEatenFadesOut(t *testing.T) {
	w := newTestWorld(t)
	e := addBug(w, 400)
	bug := components.Bug.Get(e)
	bug.BeingEaten = true

	prev := bug.Opacity
	ticks := 0
	for e.Valid() {
		require.Less(t, ticks, 20)
		UpdateBugs(w)
		ticks++
		if !e.Valid() {
			break
		}
		assert.Greater(t, bug.Opacity, 0.0, "removed as soon as opacity reaches zero")
		assert.LessOrEqual(t, bug.Opacity, prev)
		prev = bug.Opacity
	}

	// 1 / 0.15 rounds up to 7 ticks.
	assert.Equal(t, 7, ticks)
}

func TestBugWiggle(t *testing.T) {
	w := newTestWorld(t)
	e := addBug(w, 400)

	UpdateClock(w, testStart.Add(1234*time.Millisecond))
	UpdateBugs(w)

	bug := components.Bug.Get(e)
	want := math.Sin(1234.0/cfg.Bug.WigglePeriodMs+400) * cfg.Bug.WiggleAmplitude
	assert.InDelta(t, want, bug.Wiggle, 1e-9)
	assert.LessOrEqual(t, math.Abs(bug.Wiggle), cfg.Bug.WiggleAmplitude)
	assert.Equal(t, 1.0, bug.Opacity)
}
