package systems

import (
	"testing"
	"time"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnBugPlacement(t *testing.T) {
	w := newTestWorld(t)

	bug, ok := SpawnBug(w)
	require.True(t, ok)

	pos := components.Position.Get(bug)
	assert.GreaterOrEqual(t, pos.X, cfg.Bug.SpawnMargin)
	assert.Less(t, pos.X, testWidth-cfg.Bug.SpawnMargin)
	assert.Equal(t, cfg.Overlay.Height-cfg.Bug.GroundOffset, pos.Y)

	data := components.Bug.Get(bug)
	assert.Contains(t, cfg.Bug.Vocabulary, data.Text)
	assert.Equal(t, 1.0, data.Opacity)
	assert.Equal(t, 1.0, data.Scale)
	assert.False(t, data.BeingEaten)
}

func TestSpawnBugAtCapIsNoop(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < cfg.Bug.MaxBugs; i++ {
		_, ok := SpawnBug(w)
		require.True(t, ok)
	}

	bug, ok := SpawnBug(w)
	assert.False(t, ok)
	assert.Nil(t, bug)
	assert.Equal(t, cfg.Bug.MaxBugs, CountBugs(w))
}

func TestSpawnBugCountsBugsBeingEaten(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < cfg.Bug.MaxBugs; i++ {
		bug, _ := SpawnBug(w)
		components.Bug.Get(bug).BeingEaten = true
	}

	_, ok := SpawnBug(w)
	assert.False(t, ok)
}

func TestSpawnBugKeepsSpacingWhenThereIsRoom(t *testing.T) {
	w := newTestWorld(t)
	// Four bugs always fit on a 1000px track with 100px spacing, but the
	// placement is best effort, so only check most draws succeed.
	crowdedPairs := 0
	for run := 0; run < 20; run++ {
		var old []*donburi.Entry
		tags.Bug.Each(w, func(e *donburi.Entry) { old = append(old, e) })
		for _, e := range old {
			e.Remove()
		}
		for i := 0; i < 4; i++ {
			SpawnBug(w)
		}

		var xs []float64
		tags.Bug.Each(w, func(e *donburi.Entry) {
			xs = append(xs, components.Position.Get(e).X)
		})
		for i := range xs {
			if crowded(xs[i], append(append([]float64{}, xs[:i]...), xs[i+1:]...)) {
				crowdedPairs++
			}
		}
	}
	assert.Less(t, crowdedPairs, 10)
}

func TestUpdateSpawnerSchedule(t *testing.T) {
	w := newTestWorld(t)
	step := func(d time.Duration) {
		UpdateClock(w, testStart.Add(d))
		UpdateSpawner(w)
	}

	step(time.Second)
	assert.Equal(t, 0, CountBugs(w))

	step(3 * time.Second)
	assert.Equal(t, 1, CountBugs(w), "initial bug after the start delay")

	step(5 * time.Second)
	assert.Equal(t, 1, CountBugs(w), "initial bug is one-off")

	step(8 * time.Second)
	assert.Equal(t, 1, CountBugs(w), "interval must be strictly exceeded")

	step(8*time.Second + 100*time.Millisecond)
	assert.Equal(t, 2, CountBugs(w))
	assert.Equal(t, testStart.Add(8*time.Second+100*time.Millisecond), GetOrCreateSpawner(w).LastSpawn)

	step(12 * time.Second)
	assert.Equal(t, 2, CountBugs(w))
}

func TestLiveBugsNeverExceedCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 200; i++ {
		UpdateClock(w, testStart.Add(time.Duration(i)*9*time.Second))
		UpdateSpawner(w)
		SpawnBug(w)
		require.LessOrEqual(t, CountBugs(w), cfg.Bug.MaxBugs)
	}
}

func TestSpawnBugPlacementIsBestEffort(t *testing.T) {
	w := newTestWorld(t)
	// Every candidate in [50, 200) lies within 100px of the bug at 125.
	Resize(w, 250, 720)
	addBug(w, 125)

	bug, ok := SpawnBug(w)
	require.True(t, ok, "a crowded track still takes the last candidate")
	require.NotNil(t, bug)
	assert.Equal(t, 2, CountBugs(w))

	x := components.Position.Get(bug).X
	assert.GreaterOrEqual(t, x, cfg.Bug.SpawnMargin)
	assert.Less(t, x, 250-cfg.Bug.SpawnMargin)
	assert.True(t, crowded(x, []float64{125}))
}
