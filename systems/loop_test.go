package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestUpdateClockTickCadence(t *testing.T) {
	w := donburi.NewWorld()

	UpdateClock(w, testStart)
	clock := GetOrCreateClock(w)
	assert.True(t, clock.TickDue, "first frame runs a tick")

	UpdateClock(w, testStart.Add(50*time.Millisecond))
	assert.False(t, clock.TickDue)
	assert.Equal(t, 50*time.Millisecond, clock.Delta)

	UpdateClock(w, testStart.Add(84*time.Millisecond))
	assert.True(t, clock.TickDue)
	assert.Equal(t, 2, clock.Ticks)
}

func TestUpdateClockDropsMissedTicks(t *testing.T) {
	w := donburi.NewWorld()
	UpdateClock(w, testStart)

	// A stall of one second yields a single tick, not twelve.
	UpdateClock(w, testStart.Add(time.Second))
	clock := GetOrCreateClock(w)
	assert.True(t, clock.TickDue)
	assert.Equal(t, 2, clock.Ticks)

	UpdateClock(w, testStart.Add(time.Second+10*time.Millisecond))
	assert.False(t, clock.TickDue)
	assert.Equal(t, 2, clock.Ticks)
}

func TestOnLogicTick(t *testing.T) {
	w := donburi.NewWorld()
	runs := 0
	system := OnLogicTick(func(donburi.World) { runs++ })

	for i := 0; i < 60; i++ {
		UpdateClock(w, testStart.Add(time.Duration(i)*time.Second/60))
		system(w)
	}

	// One second of 60 TPS frames at a 12 TPS logic rate.
	assert.InDelta(t, 12, runs, 1)
}
