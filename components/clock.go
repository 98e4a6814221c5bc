package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is a singleton holding wall-clock time for the current frame
type ClockData struct {
	Now      time.Time
	Start    time.Time
	LastTick time.Time
	Delta    time.Duration // time since the previous frame
	TickDue  bool          // a logic tick runs during this frame
	Ticks    int           // logic ticks run so far
}

// Millis returns milliseconds elapsed since Start.
func (c *ClockData) Millis() float64 {
	return float64(c.Now.Sub(c.Start)) / float64(time.Millisecond)
}

var Clock = donburi.NewComponentType[ClockData]()
