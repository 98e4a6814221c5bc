package systems

import (
	"testing"
	"time"

	"github.com/automoto/clawd/components"
	"github.com/automoto/clawd/systems/factory"
	"github.com/automoto/clawd/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const testWidth = 1000.0

// newTestWorld returns a world with the overlay singletons and no actors.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	SetItemStore(nil)

	w := donburi.NewWorld()
	first := InitSimulation(w, testStart, 1, testWidth)
	removeMascot(t, first)
	return w
}

// newTestWorldWithMascot returns a world with the starting actor.
func newTestWorldWithMascot(t *testing.T) (donburi.World, *donburi.Entry) {
	t.Helper()
	SetItemStore(nil)

	w := donburi.NewWorld()
	return w, InitSimulation(w, testStart, 1, testWidth)
}

func removeMascot(t *testing.T, e *donburi.Entry) {
	t.Helper()
	obj := components.Object.Get(e)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	e.Remove()
}

func addMascot(w donburi.World, x, dir float64) *donburi.Entry {
	return factory.CreateMascot(w, x, dir)
}

func addBug(w donburi.World, x float64) *donburi.Entry {
	track := GetOrCreateTrack(w)
	return factory.CreateBug(w, x, track.Height-12, "panic!")
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func mascots(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Mascot.Each(w, func(e *donburi.Entry) { out = append(out, e) })
	return out
}

func requireMascot(t *testing.T, e *donburi.Entry) (*components.MascotData, *components.ObjectData) {
	t.Helper()
	require.True(t, e.Valid())
	return components.Mascot.Get(e), components.Object.Get(e)
}
