package systems

import (
	"github.com/automoto/clawd/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects refreshes the hit-test cells of every moved object.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
