package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RandomData is a singleton random source; tests seed it for determinism.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
