package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the overlay-space location of entities that take no part in hit tests.
var Position = donburi.NewComponentType[math.Vec2]()
