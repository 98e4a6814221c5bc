package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the collision bounds of an entity in overlay space.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal centre of the bounds.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// Contains reports whether the point lies inside the bounds, edges included.
func (o *ObjectData) Contains(x, y float64) bool {
	return x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()
