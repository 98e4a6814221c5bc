package components

import "github.com/yohamta/donburi"

// Click is a pointer press in screen coordinates.
type Click struct {
	X, Y float64
}

// PointerData is a singleton queue of clicks waiting for the next logic tick
type PointerData struct {
	Clicks []Click
}

var Pointer = donburi.NewComponentType[PointerData]()
