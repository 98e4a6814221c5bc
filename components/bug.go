package components

import "github.com/yohamta/donburi"

// BugData is a collectible text token floating above the footer
type BugData struct {
	Text       string
	Wiggle     float64 // horizontal draw offset
	Opacity    float64
	Scale      float64
	BeingEaten bool
}

var Bug = donburi.NewComponentType[BugData]()
