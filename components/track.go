package components

import "github.com/yohamta/donburi"

// TrackData is a singleton with the size of the overlay the actors walk along
type TrackData struct {
	Width  float64
	Height float64
}

var Track = donburi.NewComponentType[TrackData]()
