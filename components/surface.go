package components

import "github.com/yohamta/donburi"

// SurfaceData is a singleton describing where the overlay sits on screen
type SurfaceData struct {
	ViewportWidth  float64
	ViewportHeight float64
	ScrollY        float64

	// Page-space top of the footer landmark; ignored unless HasFooter
	FooterY   float64
	HasFooter bool

	// Screen-space top edge of the overlay, derived from the fields above
	Top float64
}

var Surface = donburi.NewComponentType[SurfaceData]()
