package tags

import "github.com/yohamta/donburi"

var (
	Mascot   = donburi.NewTag().SetName("Mascot")
	Bug      = donburi.NewTag().SetName("Bug")
	Particle = donburi.NewTag().SetName("Particle")
	Snake    = donburi.NewTag().SetName("Snake")
)

// Resolv tags for hit testing
const (
	ResolvMascot = "mascot"
	ResolvProbe  = "probe"
)
