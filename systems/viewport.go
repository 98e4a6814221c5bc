package systems

import (
	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/tags"
	"github.com/yohamta/donburi"
)

// Resize applies a new viewport size. Actors left beyond the right margin are
// pulled back onto the track.
func Resize(w donburi.World, width, height float64) {
	track := GetOrCreateTrack(w)
	track.Width = width

	surface := GetOrCreateSurface(w)
	surface.ViewportWidth = width
	surface.ViewportHeight = height
	UpdateSurface(w)

	maxX := width - cfg.Mascot.SpriteWidth - cfg.Mascot.TrackMargin
	tags.Mascot.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.X > maxX {
			obj.X = maxX
		}
		if obj.X < cfg.Mascot.TrackMargin {
			obj.X = cfg.Mascot.TrackMargin
		}
		obj.Update()
	})
}

// Scroll records the page scroll offset and moves the overlay with the footer.
func Scroll(w donburi.World, scrollY float64) {
	GetOrCreateSurface(w).ScrollY = scrollY
	UpdateSurface(w)
}

// SetFooter anchors the overlay to the page-space top of the footer.
func SetFooter(w donburi.World, footerY float64, present bool) {
	surface := GetOrCreateSurface(w)
	surface.FooterY = footerY
	surface.HasFooter = present
	UpdateSurface(w)
}

// UpdateSurface recomputes the screen-space top of the overlay.
func UpdateSurface(w donburi.World) {
	surface := GetOrCreateSurface(w)
	surface.Top = OverlayTop(surface)
}

// OverlayTop places the overlay just above the footer as it appears on
// screen, or at a fixed distance from the viewport bottom without a footer.
func OverlayTop(s *components.SurfaceData) float64 {
	bottomOffset := cfg.Overlay.FallbackBottom
	if s.HasFooter {
		footerTop := s.FooterY - s.ScrollY
		bottomOffset = s.ViewportHeight - footerTop
	}
	return s.ViewportHeight - bottomOffset - cfg.Overlay.Height
}
