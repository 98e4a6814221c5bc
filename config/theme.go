package config

// Theme is the active colour scheme. Renderers read it on every draw so a
// toggle shows up on the next frame.
type Theme struct {
	Name string
}

// ActiveTheme is shared by the page and overlay renderers.
var ActiveTheme = &Theme{Name: "dark"}

// Colors returns the palette for the theme, dark when the name is unknown.
func (t *Theme) Colors() ThemeConfig {
	if c, ok := Themes[t.Name]; ok {
		return c
	}
	return Themes["dark"]
}

// Toggle switches between the light and dark palettes.
func (t *Theme) Toggle() {
	if t.Name == "light" {
		t.Name = "dark"
		return
	}
	t.Name = "light"
}
