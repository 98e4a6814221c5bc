package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

type FontName string

const (
	Mono      FontName = "mono"       // counter, page body
	MonoBold  FontName = "mono-bold"  // bug labels
	MonoSmall FontName = "mono-small" // particles
	MonoTitle FontName = "mono-title" // page headings
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go Mono faces at the sizes the page uses.
func LoadDefaults() error {
	if err := LoadFontWithSize(Mono, gomono.TTF, 10); err != nil {
		return err
	}
	if err := LoadFontWithSize(MonoBold, gomonobold.TTF, 10); err != nil {
		return err
	}
	if err := LoadFontWithSize(MonoSmall, gomono.TTF, 8); err != nil {
		return err
	}
	return LoadFontWithSize(MonoTitle, gomonobold.TTF, 24)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Advance returns the width of one glyph cell of a monospaced face in pixels.
func Advance(name FontName) float64 {
	adv, ok := name.Get().GlyphAdvance('M')
	if !ok {
		return 0
	}
	return float64(adv) / 64
}

// LineHeight returns the recommended baseline-to-baseline distance in pixels.
func LineHeight(name FontName) float64 {
	return float64(name.Get().Metrics().Height) / 64
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
