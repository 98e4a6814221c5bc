// Package page lays out the scrolling portfolio page in page coordinates.
package page

import (
	"math"
	"strings"

	"github.com/automoto/clawd/blog"
	cfg "github.com/automoto/clawd/config"
)

// Style selects the face and colour a line is drawn with.
type Style int

const (
	StyleTitle Style = iota
	StyleHeading
	StyleBody
	StyleMuted
)

// Line is one row of text with its top-left corner in page space.
type Line struct {
	Text  string
	X, Y  float64
	Style Style
}

// Metrics are the glyph cell sizes of the monospaced faces.
type Metrics struct {
	CharWidth       float64
	LineHeight      float64
	TitleCharWidth  float64
	TitleLineHeight float64
}

// Layout is the laid out page.
type Layout struct {
	Lines      []Line
	HeroTop    float64
	HeroBottom float64
	FooterY    float64
	Height     float64
}

const recentHeading = "recent writings"

// Build lays out the hero, the posts and the footer for a viewport. The
// footer never sits above the bottom of the first screen.
func Build(posts []blog.Post, viewportW, viewportH float64, m Metrics) Layout {
	pad := cfg.Page.Padding
	textWidth := viewportW - 2*pad
	l := Layout{HeroTop: 0, HeroBottom: cfg.Page.HeroHeight}

	y := cfg.Page.HeroHeight/2 - m.TitleLineHeight
	for _, text := range Wrap(cfg.Page.Title, charsFit(textWidth, m.TitleCharWidth)) {
		l.Lines = append(l.Lines, Line{Text: text, X: pad, Y: y, Style: StyleTitle})
		y += m.TitleLineHeight
	}
	y += m.LineHeight / 2
	for _, text := range Wrap(cfg.Page.Tagline, charsFit(textWidth, m.CharWidth)) {
		l.Lines = append(l.Lines, Line{Text: text, X: pad, Y: y, Style: StyleMuted})
		y += m.LineHeight
	}

	y = l.HeroBottom + pad
	l.Lines = append(l.Lines, Line{Text: recentHeading, X: pad, Y: y, Style: StyleMuted})
	y += m.LineHeight * 2

	bodyChars := charsFit(textWidth, m.CharWidth)
	for i, p := range posts {
		if i > 0 {
			y += cfg.Page.PostSpacing - m.LineHeight
		}
		for _, text := range Wrap(p.Title, bodyChars) {
			l.Lines = append(l.Lines, Line{Text: text, X: pad, Y: y, Style: StyleHeading})
			y += m.LineHeight
		}
		if p.PublishedAt != "" {
			l.Lines = append(l.Lines, Line{Text: p.PublishedAt, X: pad, Y: y, Style: StyleMuted})
			y += m.LineHeight
		}
		for _, text := range Wrap(p.Excerpt, bodyChars) {
			l.Lines = append(l.Lines, Line{Text: text, X: pad, Y: y, Style: StyleBody})
			y += m.LineHeight
		}
	}
	y += pad

	// Leave room for the overlay between the content and the footer.
	l.FooterY = math.Max(y+cfg.Overlay.Height, viewportH-cfg.Page.FooterHeight)
	l.Lines = append(l.Lines, Line{
		Text:  cfg.Page.FooterText,
		X:     pad,
		Y:     l.FooterY + (cfg.Page.FooterHeight-m.LineHeight)/2,
		Style: StyleMuted,
	})
	l.Height = l.FooterY + cfg.Page.FooterHeight
	return l
}

// MaxScroll returns the largest scroll offset that keeps the page bottom on screen.
func (l Layout) MaxScroll(viewportH float64) float64 {
	return math.Max(0, l.Height-viewportH)
}

// ClampScroll keeps a scroll offset within [0, MaxScroll].
func (l Layout) ClampScroll(scroll, viewportH float64) float64 {
	return math.Min(math.Max(scroll, 0), l.MaxScroll(viewportH))
}

// Visible reports whether a line intersects the viewport at the given scroll.
func (ln Line) Visible(scroll, viewportH, lineHeight float64) bool {
	return ln.Y+lineHeight >= scroll && ln.Y <= scroll+viewportH
}

func charsFit(width, charWidth float64) int {
	if charWidth <= 0 {
		return 1
	}
	return max(1, int(width/charWidth))
}

// Wrap breaks text on spaces into lines of at most width characters. Words
// longer than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
