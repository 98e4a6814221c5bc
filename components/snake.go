package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Heading is the travel direction of a snake's head.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingLeft
	HeadingDown
	HeadingUp
)

// Horizontal reports whether the heading runs along the x axis.
func (h Heading) Horizontal() bool {
	return h == HeadingRight || h == HeadingLeft
}

// SnakeData is a growing polyline that turns at right angles and is eaten from the tail
type SnakeData struct {
	Points        []math.Vec2 // last point is the head
	Heading       Heading
	Color         color.RGBA
	Speed         float64
	LineWidth     float64
	MaxLength     float64
	SegmentLength float64
	SegmentTravel float64 // progress along the current segment
	TailProgress  float64
	TotalLength   float64
	Alive         bool

	FadeIn *gween.Tween
	Alpha  float32
}

var Snake = donburi.NewComponentType[SnakeData]()

// HeroData is a singleton with the page-space bounds the snakes live in
type HeroData struct {
	Top    float64
	Bottom float64
	Width  float64

	LastSpawn      time.Time
	InitialSpawned int // staggered start-up snakes released so far
}

var Hero = donburi.NewComponentType[HeroData]()
