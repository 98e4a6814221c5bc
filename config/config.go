package config

import (
	"image/color"
	"time"
)

// MascotConfig contains the tuning values of the footer mascot
type MascotConfig struct {
	// Dimensions
	SpriteWidth  float64
	SpriteHeight float64
	GroundOffset float64 // Gap between sprite feet and the overlay bottom

	// Movement (pixels per logic tick)
	TrackMargin float64 // Actors turn around this far from either edge
	WalkStep    float64
	HuntStep    float64
	EatDistance float64 // Horizontal distance at which a hunted bug is caught

	// State durations (logic ticks)
	IdleDwell   int
	EatDuration int
	IdleChance  float64 // Per-tick probability of a walking actor stopping

	// Jump physics
	JumpVelocity float64
	Gravity      float64

	// Spawning
	StartX                 float64
	ReinforcementThreshold int     // Bugs eaten before the second actor appears
	ReinforcementInset     float64 // Distance of the second actor from the right edge
}

// BugConfig contains bug spawner configuration
type BugConfig struct {
	MaxBugs           int
	SpawnInterval     time.Duration
	InitialDelay      time.Duration
	MinSpacing        float64 // Preferred horizontal distance between bugs
	SpawnMargin       float64 // Bugs are placed this far from either edge
	PlacementAttempts int
	GroundOffset      float64 // Bug baseline distance from the overlay bottom

	// Consumption animation (per logic tick)
	FadeRate   float64
	ShrinkRate float64

	// Idle wiggle
	WiggleAmplitude float64
	WigglePeriodMs  float64

	Vocabulary []string
}

// ParticleConfig contains eating particle configuration
type ParticleConfig struct {
	BurstSize int
	SpreadX   float64 // Horizontal velocity range, centred on zero
	MinRise   float64
	RiseRange float64
	Gravity   float64
	Decay     float64 // Life lost per logic tick
	Glyphs    []string
}

// LoopConfig contains the logic rate of the simulation
type LoopConfig struct {
	LogicTPS     int
	TickInterval time.Duration
}

// OverlayConfig contains the footer overlay surface layout
type OverlayConfig struct {
	Height         float64
	FallbackBottom float64 // Distance from viewport bottom when the page has no footer
	MaxWidth       int     // Size of the collision space; wider viewports are clamped
	CellSize       int
	CounterX       float64
	CounterY       float64
	PopScale       float64 // Counter scale right after a bug is eaten
	PopDuration    float32 // Seconds
}

// SnakeConfig contains hero line animation configuration
type SnakeConfig struct {
	MaxSnakes      int
	SpawnInterval  time.Duration
	InitialSnakes  int
	InitialStagger time.Duration
	StartMargin    float64
	BoundsBuffer   float64
	MinSpeed       float64
	SpeedRange     float64
	MinWidth       float64
	WidthRange     float64
	MinLength      float64
	LengthRange    float64
	FirstSegment   float64
	FirstRange     float64
	MinSegment     float64
	SegmentRange   float64
	TailCatchUp    float64 // Tail speed multiplier once max length is reached
	FadeIn         float32 // Seconds
	Colors         []color.RGBA
}

// PageConfig contains layout of the scrollable portfolio page
type PageConfig struct {
	HeroHeight   float64
	Padding      float64
	PostSpacing  float64
	FooterHeight float64
	ScrollStep   float64 // Pixels per frame while a scroll key is held
	Title        string
	Tagline      string
	FooterText   string
}

// ThemeConfig holds one colour theme
type ThemeConfig struct {
	Background color.RGBA
	Foreground color.RGBA
	Muted      color.RGBA
	Footer     color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Mascot MascotConfig
var Bug BugConfig
var Particle ParticleConfig
var Loop LoopConfig
var Overlay OverlayConfig
var Snake SnakeConfig
var Page PageConfig
var Themes map[string]ThemeConfig

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Ink       = color.RGBA{R: 230, G: 237, B: 243, A: 255}
	Paper     = color.RGBA{R: 13, G: 17, B: 23, A: 255}
	Slate     = color.RGBA{R: 139, G: 148, B: 158, A: 255}
	LightInk  = color.RGBA{R: 31, G: 35, B: 40, A: 255}
	LightGrey = color.RGBA{R: 246, G: 248, B: 250, A: 255}
	MidGrey   = color.RGBA{R: 101, G: 109, B: 118, A: 255}
	Night     = color.RGBA{R: 22, G: 27, B: 34, A: 255}
	Mist      = color.RGBA{R: 234, G: 238, B: 242, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Mascot = MascotConfig{
		SpriteWidth:  48, // Wide enough for the arms
		SpriteHeight: 40,
		GroundOffset: 2,

		TrackMargin: 20,
		WalkStep:    6,
		HuntStep:    10,
		EatDistance: 15,

		IdleDwell:   24, // 2 seconds at 12 ticks/second
		EatDuration: 10,
		IdleChance:  0.008,

		JumpVelocity: -8,
		Gravity:      1.2,

		StartX:                 100,
		ReinforcementThreshold: 10,
		ReinforcementInset:     150,
	}

	Bug = BugConfig{
		MaxBugs:           5,
		SpawnInterval:     8 * time.Second,
		InitialDelay:      3 * time.Second,
		MinSpacing:        100,
		SpawnMargin:       50,
		PlacementAttempts: 10,
		GroundOffset:      12,

		FadeRate:   0.15,
		ShrinkRate: 0.1,

		WiggleAmplitude: 1.5,
		WigglePeriodMs:  200,

		Vocabulary: []string{
			"404", "NaN", "null", "undefined", "ERROR",
			"TypeError", "ReferenceError", "SyntaxError",
			"KeyError", "IndexError", "ValueError", "AttributeError",
			"SEGFAULT", "panic!", "Exception", "FATAL",
			"<bug>", "???", "TODO", "FIXME", "deprecated",
		},
	}

	Particle = ParticleConfig{
		BurstSize: 5,
		SpreadX:   4,
		MinRise:   1,
		RiseRange: 3,
		Gravity:   0.3,
		Decay:     0.08,
		Glyphs:    []string{"*", "!", "#", "@"},
	}

	Loop = LoopConfig{
		LogicTPS:     12,
		TickInterval: time.Second / 12,
	}

	Overlay = OverlayConfig{
		Height:         80,
		FallbackBottom: 40,
		MaxWidth:       7680,
		CellSize:       16,
		CounterX:       10,
		CounterY:       10,
		PopScale:       1.6,
		PopDuration:    0.35,
	}

	Snake = SnakeConfig{
		MaxSnakes:      16,
		SpawnInterval:  time.Second,
		InitialSnakes:  3,
		InitialStagger: 500 * time.Millisecond,
		StartMargin:    50,
		BoundsBuffer:   20,
		MinSpeed:       3.5,
		SpeedRange:     2,
		MinWidth:       2,
		WidthRange:     2,
		MinLength:      500,
		LengthRange:    200,
		FirstSegment:   100,
		FirstRange:     100,
		MinSegment:     30,
		SegmentRange:   80,
		TailCatchUp:    1.1,
		FadeIn:         0.5,
		Colors: []color.RGBA{
			{R: 88, G: 166, B: 255, A: 102}, // cyan
			{R: 188, G: 140, B: 255, A: 77}, // purple
			{R: 63, G: 185, B: 80, A: 77},   // green
			{R: 240, G: 198, B: 116, A: 64}, // amber
		},
	}

	Page = PageConfig{
		HeroHeight:   360,
		Padding:      48,
		PostSpacing:  64,
		FooterHeight: 120,
		ScrollStep:   10,
		Title:        "hi, i write software",
		Tagline:      "notes on systems, tools and the bugs in between",
		FooterText:   "built with go and too much coffee",
	}

	Themes = map[string]ThemeConfig{
		"dark": {
			Background: Paper,
			Foreground: Ink,
			Muted:      Slate,
			Footer:     Night,
		},
		"light": {
			Background: LightGrey,
			Foreground: LightInk,
			Muted:      MidGrey,
			Footer:     Mist,
		},
	}
}
