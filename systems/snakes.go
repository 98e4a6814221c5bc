package systems

import (
	"math"
	"time"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/systems/factory"
	"github.com/automoto/clawd/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateSnakes spawns, grows and retires the hero snakes. It runs once per
// frame rather than per logic tick.
func UpdateSnakes(w donburi.World) {
	clock := GetOrCreateClock(w)
	hero := GetOrCreateHero(w)

	for hero.InitialSpawned < cfg.Snake.InitialSnakes {
		due := clock.Start.Add(cfg.Snake.InitialStagger * time.Duration(hero.InitialSpawned))
		if clock.Now.Before(due) {
			break
		}
		hero.InitialSpawned++
		SpawnSnake(w)
	}
	if clock.Now.Sub(hero.LastSpawn) >= cfg.Snake.SpawnInterval {
		hero.LastSpawn = clock.Now
		SpawnSnake(w)
	}

	rng := GetOrCreateRandom(w)
	dt := float32(clock.Delta.Seconds())

	var toRemove []*donburi.Entry
	tags.Snake.Each(w, func(e *donburi.Entry) {
		s := components.Snake.Get(e)
		AdvanceSnake(s, hero, rng.Float64)
		if s.FadeIn != nil {
			alpha, done := s.FadeIn.Update(dt)
			s.Alpha = alpha
			if done {
				s.FadeIn = nil
				s.Alpha = 1
			}
		}
		if !s.Alive {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}

// CountSnakes returns the number of live snakes.
func CountSnakes(w donburi.World) int {
	n := 0
	tags.Snake.Each(w, func(e *donburi.Entry) {
		if components.Snake.Get(e).Alive {
			n++
		}
	})
	return n
}

// SpawnSnake starts a snake near the top-left or top-right corner of the
// hero unless the maximum is alive.
func SpawnSnake(w donburi.World) (*donburi.Entry, bool) {
	if CountSnakes(w) >= cfg.Snake.MaxSnakes {
		return nil, false
	}

	rng := GetOrCreateRandom(w)
	hero := GetOrCreateHero(w)
	margin := cfg.Snake.StartMargin

	var start math2.Vec2
	var heading components.Heading
	if rng.Float64() > 0.5 {
		start = math2.Vec2{X: hero.Width - rng.Float64()*margin, Y: hero.Top + rng.Float64()*margin}
		heading = components.HeadingDown
		if rng.Float64() > 0.5 {
			heading = components.HeadingLeft
		}
	} else {
		start = math2.Vec2{X: rng.Float64() * margin, Y: hero.Top + rng.Float64()*margin}
		heading = components.HeadingDown
		if rng.Float64() > 0.5 {
			heading = components.HeadingRight
		}
	}

	snake := factory.CreateSnake(w, start, components.SnakeData{
		Heading:       heading,
		Color:         cfg.Snake.Colors[rng.IntN(len(cfg.Snake.Colors))],
		Speed:         cfg.Snake.MinSpeed + rng.Float64()*cfg.Snake.SpeedRange,
		LineWidth:     cfg.Snake.MinWidth + rng.Float64()*cfg.Snake.WidthRange,
		MaxLength:     cfg.Snake.MinLength + rng.Float64()*cfg.Snake.LengthRange,
		SegmentLength: cfg.Snake.FirstSegment + rng.Float64()*cfg.Snake.FirstRange,
	})
	return snake, true
}

// AdvanceSnake moves the head one step, turning at the end of a segment or
// outside the hero, and eats the tail once the snake is long enough.
func AdvanceSnake(s *components.SnakeData, hero *components.HeroData, roll func() float64) {
	if !s.Alive || len(s.Points) == 0 {
		return
	}

	head := &s.Points[len(s.Points)-1]
	switch s.Heading {
	case components.HeadingRight:
		head.X += s.Speed
	case components.HeadingLeft:
		head.X -= s.Speed
	case components.HeadingDown:
		head.Y += s.Speed
	case components.HeadingUp:
		head.Y -= s.Speed
	}

	s.SegmentTravel += s.Speed
	s.TotalLength += s.Speed

	buffer := cfg.Snake.BoundsBuffer
	outside := head.X > hero.Width+buffer || head.X < -buffer ||
		head.Y > hero.Bottom+buffer || head.Y < hero.Top-buffer
	if s.SegmentTravel >= s.SegmentLength || outside {
		turnSnake(s, roll)
	}

	if s.TotalLength > s.MaxLength {
		s.TailProgress += s.Speed * cfg.Snake.TailCatchUp
	}
	if s.TailProgress >= s.TotalLength {
		s.Alive = false
	}
}

func turnSnake(s *components.SnakeData, roll func() float64) {
	s.Points = append(s.Points, s.Points[len(s.Points)-1])

	if s.Heading.Horizontal() {
		s.Heading = components.HeadingUp
		if roll() > 0.5 {
			s.Heading = components.HeadingDown
		}
	} else {
		s.Heading = components.HeadingLeft
		if roll() > 0.5 {
			s.Heading = components.HeadingRight
		}
	}
	s.SegmentLength = cfg.Snake.MinSegment + roll()*cfg.Snake.SegmentRange
	s.SegmentTravel = 0
}

// VisiblePath returns the part of the polyline not yet eaten by the tail,
// starting at the interpolated tail point. It is nil when nothing is left.
func VisiblePath(points []math2.Vec2, tail float64) []math2.Vec2 {
	if len(points) < 2 {
		return nil
	}

	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += segmentLength(points[i], points[i+1])
	}
	if total-tail <= 1 {
		return nil
	}

	remaining := tail
	for i := 0; i < len(points)-1; i++ {
		segLen := segmentLength(points[i], points[i+1])
		if segLen == 0 {
			continue
		}
		if remaining <= segLen {
			ratio := remaining / segLen
			start := math2.Vec2{
				X: points[i].X + (points[i+1].X-points[i].X)*ratio,
				Y: points[i].Y + (points[i+1].Y-points[i].Y)*ratio,
			}
			path := make([]math2.Vec2, 0, len(points)-i)
			path = append(path, start)
			return append(path, points[i+1:]...)
		}
		remaining -= segLen
	}
	return nil
}

func segmentLength(a, b math2.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
