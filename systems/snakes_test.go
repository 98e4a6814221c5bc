package systems

import (
	"testing"
	"time"

	"github.com/automoto/clawd/components"
	cfg "github.com/automoto/clawd/config"
	"github.com/automoto/clawd/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

func testHero() *components.HeroData {
	return &components.HeroData{Top: 0, Bottom: 360, Width: 1000}
}

func straightSnake(heading components.Heading) *components.SnakeData {
	start := math2.Vec2{X: 100, Y: 100}
	return &components.SnakeData{
		Points:        []math2.Vec2{start, start},
		Heading:       heading,
		Speed:         4,
		MaxLength:     500,
		SegmentLength: 100,
		Alive:         true,
	}
}

func never() float64  { return 0 }
func always() float64 { return 1 }

func TestAdvanceSnakeMovesHead(t *testing.T) {
	tests := []struct {
		heading components.Heading
		want    math2.Vec2
	}{
		{components.HeadingRight, math2.Vec2{X: 104, Y: 100}},
		{components.HeadingLeft, math2.Vec2{X: 96, Y: 100}},
		{components.HeadingDown, math2.Vec2{X: 100, Y: 104}},
		{components.HeadingUp, math2.Vec2{X: 100, Y: 96}},
	}

	for _, tt := range tests {
		s := straightSnake(tt.heading)
		AdvanceSnake(s, testHero(), never)

		require.Len(t, s.Points, 2)
		assert.Equal(t, tt.want, s.Points[1])
		assert.Equal(t, math2.Vec2{X: 100, Y: 100}, s.Points[0])
		assert.Equal(t, 4.0, s.TotalLength)
	}
}

func TestAdvanceSnakeTurnsAtSegmentEnd(t *testing.T) {
	s := straightSnake(components.HeadingRight)
	for i := 0; i < 24; i++ {
		AdvanceSnake(s, testHero(), always)
	}
	require.Len(t, s.Points, 2)

	AdvanceSnake(s, testHero(), always)

	require.Len(t, s.Points, 3)
	assert.Equal(t, s.Points[1], s.Points[2], "turn starts a new segment at the head")
	assert.Equal(t, components.HeadingDown, s.Heading)
	assert.Equal(t, 0.0, s.SegmentTravel)
	assert.Equal(t, cfg.Snake.MinSegment+cfg.Snake.SegmentRange, s.SegmentLength)

	AdvanceSnake(s, testHero(), never)
	AdvanceSnake(s, testHero(), never)
	for s.Heading == components.HeadingDown {
		AdvanceSnake(s, testHero(), never)
	}
	assert.Equal(t, components.HeadingLeft, s.Heading)
}

func TestAdvanceSnakeTurnsOutsideHero(t *testing.T) {
	s := straightSnake(components.HeadingUp)
	s.Points = []math2.Vec2{{X: 100, Y: -18}, {X: 100, Y: -18}}
	s.SegmentLength = 1000

	AdvanceSnake(s, testHero(), always)

	assert.Len(t, s.Points, 3)
	assert.Equal(t, components.HeadingRight, s.Heading)
}

func TestAdvanceSnakeTailAndDeath(t *testing.T) {
	s := straightSnake(components.HeadingRight)
	s.SegmentLength = 1e9
	s.MaxLength = 40

	for i := 0; i < 10; i++ {
		AdvanceSnake(s, testHero(), never)
	}
	assert.Equal(t, 0.0, s.TailProgress)

	AdvanceSnake(s, testHero(), never)
	assert.InDelta(t, 4*cfg.Snake.TailCatchUp, s.TailProgress, 1e-9)

	for i := 0; i < 1000 && s.Alive; i++ {
		AdvanceSnake(s, testHero(), never)
	}
	assert.False(t, s.Alive)
	assert.GreaterOrEqual(t, s.TailProgress, s.TotalLength)
}

func TestVisiblePath(t *testing.T) {
	points := []math2.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}}

	path := VisiblePath(points, 0)
	assert.Equal(t, points, path)

	path = VisiblePath(points, 40)
	assert.Equal(t, []math2.Vec2{{X: 40, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}}, path)

	path = VisiblePath(points, 120)
	assert.Equal(t, []math2.Vec2{{X: 100, Y: 20}, {X: 100, Y: 50}}, path)

	assert.Nil(t, VisiblePath(points, 149.5))
	assert.Nil(t, VisiblePath(points[:1], 0))
}

func TestVisiblePathSkipsZeroSegments(t *testing.T) {
	points := []math2.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}}

	assert.Equal(t, []math2.Vec2{{X: 5, Y: 0}, {X: 10, Y: 0}}, VisiblePath(points, 5))
}

func TestSpawnSnakeStartsInCorner(t *testing.T) {
	w := donburi.NewWorld()
	InitHero(w, testStart, 0, 360, 1000)

	for i := 0; i < 10; i++ {
		e, ok := SpawnSnake(w)
		require.True(t, ok)
		s := components.Snake.Get(e)
		head := s.Points[len(s.Points)-1]

		assert.LessOrEqual(t, head.Y, cfg.Snake.StartMargin)
		if head.X > 500 {
			assert.GreaterOrEqual(t, head.X, 1000-cfg.Snake.StartMargin)
			assert.Contains(t, []components.Heading{components.HeadingLeft, components.HeadingDown}, s.Heading)
		} else {
			assert.LessOrEqual(t, head.X, cfg.Snake.StartMargin)
			assert.Contains(t, []components.Heading{components.HeadingRight, components.HeadingDown}, s.Heading)
		}
		assert.Contains(t, cfg.Snake.Colors, s.Color)
		assert.GreaterOrEqual(t, s.Speed, cfg.Snake.MinSpeed)
		assert.Less(t, s.Speed, cfg.Snake.MinSpeed+cfg.Snake.SpeedRange)
		assert.True(t, s.Alive)
	}
}

func TestSpawnSnakeCap(t *testing.T) {
	w := donburi.NewWorld()
	InitHero(w, testStart, 0, 360, 1000)

	for i := 0; i < cfg.Snake.MaxSnakes; i++ {
		_, ok := SpawnSnake(w)
		require.True(t, ok)
	}
	_, ok := SpawnSnake(w)
	assert.False(t, ok)
	assert.Equal(t, cfg.Snake.MaxSnakes, countTagged(w, tags.Snake))
}

func TestUpdateSnakesSchedule(t *testing.T) {
	w := donburi.NewWorld()
	UpdateClock(w, testStart)
	InitHero(w, testStart, 0, 360, 1000)
	hero := GetOrCreateHero(w)

	frame := func(d time.Duration) {
		UpdateClock(w, testStart.Add(d))
		UpdateSnakes(w)
	}

	frame(0)
	assert.Equal(t, 1, hero.InitialSpawned)
	frame(499 * time.Millisecond)
	assert.Equal(t, 1, hero.InitialSpawned)
	frame(500 * time.Millisecond)
	assert.Equal(t, 2, hero.InitialSpawned)
	frame(time.Second)
	assert.Equal(t, 3, hero.InitialSpawned)
	assert.Equal(t, 4, countTagged(w, tags.Snake), "three staggered plus the first periodic")

	for i := 1; i <= 600; i++ {
		frame(time.Second + time.Duration(i)*time.Second/60)
		require.LessOrEqual(t, CountSnakes(w), cfg.Snake.MaxSnakes)
	}
}
