package systems

import (
	cfg "github.com/automoto/clawd/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// RecordEaten counts one consumption and starts the counter pop.
func RecordEaten(w donburi.World) {
	score := GetOrCreateScore(w)
	score.Eaten++
	score.Lifetime++
	score.Pop = gween.New(float32(cfg.Overlay.PopScale), 1, cfg.Overlay.PopDuration, ease.OutQuad)
	score.PopScale = float32(cfg.Overlay.PopScale)

	SaveLifetimeScore(score.Lifetime)
}

// UpdateScore advances the counter pop by the frame delta.
func UpdateScore(w donburi.World) {
	score := GetOrCreateScore(w)
	if score.Pop == nil {
		return
	}

	dt := float32(GetOrCreateClock(w).Delta.Seconds())
	scale, done := score.Pop.Update(dt)
	score.PopScale = scale
	if done {
		score.Pop = nil
		score.PopScale = 1
	}
}
