package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreData is a singleton counting consumed bugs
type ScoreData struct {
	Eaten                int
	Lifetime             int  // Eaten plus the total loaded from disk
	ReinforcementSpawned bool // The second actor appears only once

	// Counter pop effect, nil when idle
	Pop      *gween.Tween
	PopScale float32
}

var Score = donburi.NewComponentType[ScoreData]()
