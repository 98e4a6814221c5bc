package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SpawnerData is a singleton tracking bug spawn timing
type SpawnerData struct {
	LastSpawn   time.Time
	InitialAt   time.Time // one-off spawn shortly after start
	InitialDone bool
}

var Spawner = donburi.NewComponentType[SpawnerData]()
