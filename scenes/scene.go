package scenes

import (
	"github.com/automoto/clawd/systems"
	"github.com/yohamta/donburi/ecs"
)

// worldSystem adapts a world-level system to the ECS scheduler.
func worldSystem(s systems.System) ecs.System {
	return func(e *ecs.ECS) {
		s(e.World)
	}
}
