package systems

import (
	"math"

	"github.com/automoto/simple-platformer/components"
	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	layout := currentLayout(e)
	if layout == nil {
		return
	}

	playerObject := components.Object.Get(playerEntry)
	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	targetX = clampAxis(targetX, float64(config.C.Width), layout.Width)
	targetY = clampAxis(targetY, float64(config.C.Height), layout.Height)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside the level, or centers it when the level
// is smaller than the screen along that axis.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
