package factory

import (
	"github.com/automoto/simple-platformer/archetypes"
	"github.com/automoto/simple-platformer/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera already looking at x, y so the first
// frame does not pan in from the origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: math.NewVec2(x, y)})
}
