package systems

import (
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		applyPhysics(components.Physics.Get(e))
	})
}

func applyPhysics(physics *components.PhysicsData) {
	// Friction only brakes when nothing is pushing.
	if physics.AccelX == 0 {
		friction := physics.Friction
		if physics.SpeedX > friction {
			physics.SpeedX -= friction
		} else if physics.SpeedX < -friction {
			physics.SpeedX += friction
		} else {
			physics.SpeedX = 0
		}
	}

	if physics.SpeedX > physics.MaxSpeed {
		physics.SpeedX = physics.MaxSpeed
	} else if physics.SpeedX < -physics.MaxSpeed {
		physics.SpeedX = -physics.MaxSpeed
	}

	physics.SpeedY += physics.Gravity
	if physics.SpeedY > cfg.Physics.MaxFallSpeed {
		physics.SpeedY = cfg.Physics.MaxFallSpeed
	} else if physics.SpeedY < cfg.Physics.MaxRiseSpeed {
		physics.SpeedY = cfg.Physics.MaxRiseSpeed
	}
}
