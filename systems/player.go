package systems

import (
	"github.com/automoto/simple-platformer/components"
	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	in := currentInput(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		handlePlayerInput(in, components.Player.Get(e), components.Physics.Get(e))
	})
}

func handlePlayerInput(in *input.State, player *components.PlayerData, physics *components.PhysicsData) {
	physics.AccelX = 0
	if in.Pressed(input.ActionLeft) {
		physics.AccelX -= physics.Acceleration
	}
	if in.Pressed(input.ActionRight) {
		physics.AccelX += physics.Acceleration
	}
	if physics.AccelX != 0 {
		player.Facing = sign(physics.AccelX)
	}
	physics.SpeedX += physics.AccelX

	// Only a fresh press jumps, holding the key does not bounce.
	if in.JustPressed(input.ActionJump) && physics.OnGround != nil {
		physics.SpeedY = -player.JumpSpeed
		physics.OnGround = nil
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
