package systems

import (
	"math"

	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float drift after snapping against a surface.
const contactEpsilon = 0.01

// UpdateCollisions moves the player by its speed, stopping at solids and at
// the left and right edges of the level.
func UpdateCollisions(ecs *ecs.ECS) {
	width := math.Inf(1)
	if layout := currentLayout(ecs); layout != nil {
		width = layout.Width
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object, width)
		resolveVerticalCollision(physics, obj.Object)
	})
}

// resolveHorizontalCollision uses the space as a broadphase and then sweeps
// against the solids that share rows with the object.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, width float64) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		right := object.X + object.W
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsVertically(object, solid) {
				continue
			}
			if dx > 0 && solid.X >= right-contactEpsilon {
				dx = math.Min(dx, solid.X-right)
			} else if dx < 0 && solid.X+solid.W <= object.X+contactEpsilon {
				dx = math.Max(dx, solid.X+solid.W-object.X)
			}
		}
		if dx != physics.SpeedX {
			physics.SpeedX = 0
		}
	}

	object.X += dx
	if object.X < 0 {
		object.X = 0
		physics.SpeedX = 0
	} else if object.X+object.W > width {
		object.X = width - object.W
		physics.SpeedX = 0
	}
}

// resolveVerticalCollision lands the object on the nearest solid below or
// stops it under the nearest solid above. A solid within the ground probe
// below the feet counts as standing on it.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance += cfg.Physics.GroundProbe
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	bottom := object.Y + object.H
	hitCeiling := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}

		if dy >= 0 && solid.Y >= bottom-contactEpsilon {
			gap := solid.Y - bottom
			if gap <= checkDistance {
				physics.OnGround = solid
				dy = math.Min(dy, gap)
			}
		} else if dy < 0 && solid.Y+solid.H <= object.Y+contactEpsilon {
			gap := solid.Y + solid.H - object.Y
			if gap > dy {
				dy = gap
				hitCeiling = true
			}
		}
	}

	if physics.OnGround != nil || hitCeiling {
		physics.SpeedY = 0
	}
	object.Y += dy
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y+contactEpsilon && a.Y < b.Y+b.H-contactEpsilon
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X+contactEpsilon && a.X < b.X+b.W-contactEpsilon
}
