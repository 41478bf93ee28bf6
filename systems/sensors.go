package systems

import (
	"github.com/automoto/simple-platformer/components"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSensors refreshes what the player is touching. It runs after
// collisions so the flags describe the position the step ended at.
func UpdateSensors(ecs *ecs.ECS) {
	sensor := components.Sensor.Get(getOrCreateSensor(ecs))
	*sensor = components.SensorData{}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry).Object
	box := rectOf(obj)

	if check := obj.Check(0, 0, tags.ResolvExit, tags.ResolvSpikes); check != nil {
		for _, o := range check.Objects {
			if !box.Overlaps(rectOf(o)) {
				continue
			}
			switch {
			case o.HasTags(tags.ResolvExit):
				sensor.TouchingExit = true
			case o.HasTags(tags.ResolvSpikes):
				sensor.TouchingHazard = true
			}
		}
	}

	if layout := currentLayout(ecs); layout != nil {
		sensor.OutOfBounds = obj.Y > layout.FallLimit()
	}
}

// ResetPlayer puts the player back on its spawn point with no velocity.
func ResetPlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	obj.X, obj.Y = player.SpawnX, player.SpawnY
	physics.SpeedX, physics.SpeedY, physics.AccelX = 0, 0, 0
	physics.OnGround = nil
	obj.Update()

	*components.Sensor.Get(getOrCreateSensor(ecs)) = components.SensorData{}
}

// Probe answers the interaction resolver's questions about one world.
type Probe struct {
	ecs *ecs.ECS
}

func NewProbe(ecs *ecs.ECS) *Probe {
	return &Probe{ecs: ecs}
}

func (p *Probe) PlayerPresent() bool {
	_, ok := tags.Player.First(p.ecs.World)
	return ok
}

func (p *Probe) TouchingExit() bool {
	return p.sensor().TouchingExit
}

func (p *Probe) TouchingHazard() bool {
	return p.sensor().TouchingHazard
}

func (p *Probe) OutOfBounds() bool {
	return p.sensor().OutOfBounds
}

func (p *Probe) RespawnPlayer() {
	ResetPlayer(p.ecs)
}

func (p *Probe) sensor() components.SensorData {
	entry, ok := components.Sensor.First(p.ecs.World)
	if !ok {
		return components.SensorData{}
	}
	return *components.Sensor.Get(entry)
}

func getOrCreateSensor(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Sensor.First(e.World); ok {
		return entry
	}
	return e.World.Entry(e.World.Create(components.Sensor))
}

func currentLayout(e *ecs.ECS) *level.Layout {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Layout
}

func rectOf(o *resolv.Object) level.Rect {
	return level.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
