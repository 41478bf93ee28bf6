package systems

import (
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads the keyboard and gamepads and advances state by one frame.
// It runs once per tick before the game core sees the input.
func PollInput(state *input.State) {
	var pressed [input.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[action] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[action] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(gamepadIDs)
	pressed[input.ActionLeft] = pressed[input.ActionLeft] || left
	pressed[input.ActionRight] = pressed[input.ActionRight] || right
	pressed[input.ActionUp] = pressed[input.ActionUp] || up
	pressed[input.ActionDown] = pressed[input.ActionDown] || down

	state.Advance(pressed)
}

// analogStickState reads the left stick of every gamepad past the deadzone.
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return left, right, up, down
}

// SetInput hands the step's input to the world systems.
func SetInput(e *ecs.ECS, state *input.State) {
	components.Input.Get(getOrCreateInput(e)).State = state
}

// currentInput returns the step's input, or an idle state if none was set.
func currentInput(e *ecs.ECS) *input.State {
	data := components.Input.Get(getOrCreateInput(e))
	if data.State == nil {
		data.State = &input.State{}
	}
	return data.State
}

func getOrCreateInput(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Input.First(e.World); ok {
		return entry
	}
	return e.World.Entry(e.World.Create(components.Input))
}
