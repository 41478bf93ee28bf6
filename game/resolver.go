package game

// Probe is the overlap capability the physics layer exposes to the game.
// Answers reflect the current simulation step.
type Probe interface {
	PlayerPresent() bool
	TouchingExit() bool
	TouchingHazard() bool
	OutOfBounds() bool
	// RespawnPlayer moves the player to the spawn point with zero velocity.
	RespawnPlayer()
}

// Outcome is what the resolver did this step.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeLevelCleared
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "Died"
	case OutcomeLevelCleared:
		return "LevelCleared"
	case OutcomeVictory:
		return "Victory"
	default:
		return "None"
	}
}

// Resolve runs the exit check and then the hazard check for one step. The
// first match wins, so an exit reached while touching spikes still counts
// as cleared. A missing player is not an error.
func Resolve(ctx *Context, m *Machine, probe Probe) Outcome {
	if probe == nil || !probe.PlayerPresent() {
		return OutcomeNone
	}

	if probe.TouchingExit() {
		ctx.CurrentLevel++
		ctx.Progress.Unlock(ctx.CurrentLevel)
		if ctx.CurrentLevel < ctx.LevelCount {
			_ = m.Request(StateLevelTransition)
			return OutcomeLevelCleared
		}
		_ = m.Request(StateVictory)
		return OutcomeVictory
	}

	if probe.TouchingHazard() || probe.OutOfBounds() {
		probe.RespawnPlayer()
		if ctx.Deaths == nil {
			ctx.Deaths = &DeathCounter{}
		}
		ctx.Deaths.Record()
		return OutcomeDied
	}

	return OutcomeNone
}
