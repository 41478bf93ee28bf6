package game

import (
	"time"

	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/settings"
)

// DeathCounter counts deaths for one playthrough.
type DeathCounter struct {
	CurrentLevel int
	Total        int
}

func (d *DeathCounter) Record() {
	d.CurrentLevel++
	d.Total++
}

// DeathComment is the remark shown after the victory death count.
func DeathComment(total int) string {
	switch {
	case total == 0:
		return " - flawless!"
	case total == 42:
		return " - the answer!"
	case total == 69:
		return " - nice"
	case total == 100:
		return " - centurion!"
	case total > 200:
		return " - respect for perseverance!"
	default:
		return ""
	}
}

// Context is the game's shared mutable state, handed to every system.
// Each field has a single writer per step.
type Context struct {
	// CurrentLevel is the 0-based level being played; LevelCount means
	// every level is finished.
	CurrentLevel int
	LevelCount   int
	LevelName    string

	Progress *progress.Tracker

	// Deaths is nil outside a playthrough.
	Deaths     *DeathCounter
	RunStarted time.Time

	Settings      settings.Settings
	SettingsDirty bool

	// SimulationRunning is the physics clock; it only runs while Playing.
	SimulationRunning bool
}
