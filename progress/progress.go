// Package progress tracks which levels the player has unlocked and keeps
// that record in durable storage.
package progress

import (
	"github.com/automoto/simple-platformer/persist"
	"github.com/charmbracelet/log"
)

// ItemKey is the name of the progress document in the app data directory.
const ItemKey = "save.json"

// Progress is the persisted document.
type Progress struct {
	MaxUnlockedLevel int `json:"max_unlocked_level"`
}

// Load reads progress from items. A missing document yields the default
// silently; a malformed one yields the default with a warning.
func Load(items persist.ItemStore, logger *log.Logger) Progress {
	var p Progress
	found, err := persist.LoadJSON(items, ItemKey, &p)
	switch {
	case err != nil:
		logger.Warn("progress file unreadable, starting fresh", "err", err)
		return Progress{}
	case !found:
		logger.Debug("no progress file, starting fresh")
		return Progress{}
	}
	if p.MaxUnlockedLevel < 0 {
		logger.Warn("progress file has negative level, starting fresh", "level", p.MaxUnlockedLevel)
		return Progress{}
	}
	return p
}

// Save writes progress synchronously.
func Save(items persist.ItemStore, p Progress) error {
	return persist.SaveJSON(items, ItemKey, p)
}

// Tracker owns the player's progress for the session. It is the only writer
// of MaxUnlockedLevel and persists on every change.
type Tracker struct {
	items    persist.ItemStore
	logger   *log.Logger
	progress Progress
}

// NewTracker loads the stored progress.
func NewTracker(items persist.ItemStore, logger *log.Logger) *Tracker {
	return &Tracker{
		items:    items,
		logger:   logger,
		progress: Load(items, logger),
	}
}

func (t *Tracker) MaxUnlocked() int {
	return t.progress.MaxUnlockedLevel
}

func (t *Tracker) IsUnlocked(level int) bool {
	return level >= 0 && level <= t.progress.MaxUnlockedLevel
}

// Unlock raises the maximum to level and saves it. Levels at or below the
// current maximum are ignored without touching storage. It reports whether
// the maximum changed.
func (t *Tracker) Unlock(level int) bool {
	if level <= t.progress.MaxUnlockedLevel {
		return false
	}
	t.progress.MaxUnlockedLevel = level
	t.logger.Info("level unlocked", "level", level)
	t.save()
	return true
}

// Reset forgets all progress and saves the cleared state.
func (t *Tracker) Reset() {
	t.progress = Progress{}
	t.logger.Info("progress reset")
	t.save()
}

// save keeps the in-memory value authoritative when the write fails.
func (t *Tracker) save() {
	if err := Save(t.items, t.progress); err != nil {
		t.logger.Warn("could not save progress", "err", err)
	}
}
