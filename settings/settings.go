// Package settings holds the player's audio and display preferences.
package settings

import (
	"math"

	"github.com/automoto/simple-platformer/persist"
	"github.com/charmbracelet/log"
)

// ItemKey is the name of the settings document in the app data directory.
const ItemKey = "settings.json"

// VolumeStep is how much one Left/Right press changes a volume.
const VolumeStep = 0.1

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// Resolutions are the supported window sizes, in toggle order.
var Resolutions = []Resolution{
	{Width: 1280, Height: 720, Label: "1280 x 720"},
	{Width: 1920, Height: 1080, Label: "1920 x 1080"},
}

// Settings is both the in-memory value and the persisted document.
type Settings struct {
	MusicVolume     float64 `json:"music_volume"`
	SFXVolume       float64 `json:"sfx_volume"`
	ResolutionIndex int     `json:"resolution_index"`
	Fullscreen      bool    `json:"fullscreen"`
}

func Default() Settings {
	return Settings{
		MusicVolume:     0.7,
		SFXVolume:       0.7,
		ResolutionIndex: 0,
		Fullscreen:      false,
	}
}

// Applier pushes settings into the running engine (window size, fullscreen).
type Applier interface {
	Apply(s Settings)
}

func (s Settings) Resolution() Resolution {
	return Resolutions[s.normalizedIndex()]
}

// AdjustMusic moves the music volume one step in direction (-1 or +1).
func (s *Settings) AdjustMusic(direction int) {
	s.MusicVolume = stepVolume(s.MusicVolume, direction)
}

// AdjustSFX moves the sound effect volume one step in direction.
func (s *Settings) AdjustSFX(direction int) {
	s.SFXVolume = stepVolume(s.SFXVolume, direction)
}

// CycleResolution switches to the next preset.
func (s *Settings) CycleResolution(direction int) {
	n := len(Resolutions)
	s.ResolutionIndex = ((s.normalizedIndex()+direction)%n + n) % n
}

func (s *Settings) ToggleFullscreen() {
	s.Fullscreen = !s.Fullscreen
}

// Normalized clamps every field into its valid range.
func (s Settings) Normalized() Settings {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SFXVolume = clampVolume(s.SFXVolume)
	s.ResolutionIndex = s.normalizedIndex()
	return s
}

func (s Settings) normalizedIndex() int {
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(Resolutions) {
		return 0
	}
	return s.ResolutionIndex
}

func stepVolume(v float64, direction int) float64 {
	v += float64(direction) * VolumeStep
	return clampVolume(math.Round(v*10) / 10)
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Load reads saved settings, falling back to defaults when they are missing
// or unreadable.
func Load(items persist.ItemStore, logger *log.Logger) Settings {
	s := Default()
	found, err := persist.LoadJSON(items, ItemKey, &s)
	switch {
	case err != nil:
		logger.Warn("settings file unreadable, using defaults", "err", err)
		return Default()
	case !found:
		logger.Debug("no settings file, using defaults")
		return Default()
	}
	return s.Normalized()
}

// Save writes settings synchronously.
func Save(items persist.ItemStore, s Settings) error {
	return persist.SaveJSON(items, ItemKey, s.Normalized())
}
