package settings

import (
	"bytes"
	"testing"

	"github.com/automoto/simple-platformer/persist"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 0.7, s.MusicVolume)
	assert.Equal(t, 0.7, s.SFXVolume)
	assert.Equal(t, Resolution{Width: 1280, Height: 720, Label: "1280 x 720"}, s.Resolution())
	assert.False(t, s.Fullscreen)
}

func TestAdjustVolume_StepsAndClamps(t *testing.T) {
	s := Default()

	s.AdjustMusic(1)
	assert.Equal(t, 0.8, s.MusicVolume)

	for i := 0; i < 5; i++ {
		s.AdjustMusic(1)
	}
	assert.Equal(t, 1.0, s.MusicVolume)

	for i := 0; i < 15; i++ {
		s.AdjustSFX(-1)
	}
	assert.Equal(t, 0.0, s.SFXVolume)

	s.AdjustSFX(1)
	assert.Equal(t, 0.1, s.SFXVolume)
}

func TestCycleResolution_Toggles(t *testing.T) {
	s := Default()

	s.CycleResolution(1)
	assert.Equal(t, 1920, s.Resolution().Width)

	s.CycleResolution(1)
	assert.Equal(t, 1280, s.Resolution().Width)

	s.CycleResolution(-1)
	assert.Equal(t, 1920, s.Resolution().Width)
}

func TestToggleFullscreen(t *testing.T) {
	s := Default()
	s.ToggleFullscreen()
	assert.True(t, s.Fullscreen)
	s.ToggleFullscreen()
	assert.False(t, s.Fullscreen)
}

func TestLoadSave(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	items := persist.NewMemory()

	assert.Equal(t, Default(), Load(items, logger))

	want := Settings{MusicVolume: 0.3, SFXVolume: 1, ResolutionIndex: 1, Fullscreen: true}
	require.NoError(t, Save(items, want))
	assert.Equal(t, want, Load(items, logger))
}

func TestLoad_Normalizes(t *testing.T) {
	items := persist.NewMemory()
	require.NoError(t, items.SaveItem(ItemKey, []byte(`{"music_volume": 3, "sfx_volume": -1, "resolution_index": 9}`)))

	s := Load(items, log.New(&bytes.Buffer{}))
	assert.Equal(t, 1.0, s.MusicVolume)
	assert.Equal(t, 0.0, s.SFXVolume)
	assert.Equal(t, 0, s.ResolutionIndex)
}

func TestLoad_CorruptDefaults(t *testing.T) {
	items := persist.NewMemory()
	require.NoError(t, items.SaveItem(ItemKey, []byte("garbage")))

	assert.Equal(t, Default(), Load(items, log.New(&bytes.Buffer{})))
}
