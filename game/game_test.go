package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/settings"
)

func withProgress(t *testing.T, maxUnlocked int) *persist.Memory {
	t.Helper()
	items := persist.NewMemory()
	require.NoError(t, progress.Save(items, progress.Progress{MaxUnlockedLevel: maxUnlocked}))
	return items
}

// pickLevel opens the level select from the menu and confirms on row.
func (h *harness) pickLevel(t *testing.T, row int) {
	t.Helper()
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)
	require.Equal(t, StateLevelSelect, h.game.State())
	for i := 0; i < row; i++ {
		h.step(t, input.ActionDown)
	}
	h.step(t, input.ActionConfirm)
}

func TestGame_FreshInstallShowsOnlyFirstLevel(t *testing.T) {
	h := newHarness(t, 5, nil)

	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)
	require.Equal(t, StateLevelSelect, h.game.State())

	v := h.game.LevelSelectView()
	require.Len(t, v.Rows, 6)
	assert.False(t, v.Rows[0].Locked)
	for _, row := range v.Rows[1:5] {
		assert.True(t, row.Locked, row.Label)
	}
}

func TestGame_LockedPickIsNoop(t *testing.T) {
	h := newHarness(t, 3, nil)

	h.pickLevel(t, 1)
	assert.Equal(t, StateLevelSelect, h.game.State())

	h.game.SelectLevel(2)
	h.idle(t)
	assert.Equal(t, StateLevelSelect, h.game.State())
	assert.Zero(t, h.stage.loads)
}

func TestGame_ClickPicksUnlockedLevel(t *testing.T) {
	h := newHarness(t, 3, withProgress(t, 2))
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)

	h.game.SelectLevel(2)
	h.idle(t)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, 2, h.game.Context().CurrentLevel)
	assert.Equal(t, []int{2}, h.levels.loads)
}

func TestGame_LevelSelectBack(t *testing.T) {
	h := newHarness(t, 3, nil)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)

	h.step(t, input.ActionBack)

	assert.Equal(t, StateMenu, h.game.State())
}

func TestGame_ExitAdvancesThroughTransition(t *testing.T) {
	h := newHarness(t, 5, withProgress(t, 2))
	h.pickLevel(t, 2)
	require.Equal(t, StatePlaying, h.game.State())

	h.stage.exit = true
	h.idle(t)

	assert.Equal(t, StateLevelTransition, h.game.State())
	assert.Equal(t, 3, h.game.Context().CurrentLevel)
	assert.Equal(t, 3, h.game.Context().Progress.MaxUnlocked())
	assert.Equal(t, 1, h.stage.unloads)

	h.idle(t)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, []int{2, 3}, h.levels.loads)
	assert.Equal(t, "level 3", h.game.Context().LevelName)
	assert.Equal(t, 2, h.stage.loads)
}

func TestGame_VictoryShowsAndDiscardsDeaths(t *testing.T) {
	h := newHarness(t, 5, withProgress(t, 4))
	h.pickLevel(t, 4)
	require.Equal(t, StatePlaying, h.game.State())

	h.stage.hazard = true
	h.idle(t)
	h.stage.hazard = true
	h.idle(t)
	h.clock = h.clock.Add(95 * time.Second)
	h.stage.exit = true
	h.idle(t)

	require.Equal(t, StateVictory, h.game.State())
	v := h.game.VictoryView()
	assert.Equal(t, "You died: 2", v.Lines[0])
	assert.Contains(t, v.Lines, "Time: 1:35")
	require.Len(t, h.records.saved, 1)
	assert.Equal(t, 2, h.records.saved[0].Deaths)
	assert.Equal(t, 5, h.records.saved[0].Levels)

	h.step(t, input.ActionConfirm)

	assert.Equal(t, StateMenu, h.game.State())
	assert.Nil(t, h.game.Context().Deaths)
}

func TestGame_FlawlessVictory(t *testing.T) {
	h := newHarness(t, 1, nil)
	h.startPlaying(t)

	h.stage.exit = true
	h.idle(t)

	require.Equal(t, StateVictory, h.game.State())
	assert.Equal(t, "You died: 0 - flawless!", h.game.VictoryView().Lines[0])
}

func TestGame_PlayAfterVictoryRestarts(t *testing.T) {
	h := newHarness(t, 1, nil)
	h.startPlaying(t)
	h.stage.exit = true
	h.idle(t)
	h.step(t, input.ActionConfirm)
	require.Equal(t, 1, h.game.Context().CurrentLevel)

	h.step(t, input.ActionConfirm)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, 0, h.game.Context().CurrentLevel)
}

func TestGame_SpikesRespawnAndCount(t *testing.T) {
	h := newHarness(t, 5, nil)
	h.startPlaying(t)

	h.stage.hazard = true
	h.idle(t)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, OutcomeDied, h.game.LastOutcome())
	assert.Equal(t, 1, h.stage.respawns)
	assert.Equal(t, DeathCounter{CurrentLevel: 1, Total: 1}, *h.game.Context().Deaths)
	hud := h.game.HUD()
	assert.Equal(t, 1, hud.LevelNumber)
	assert.Equal(t, 1, hud.TotalDeaths)
}

func TestGame_DeathCounterLifecycle(t *testing.T) {
	h := newHarness(t, 5, nil)
	assert.Nil(t, h.game.Context().Deaths)
	h.startPlaying(t)
	require.NotNil(t, h.game.Context().Deaths)

	h.stage.hazard = true
	h.idle(t)
	h.stage.exit = true
	h.idle(t)
	assert.Equal(t, DeathCounter{CurrentLevel: 0, Total: 1}, *h.game.Context().Deaths)
	h.idle(t)

	h.step(t, input.ActionBack)
	require.Equal(t, StatePaused, h.game.State())
	h.step(t, input.ActionBack)
	require.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, 1, h.game.Context().Deaths.Total)

	h.step(t, input.ActionBack)
	h.step(t, input.ActionUp)
	h.step(t, input.ActionConfirm)

	assert.Equal(t, StateMenu, h.game.State())
	assert.Nil(t, h.game.Context().Deaths)
}

func TestGame_SimulationOnlyRunsWhilePlaying(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.idle(t)
	assert.Zero(t, h.stage.steps)

	h.startPlaying(t)
	assert.True(t, h.game.Context().SimulationRunning)
	h.idle(t)
	h.idle(t)
	assert.Equal(t, 2, h.stage.steps)

	h.step(t, input.ActionBack)
	require.Equal(t, StatePaused, h.game.State())
	assert.False(t, h.game.Context().SimulationRunning)
	assert.False(t, h.stage.loaded)
	h.idle(t)
	assert.Equal(t, 2, h.stage.steps)
}

func TestGame_ResumeRebuildsLevel(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.startPlaying(t)

	h.step(t, input.ActionBack)
	h.step(t, input.ActionConfirm)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, 2, h.stage.loads)
	assert.True(t, h.stage.loaded)
}

func TestGame_SettingsReturnToOrigin(t *testing.T) {
	t.Run("menu", func(t *testing.T) {
		h := newHarness(t, 2, nil)
		h.step(t, input.ActionDown)
		h.step(t, input.ActionDown)
		h.step(t, input.ActionConfirm)
		require.Equal(t, StateSettings, h.game.State())
		assert.Equal(t, OriginMenu, h.game.Origin())

		h.step(t, input.ActionBack)
		assert.Equal(t, StateMenu, h.game.State())
	})

	t.Run("paused", func(t *testing.T) {
		h := newHarness(t, 2, nil)
		h.startPlaying(t)
		h.step(t, input.ActionBack)
		h.step(t, input.ActionDown)
		h.step(t, input.ActionConfirm)
		require.Equal(t, StateSettings, h.game.State())
		assert.Equal(t, OriginPaused, h.game.Origin())

		h.step(t, input.ActionUp)
		h.step(t, input.ActionConfirm)
		assert.Equal(t, StatePaused, h.game.State())
		assert.NotNil(t, h.game.Context().Deaths)
	})
}

// openReset goes Menu -> Settings and activates Reset Progress.
func openReset(t *testing.T, h *harness) {
	t.Helper()
	h.step(t, input.ActionDown)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)
	require.Equal(t, StateSettings, h.game.State())
	h.step(t, input.ActionUp)
	h.step(t, input.ActionUp)
	h.step(t, input.ActionConfirm)
	require.Equal(t, ModeConfirmingReset, h.game.settingsView.Mode())
}

func TestGame_ResetCancelledDoesNotWrite(t *testing.T) {
	items := withProgress(t, 3)
	h := newHarness(t, 5, items)
	before := items.Writes(progress.ItemKey)

	openReset(t, h)
	h.step(t, input.ActionConfirm)

	assert.Equal(t, 3, h.game.Context().Progress.MaxUnlocked())
	assert.Equal(t, before, items.Writes(progress.ItemKey))
	assert.Equal(t, StateSettings, h.game.State())
}

func TestGame_ResetConfirmedPersists(t *testing.T) {
	items := withProgress(t, 3)
	h := newHarness(t, 5, items)
	before := items.Writes(progress.ItemKey)

	openReset(t, h)
	h.step(t, input.ActionLeft)
	h.step(t, input.ActionConfirm)

	assert.Equal(t, 0, h.game.Context().Progress.MaxUnlocked())
	assert.Equal(t, before+1, items.Writes(progress.ItemKey))
	assert.Equal(t, 0, progress.Load(items, quietLogger()).MaxUnlockedLevel)
}

func TestGame_SettingsApplyImmediatelyAndSaveOnRequest(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)

	h.step(t, input.ActionRight)

	assert.True(t, h.game.Context().SettingsDirty)
	last := h.applier.applied[len(h.applier.applied)-1]
	assert.InDelta(t, 0.8, last.MusicVolume, 1e-9)
	assert.Zero(t, h.items.Writes(settings.ItemKey))

	for i := 0; i < 4; i++ {
		h.step(t, input.ActionDown)
	}
	h.step(t, input.ActionConfirm)

	assert.False(t, h.game.Context().SettingsDirty)
	assert.Equal(t, 1, h.items.Writes(settings.ItemKey))
	assert.InDelta(t, 0.8, settings.Load(h.items, quietLogger()).MusicVolume, 1e-9)
}

func TestGame_ReloadKeepsDeaths(t *testing.T) {
	h := newHarness(t, 3, nil)
	h.startPlaying(t)
	h.stage.hazard = true
	h.idle(t)

	require.NoError(t, h.game.ReloadLevel())
	h.idle(t)
	require.Equal(t, StateLevelTransition, h.game.State())
	h.idle(t)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, 0, h.game.Context().CurrentLevel)
	assert.Equal(t, 1, h.game.Context().Deaths.Total)
	assert.Equal(t, 1, h.game.Context().Deaths.CurrentLevel)
	assert.Equal(t, 1, h.game.HUD().LevelDeaths)
	assert.Equal(t, 2, h.stage.loads)
}

func TestGame_ClearingLevelResetsLevelDeaths(t *testing.T) {
	h := newHarness(t, 3, nil)
	h.startPlaying(t)
	h.stage.hazard = true
	h.idle(t)
	require.Equal(t, 1, h.game.Context().Deaths.CurrentLevel)

	h.stage.exit = true
	h.idle(t)
	h.idle(t)

	assert.Equal(t, StatePlaying, h.game.State())
	assert.Equal(t, 1, h.game.Context().CurrentLevel)
	assert.Zero(t, h.game.Context().Deaths.CurrentLevel)
	assert.Equal(t, 1, h.game.Context().Deaths.Total)
}

func TestGame_ExitFromMenuQuits(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.step(t, input.ActionUp)

	err := h.game.Update(input.Press(input.ActionConfirm))

	assert.ErrorIs(t, err, ErrQuit)
}
