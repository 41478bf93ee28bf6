package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/settings"
)

func TestGame_ClickYesResetsAndPersists(t *testing.T) {
	items := withProgress(t, 3)
	h := newHarness(t, 5, items)
	before := items.Writes(progress.ItemKey)

	openReset(t, h)
	h.game.AnswerReset(ChoiceYes)

	assert.Equal(t, 0, h.game.Context().Progress.MaxUnlocked())
	assert.Equal(t, before+1, items.Writes(progress.ItemKey))
	assert.Equal(t, 0, progress.Load(items, quietLogger()).MaxUnlockedLevel)
	assert.Equal(t, ModeNormal, h.game.settingsView.Mode())

	h.idle(t)
	assert.Equal(t, StateSettings, h.game.State())
}

func TestGame_ClickNoDoesNotWrite(t *testing.T) {
	items := withProgress(t, 3)
	h := newHarness(t, 5, items)
	before := items.Writes(progress.ItemKey)

	openReset(t, h)
	h.game.AnswerReset(ChoiceNo)

	assert.Equal(t, 3, h.game.Context().Progress.MaxUnlocked())
	assert.Equal(t, before, items.Writes(progress.ItemKey))
	assert.Equal(t, ModeNormal, h.game.settingsView.Mode())
	assert.Nil(t, h.game.SettingsView().Dialog)
}

func TestGame_AnswerWithoutDialogIsIgnored(t *testing.T) {
	items := withProgress(t, 3)
	h := newHarness(t, 5, items)
	before := items.Writes(progress.ItemKey)

	h.game.AnswerReset(ChoiceYes)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)
	require.Equal(t, StateSettings, h.game.State())
	h.game.AnswerReset(ChoiceYes)

	assert.Equal(t, 3, h.game.Context().Progress.MaxUnlocked())
	assert.Equal(t, before, items.Writes(progress.ItemKey))
}

func TestGame_ClickSettingsRows(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionDown)
	h.step(t, input.ActionConfirm)
	require.Equal(t, StateSettings, h.game.State())

	h.game.ActivateSetting(int(RowWindow))
	last := h.applier.applied[len(h.applier.applied)-1]
	assert.True(t, last.Fullscreen)
	assert.True(t, h.game.Context().SettingsDirty)

	h.game.ActivateSetting(int(RowSave))
	assert.Equal(t, 1, h.items.Writes(settings.ItemKey))
	assert.False(t, h.game.Context().SettingsDirty)

	h.game.ActivateSetting(int(RowBack))
	h.idle(t)
	assert.Equal(t, StateMenu, h.game.State())
}

func TestGame_ClickPauseRows(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.startPlaying(t)

	h.game.ActivatePause(int(PauseSettings))
	h.idle(t)
	require.Equal(t, StatePlaying, h.game.State())

	h.step(t, input.ActionBack)
	require.Equal(t, StatePaused, h.game.State())

	h.game.ActivatePause(int(PauseSettings))
	h.idle(t)
	require.Equal(t, StateSettings, h.game.State())
	assert.Equal(t, OriginPaused, h.game.Origin())

	h.step(t, input.ActionBack)
	require.Equal(t, StatePaused, h.game.State())

	h.game.ActivatePause(int(PauseResume))
	h.idle(t)
	assert.Equal(t, StatePlaying, h.game.State())
}

func TestGame_HoverSelectsRow(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.startPlaying(t)
	h.step(t, input.ActionBack)
	require.Equal(t, StatePaused, h.game.State())

	h.game.HoverRow(int(PauseMainMenu))
	assert.Equal(t, int(PauseMainMenu), h.game.PauseView().Selected)

	h.step(t, input.ActionConfirm)
	assert.Equal(t, StateMenu, h.game.State())

	h.game.HoverRow(int(MenuExit))
	assert.Zero(t, h.game.MenuView().Selected)
}
