package game

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/settings"
)

const (
	firstLevelYAML  = "name: First\nspawn: [0, 1]\nexit: [4, 1]\ntiles:\n  - {x: 0, y: 0, kind: Platform}\n"
	editedLevelYAML = "name: Edited\nspawn: [1, 1]\nexit: [5, 1]\ntiles:\n  - {x: 1, y: 0, kind: Platform}\n"
)

type recordingStage struct {
	fakeProbe
	descs []level.Description
}

func (s *recordingStage) Load(desc level.Description) {
	s.fakeProbe.Load(desc)
	s.descs = append(s.descs, desc)
}

func (s *recordingStage) Probe() Probe { return &s.fakeProbe }

func newDiskGame(t *testing.T, fsys fstest.MapFS) (*Game, *recordingStage) {
	t.Helper()
	loader, err := level.NewLoader(fsys)
	require.NoError(t, err)

	items := persist.NewMemory()
	stage := &recordingStage{}
	g := New(Config{
		Levels:   loader,
		Stage:    stage,
		Items:    items,
		Progress: progress.NewTracker(items, quietLogger()),
		Settings: settings.Default(),
		Logger:   quietLogger(),
	})
	require.NoError(t, g.Update(input.Press(input.ActionConfirm)))
	require.Equal(t, StatePlaying, g.State())
	return g, stage
}

func TestGame_ReloadPicksUpEditedFile(t *testing.T) {
	fsys := fstest.MapFS{"01.yaml": {Data: []byte(firstLevelYAML)}}
	g, stage := newDiskGame(t, fsys)

	fsys["01.yaml"] = &fstest.MapFile{Data: []byte(editedLevelYAML)}
	require.NoError(t, g.ReloadLevel())
	require.NoError(t, g.Update(&input.State{}))
	require.NoError(t, g.Update(&input.State{}))

	assert.Equal(t, StatePlaying, g.State())
	require.Len(t, stage.descs, 2)
	assert.Equal(t, "Edited", stage.descs[1].Name)
	assert.Equal(t, "Edited", g.Context().LevelName)
}

func TestGame_ReloadOfBrokenFileKeepsRunningLevel(t *testing.T) {
	fsys := fstest.MapFS{"01.yaml": {Data: []byte(firstLevelYAML)}}
	g, stage := newDiskGame(t, fsys)

	fsys["01.yaml"] = &fstest.MapFile{Data: []byte("spawn: [0, 1\n")}

	assert.NotPanics(t, func() {
		assert.Error(t, g.ReloadLevel())
		require.NoError(t, g.Update(&input.State{}))
		require.NoError(t, g.Update(&input.State{}))
	})
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 1, stage.loads)
	assert.Zero(t, stage.unloads)
}

func TestGame_ReloadOfDeletedFileKeepsRunningLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"01.yaml": {Data: []byte(firstLevelYAML)},
		"02.yaml": {Data: []byte(editedLevelYAML)},
	}
	g, stage := newDiskGame(t, fsys)
	require.Equal(t, 2, g.Context().LevelCount)

	delete(fsys, "01.yaml")
	delete(fsys, "02.yaml")

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, g.ReloadLevel(), level.ErrNoLevels)
		require.NoError(t, g.Update(&input.State{}))
	})
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 1, stage.loads)
	assert.Equal(t, 2, g.Context().LevelCount)
}

func TestGame_ReloadRescansLevelCount(t *testing.T) {
	fsys := fstest.MapFS{"01.yaml": {Data: []byte(firstLevelYAML)}}
	g, _ := newDiskGame(t, fsys)
	require.Equal(t, 1, g.Context().LevelCount)

	fsys["02.yaml"] = &fstest.MapFile{Data: []byte(editedLevelYAML)}
	require.NoError(t, g.ReloadLevel())

	assert.Equal(t, 2, g.Context().LevelCount)
}

func TestGame_ReloadOutsidePlayingIsIgnored(t *testing.T) {
	h := newHarness(t, 2, nil)

	assert.NoError(t, h.game.ReloadLevel())
	h.idle(t)

	assert.Equal(t, StateMenu, h.game.State())
	assert.Empty(t, h.levels.loads)
}
