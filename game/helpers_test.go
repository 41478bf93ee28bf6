package game

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/records"
	"github.com/automoto/simple-platformer/settings"
)

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

type fakeLevels struct {
	descs []level.Description
	loads []int
}

func newFakeLevels(n int) *fakeLevels {
	l := &fakeLevels{}
	for i := 0; i < n; i++ {
		l.descs = append(l.descs, level.Description{
			Name:  fmt.Sprintf("level %d", i),
			Spawn: level.Point{X: 0, Y: 1},
			Exit:  level.Point{X: 4, Y: 1},
			Tiles: []level.Tile{{X: 0, Y: 0, Kind: level.Platform}},
		})
	}
	return l
}

func (l *fakeLevels) Count() int { return len(l.descs) }

func (l *fakeLevels) MustLoad(i int) level.Description {
	l.loads = append(l.loads, i)
	return l.descs[i]
}

func (l *fakeLevels) Names() []string {
	names := make([]string, len(l.descs))
	for i, d := range l.descs {
		names[i] = d.Name
	}
	return names
}

// fakeProbe is both the Stage and its Probe.
type fakeProbe struct {
	loaded   bool
	loads    int
	unloads  int
	steps    int
	present  bool
	exit     bool
	hazard   bool
	out      bool
	respawns int
}

func (p *fakeProbe) Load(level.Description) {
	p.loaded = true
	p.loads++
	p.present = true
}

func (p *fakeProbe) Unload() {
	p.loaded = false
	p.unloads++
	p.present = false
	p.exit, p.hazard, p.out = false, false, false
}

func (p *fakeProbe) Step(*input.State) { p.steps++ }
func (p *fakeProbe) Probe() Probe      { return p }

func (p *fakeProbe) PlayerPresent() bool  { return p.present }
func (p *fakeProbe) TouchingExit() bool   { return p.exit }
func (p *fakeProbe) TouchingHazard() bool { return p.hazard }
func (p *fakeProbe) OutOfBounds() bool    { return p.out }

func (p *fakeProbe) RespawnPlayer() {
	p.respawns++
	p.hazard = false
	p.out = false
}

type fakeApplier struct {
	applied []settings.Settings
}

func (a *fakeApplier) Apply(s settings.Settings) { a.applied = append(a.applied, s) }

type fakeRecords struct {
	saved []records.Run
}

func (r *fakeRecords) Save(run records.Run) (int64, error) {
	r.saved = append(r.saved, run)
	return int64(len(r.saved)), nil
}

func (r *fakeRecords) Best() (records.Run, bool, error) {
	if len(r.saved) == 0 {
		return records.Run{}, false, nil
	}
	best := r.saved[0]
	for _, run := range r.saved[1:] {
		if run.Deaths < best.Deaths {
			best = run
		}
	}
	return best, true, nil
}

type harness struct {
	game    *Game
	levels  *fakeLevels
	stage   *fakeProbe
	items   *persist.Memory
	applier *fakeApplier
	records *fakeRecords
	clock   time.Time
}

func newHarness(t *testing.T, levelCount int, items *persist.Memory) *harness {
	t.Helper()
	if items == nil {
		items = persist.NewMemory()
	}
	h := &harness{
		levels:  newFakeLevels(levelCount),
		stage:   &fakeProbe{},
		items:   items,
		applier: &fakeApplier{},
		records: &fakeRecords{},
		clock:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	h.game = New(Config{
		Levels:   h.levels,
		Stage:    h.stage,
		Items:    items,
		Progress: progress.NewTracker(items, quietLogger()),
		Settings: settings.Default(),
		Applier:  h.applier,
		Records:  h.records,
		Logger:   quietLogger(),
		Now:      func() time.Time { return h.clock },
	})
	return h
}

// step runs one update with the given actions freshly pressed.
func (h *harness) step(t *testing.T, actions ...input.Action) {
	t.Helper()
	require.NoError(t, h.game.Update(input.Press(actions...)))
}

func (h *harness) idle(t *testing.T) { h.step(t) }

// startPlaying selects Play from a freshly opened main menu.
func (h *harness) startPlaying(t *testing.T) {
	t.Helper()
	require.Equal(t, StateMenu, h.game.State())
	h.step(t, input.ActionConfirm)
	require.Equal(t, StatePlaying, h.game.State())
}
