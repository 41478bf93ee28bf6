package game

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/records"
	"github.com/automoto/simple-platformer/settings"
)

// ErrQuit is returned from Update once Exit is chosen on the main menu.
var ErrQuit = errors.New("quit requested")

// LevelSource provides level descriptions by index.
type LevelSource interface {
	Count() int
	MustLoad(index int) level.Description
	Names() []string
}

// levelReloader is implemented by level sources that can rescan their files
// and report a broken level instead of panicking.
type levelReloader interface {
	Refresh() error
	Load(index int) (level.Description, error)
}

// Stage is the playable world. It is rebuilt on every entry into Playing.
type Stage interface {
	Load(desc level.Description)
	Unload()
	// Step advances movement and collision by one tick.
	Step(in *input.State)
	Probe() Probe
}

// RunRecorder stores finished playthroughs.
type RunRecorder interface {
	Save(run records.Run) (int64, error)
	Best() (records.Run, bool, error)
}

// System is one unit of per-step logic.
type System func(g *Game, in *input.State)

type Config struct {
	Levels   LevelSource
	Stage    Stage
	Items    persist.ItemStore
	Progress *progress.Tracker
	Settings settings.Settings
	Applier  settings.Applier
	Records  RunRecorder
	Logger   *log.Logger
	Now      func() time.Time
}

type Game struct {
	ctx     *Context
	machine *Machine
	systems map[State][]System

	levels  LevelSource
	stage   Stage
	items   persist.ItemStore
	applier settings.Applier
	records RunRecorder
	logger  *log.Logger
	now     func() time.Time

	menu         *MainMenu
	pause        *PauseMenu
	levelSelect  *LevelSelect
	settingsView *SettingsScreen

	// reload is the validated description for an in-place level reload.
	reload *level.Description

	lastOutcome Outcome
	lastRun     *records.Run
	bestRun     *records.Run
	quit        bool
}

func New(cfg Config) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	items := cfg.Items
	if items == nil {
		items = persist.NewMemory()
	}
	tracker := cfg.Progress
	if tracker == nil {
		tracker = progress.NewTracker(items, logger)
	}

	g := &Game{
		ctx: &Context{
			LevelCount: cfg.Levels.Count(),
			Progress:   tracker,
			Settings:   cfg.Settings.Normalized(),
		},
		machine:      NewMachine(),
		levels:       cfg.Levels,
		stage:        cfg.Stage,
		items:        items,
		applier:      cfg.Applier,
		records:      cfg.Records,
		logger:       logger.WithPrefix("game"),
		now:          now,
		menu:         NewMainMenu(),
		pause:        NewPauseMenu(),
		levelSelect:  NewLevelSelect(),
		settingsView: NewSettingsScreen(),
	}

	g.systems = map[State][]System{
		StateMenu:            {updateMenu},
		StateLevelSelect:     {updateLevelSelect},
		StateLevelTransition: {updateLevelTransition},
		StatePlaying:         {updatePauseToggle, stepStage, resolveInteractions},
		StatePaused:          {updatePause},
		StateSettings:        {updateSettings},
		StateVictory:         {updateVictory},
	}

	if g.applier != nil {
		g.applier.Apply(g.ctx.Settings)
	}
	return g
}

// Update runs the systems of the active state, then applies at most one
// pending transition.
func (g *Game) Update(in *input.State) error {
	for _, sys := range g.systems[g.machine.Current()] {
		sys(g, in)
	}
	g.applyTransition()
	if g.quit {
		return ErrQuit
	}
	return nil
}

func (g *Game) State() State                { return g.machine.Current() }
func (g *Game) Origin() SettingsOrigin      { return g.machine.Origin() }
func (g *Game) Context() *Context           { return g.ctx }
func (g *Game) LastOutcome() Outcome        { return g.lastOutcome }
func (g *Game) Settings() settings.Settings { return g.ctx.Settings }

func (g *Game) request(to State) {
	if err := g.machine.Request(to); err != nil {
		g.logger.Error("transition rejected", "err", err)
	}
}

// SelectLevel activates a level select row, as a click would.
func (g *Game) SelectLevel(row int) {
	if g.machine.Current() != StateLevelSelect {
		return
	}
	g.handleLevelPick(g.levelSelect.Activate(row, g.ctx.Progress))
}

// HoverRow moves the selection of the active menu screen to row, as
// pointing at it would.
func (g *Game) HoverRow(row int) {
	switch g.machine.Current() {
	case StateLevelSelect:
		g.levelSelect.Hover(row)
	case StatePaused:
		g.pause.Hover(row)
	case StateSettings:
		g.settingsView.Hover(row)
	}
}

// ActivatePause activates a pause menu row, as a click would.
func (g *Game) ActivatePause(row int) {
	if g.machine.Current() != StatePaused {
		return
	}
	if action, ok := g.pause.Activate(row); ok {
		g.handlePause(action)
	}
}

// ActivateSetting activates a settings row, as a click would.
func (g *Game) ActivateSetting(row int) {
	if g.machine.Current() != StateSettings {
		return
	}
	g.handleSettings(g.settingsView.Activate(row, &g.ctx.Settings))
}

// AnswerReset answers an open reset confirmation, as clicking Yes or No
// would.
func (g *Game) AnswerReset(choice ConfirmChoice) {
	if g.machine.Current() != StateSettings {
		return
	}
	g.handleSettings(g.settingsView.ActivateConfirm(choice))
}

// ReloadLevel rebuilds the current level through a LevelTransition, keeping
// the death counter. It does nothing outside Playing. Sources that can
// rescan are reread first, and a level that no longer loads leaves the
// running one in place.
func (g *Game) ReloadLevel() error {
	if g.machine.Current() != StatePlaying {
		return nil
	}
	if src, ok := g.levels.(levelReloader); ok {
		if err := src.Refresh(); err != nil {
			g.logger.Warn("level reload skipped", "err", err)
			return err
		}
		desc, err := src.Load(g.ctx.CurrentLevel)
		if err != nil {
			g.logger.Warn("level reload skipped", "level", g.ctx.CurrentLevel, "err", err)
			return err
		}
		g.ctx.LevelCount = g.levels.Count()
		g.reload = &desc
	} else {
		desc := g.levels.MustLoad(g.ctx.CurrentLevel)
		g.reload = &desc
	}
	g.logger.Info("reloading level", "level", g.ctx.CurrentLevel)
	g.request(StateLevelTransition)
	return nil
}

func (g *Game) applyTransition() {
	from, to, changed := g.machine.Apply()
	if !changed {
		return
	}
	g.exit(from)
	g.enter(to)
	g.logger.Debug("state changed", "from", from, "to", to)
}

func (g *Game) exit(from State) {
	switch from {
	case StatePlaying:
		g.ctx.SimulationRunning = false
		if g.stage != nil {
			g.stage.Unload()
		}
	case StateVictory:
		g.ctx.Deaths = nil
	}
}

func (g *Game) enter(to State) {
	if to != StateLevelTransition && to != StatePlaying {
		g.reload = nil
	}
	switch to {
	case StateMenu:
		g.ctx.Deaths = nil
		g.menu.Reset()
	case StateLevelSelect:
		g.levelSelect.Open(g.levels.Names())
	case StateLevelTransition:
		if g.ctx.Deaths != nil && g.reload == nil {
			g.ctx.Deaths.CurrentLevel = 0
		}
	case StatePlaying:
		g.enterPlaying()
	case StatePaused:
		g.pause.Reset()
	case StateSettings:
		g.settingsView.Open()
	case StateVictory:
		g.recordRun()
	}
}

func (g *Game) enterPlaying() {
	if g.ctx.Deaths == nil {
		g.ctx.Deaths = &DeathCounter{}
		g.ctx.RunStarted = g.now()
	}
	var desc level.Description
	if g.reload != nil {
		desc = *g.reload
		g.reload = nil
	} else {
		desc = g.levels.MustLoad(g.ctx.CurrentLevel)
	}
	g.ctx.LevelName = desc.Name
	if g.stage != nil {
		g.stage.Load(desc)
	}
	g.ctx.SimulationRunning = true
	g.logger.Info("level started", "level", g.ctx.CurrentLevel, "name", desc.Name)
}

func (g *Game) recordRun() {
	run := records.Run{
		Levels:      g.ctx.LevelCount,
		CompletedAt: g.now(),
	}
	if g.ctx.Deaths != nil {
		run.Deaths = g.ctx.Deaths.Total
		run.Duration = run.CompletedAt.Sub(g.ctx.RunStarted)
	}
	g.lastRun = &run
	g.bestRun = nil
	g.logger.Info("run completed", "deaths", run.Deaths, "duration", run.Duration.Round(time.Millisecond))

	if g.records == nil {
		return
	}
	if _, err := g.records.Save(run); err != nil {
		g.logger.Warn("could not save run", "err", err)
	}
	best, ok, err := g.records.Best()
	if err != nil {
		g.logger.Warn("could not read best run", "err", err)
		return
	}
	if ok {
		g.bestRun = &best
	}
}

func updateMenu(g *Game, in *input.State) {
	action, ok := g.menu.Update(in)
	if !ok {
		return
	}
	switch action {
	case MenuPlay:
		if g.ctx.CurrentLevel >= g.ctx.LevelCount {
			g.ctx.CurrentLevel = 0
		}
		g.request(StatePlaying)
	case MenuLevels:
		g.request(StateLevelSelect)
	case MenuSettings:
		g.request(StateSettings)
	case MenuExit:
		g.logger.Info("exit requested")
		g.quit = true
	}
}

func updateLevelSelect(g *Game, in *input.State) {
	g.handleLevelPick(g.levelSelect.Update(in, g.ctx.Progress))
}

func (g *Game) handleLevelPick(pick int, picked, back bool) {
	switch {
	case back:
		g.request(StateMenu)
	case picked:
		g.ctx.CurrentLevel = pick
		g.request(StatePlaying)
	}
}

func updateLevelTransition(g *Game, _ *input.State) {
	g.request(StatePlaying)
}

func updatePauseToggle(g *Game, in *input.State) {
	if in.JustPressed(input.ActionBack) {
		g.request(StatePaused)
	}
}

func stepStage(g *Game, in *input.State) {
	if _, pending := g.machine.Pending(); pending || !g.ctx.SimulationRunning || g.stage == nil {
		return
	}
	g.stage.Step(in)
}

func resolveInteractions(g *Game, _ *input.State) {
	if _, pending := g.machine.Pending(); pending || g.stage == nil {
		return
	}
	g.lastOutcome = Resolve(g.ctx, g.machine, g.stage.Probe())
	switch g.lastOutcome {
	case OutcomeDied:
		g.logger.Debug("player died", "level", g.ctx.CurrentLevel, "deaths", g.ctx.Deaths.CurrentLevel)
	case OutcomeLevelCleared:
		g.logger.Info("level cleared", "next", g.ctx.CurrentLevel)
	case OutcomeVictory:
		g.logger.Info("all levels cleared")
	}
}

func updatePause(g *Game, in *input.State) {
	if action, ok := g.pause.Update(in); ok {
		g.handlePause(action)
	}
}

func (g *Game) handlePause(action PauseAction) {
	switch action {
	case PauseResume:
		g.request(StatePlaying)
	case PauseSettings:
		g.request(StateSettings)
	case PauseMainMenu:
		g.request(StateMenu)
	}
}

func updateSettings(g *Game, in *input.State) {
	g.handleSettings(g.settingsView.Update(in, &g.ctx.Settings))
}

func (g *Game) handleSettings(effect SettingsEffect) {
	switch effect {
	case EffectApply:
		g.ctx.SettingsDirty = true
		if g.applier != nil {
			g.applier.Apply(g.ctx.Settings)
		}
	case EffectSave:
		if err := settings.Save(g.items, g.ctx.Settings); err != nil {
			g.logger.Warn("could not save settings", "err", err)
			return
		}
		g.ctx.SettingsDirty = false
		g.logger.Info("settings saved")
	case EffectResetProgress:
		g.ctx.Progress.Reset()
	case EffectBack:
		if err := g.machine.RequestBack(); err != nil {
			g.logger.Error("transition rejected", "err", err)
		}
	}
}

func updateVictory(g *Game, in *input.State) {
	if in.JustPressed(input.ActionConfirm) {
		g.request(StateMenu)
	}
}
