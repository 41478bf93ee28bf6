package game

import (
	"fmt"

	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/settings"
)

// Row is one selectable line of a screen.
type Row struct {
	Label  string
	Value  string
	Action int
	Index  int
	Locked bool
}

// Dialog is a modal question drawn over a screen's rows.
type Dialog struct {
	Prompt   string
	Choices  []string
	Selected int
}

// View is what the frontend draws for a menu-like screen.
type View struct {
	Title    string
	Lines    []string
	Rows     []Row
	Selected int
	Hint     string
	Dialog   *Dialog
}

// cursor is a wrap-around selection over count rows.
type cursor struct {
	index int
	count int
}

func (c *cursor) move(delta int) {
	if c.count == 0 {
		return
	}
	c.index = ((c.index+delta)%c.count + c.count) % c.count
}

// point selects row i, as hovering it would. It reports false for rows
// outside the screen.
func (c *cursor) point(i int) bool {
	if i < 0 || i >= c.count {
		return false
	}
	c.index = i
	return true
}

func (c *cursor) navigate(in *input.State) {
	if in.JustPressed(input.ActionUp) {
		c.move(-1)
	}
	if in.JustPressed(input.ActionDown) {
		c.move(1)
	}
}

// MenuAction is a main menu row.
type MenuAction int

const (
	MenuPlay MenuAction = iota
	MenuLevels
	MenuSettings
	MenuExit
	menuActionCount
)

var menuLabels = [menuActionCount]string{"Play", "Levels", "Settings", "Exit"}

func (a MenuAction) String() string { return menuLabels[a] }

type MainMenu struct {
	cursor cursor
}

func NewMainMenu() *MainMenu {
	return &MainMenu{cursor: cursor{count: int(menuActionCount)}}
}

func (m *MainMenu) Reset() { m.cursor.index = 0 }

func (m *MainMenu) Selected() MenuAction { return MenuAction(m.cursor.index) }

// Update moves the selection and reports the activated row, if any.
func (m *MainMenu) Update(in *input.State) (MenuAction, bool) {
	m.cursor.navigate(in)
	if in.JustPressed(input.ActionConfirm) {
		return m.Selected(), true
	}
	return 0, false
}

func (m *MainMenu) View() View {
	v := View{Title: "Simple Platformer", Selected: m.cursor.index, Hint: "Up/Down to select, Enter to confirm"}
	for i := MenuAction(0); i < menuActionCount; i++ {
		v.Rows = append(v.Rows, Row{Label: i.String(), Action: int(i), Index: int(i)})
	}
	return v
}

// PauseAction is a pause menu row.
type PauseAction int

const (
	PauseResume PauseAction = iota
	PauseSettings
	PauseMainMenu
	pauseActionCount
)

var pauseLabels = [pauseActionCount]string{"Resume", "Settings", "Main Menu"}

func (a PauseAction) String() string { return pauseLabels[a] }

type PauseMenu struct {
	cursor cursor
}

func NewPauseMenu() *PauseMenu {
	return &PauseMenu{cursor: cursor{count: int(pauseActionCount)}}
}

func (p *PauseMenu) Reset() { p.cursor.index = 0 }

// Update handles one step of pause input. Back resumes.
func (p *PauseMenu) Update(in *input.State) (PauseAction, bool) {
	if in.JustPressed(input.ActionBack) {
		return PauseResume, true
	}
	p.cursor.navigate(in)
	if in.JustPressed(input.ActionConfirm) {
		return PauseAction(p.cursor.index), true
	}
	return 0, false
}

// Activate behaves like confirming on row i.
func (p *PauseMenu) Activate(i int) (PauseAction, bool) {
	if !p.cursor.point(i) {
		return 0, false
	}
	return PauseAction(i), true
}

func (p *PauseMenu) Hover(i int) { p.cursor.point(i) }

func (p *PauseMenu) View() View {
	v := View{Title: "Paused", Selected: p.cursor.index, Hint: "Esc to resume"}
	for i := PauseAction(0); i < pauseActionCount; i++ {
		v.Rows = append(v.Rows, Row{Label: i.String(), Action: int(i), Index: int(i)})
	}
	return v
}

// LevelSelect lists every level plus a trailing Back row.
type LevelSelect struct {
	cursor cursor
	names  []string
}

func NewLevelSelect() *LevelSelect {
	return &LevelSelect{}
}

func (l *LevelSelect) Open(names []string) {
	l.names = names
	l.cursor = cursor{count: len(names) + 1}
}

func (l *LevelSelect) backRow() int { return len(l.names) }

// Update returns the picked level, or back == true when leaving. A locked
// pick returns nothing.
func (l *LevelSelect) Update(in *input.State, tracker *progress.Tracker) (pick int, picked, back bool) {
	if in.JustPressed(input.ActionBack) {
		return 0, false, true
	}
	l.cursor.navigate(in)
	if !in.JustPressed(input.ActionConfirm) {
		return 0, false, false
	}
	return l.Activate(l.cursor.index, tracker)
}

// Activate behaves like confirming on row i.
func (l *LevelSelect) Activate(i int, tracker *progress.Tracker) (pick int, picked, back bool) {
	if i < 0 || i > l.backRow() {
		return 0, false, false
	}
	l.cursor.index = i
	if i == l.backRow() {
		return 0, false, true
	}
	if !tracker.IsUnlocked(i) {
		return 0, false, false
	}
	return i, true, false
}

func (l *LevelSelect) Hover(i int) { l.cursor.point(i) }

func (l *LevelSelect) View(tracker *progress.Tracker) View {
	v := View{Title: "Select Level", Selected: l.cursor.index, Hint: "Enter to play, Esc to go back"}
	for i, name := range l.names {
		locked := !tracker.IsUnlocked(i)
		label := fmt.Sprintf("Level %d: %s", i+1, name)
		if locked {
			label += " (locked)"
		}
		v.Rows = append(v.Rows, Row{Label: label, Action: i, Index: i, Locked: locked})
	}
	v.Rows = append(v.Rows, Row{Label: "Back", Action: l.backRow(), Index: l.backRow()})
	return v
}

// SettingsRow is a settings screen row.
type SettingsRow int

const (
	RowMusic SettingsRow = iota
	RowSound
	RowResolution
	RowWindow
	RowSave
	RowResetProgress
	RowBack
	settingsRowCount
)

var settingsLabels = [settingsRowCount]string{"Music", "Sound", "Resolution", "Window", "Save", "Reset Progress", "Back"}

func (r SettingsRow) String() string { return settingsLabels[r] }

// SettingsMode is the reset confirmation sub-state.
type SettingsMode int

const (
	ModeNormal SettingsMode = iota
	ModeConfirmingReset
)

// ConfirmChoice is the highlighted answer while confirming a reset.
type ConfirmChoice int

const (
	ChoiceYes ConfirmChoice = iota
	ChoiceNo
)

// SettingsEffect is what the settings screen asks the game to do.
type SettingsEffect int

const (
	EffectNone SettingsEffect = iota
	EffectApply
	EffectSave
	EffectResetProgress
	EffectBack
)

type SettingsScreen struct {
	cursor cursor
	mode   SettingsMode
	choice ConfirmChoice
}

func NewSettingsScreen() *SettingsScreen {
	return &SettingsScreen{cursor: cursor{count: int(settingsRowCount)}}
}

func (s *SettingsScreen) Open() {
	s.cursor.index = 0
	s.mode = ModeNormal
	s.choice = ChoiceNo
}

func (s *SettingsScreen) Selected() SettingsRow { return SettingsRow(s.cursor.index) }
func (s *SettingsScreen) Mode() SettingsMode    { return s.mode }
func (s *SettingsScreen) Choice() ConfirmChoice { return s.choice }

// Update applies one step of input. Value rows mutate cur in place.
func (s *SettingsScreen) Update(in *input.State, cur *settings.Settings) SettingsEffect {
	if s.mode == ModeConfirmingReset {
		return s.updateConfirm(in)
	}

	if in.JustPressed(input.ActionBack) {
		return EffectBack
	}
	s.cursor.navigate(in)

	dir := 0
	if in.JustPressed(input.ActionLeft) {
		dir = -1
	} else if in.JustPressed(input.ActionRight) {
		dir = 1
	}

	row := s.Selected()
	if dir != 0 {
		switch row {
		case RowMusic:
			cur.AdjustMusic(dir)
			return EffectApply
		case RowSound:
			cur.AdjustSFX(dir)
			return EffectApply
		case RowResolution:
			cur.CycleResolution(dir)
			return EffectApply
		case RowWindow:
			cur.ToggleFullscreen()
			return EffectApply
		}
	}

	if !in.JustPressed(input.ActionConfirm) {
		return EffectNone
	}
	return s.activate(row, cur)
}

// Activate behaves like confirming on row i. It does nothing while a reset
// is being confirmed.
func (s *SettingsScreen) Activate(i int, cur *settings.Settings) SettingsEffect {
	if s.mode == ModeConfirmingReset || !s.cursor.point(i) {
		return EffectNone
	}
	return s.activate(SettingsRow(i), cur)
}

func (s *SettingsScreen) Hover(i int) {
	if s.mode == ModeNormal {
		s.cursor.point(i)
	}
}

func (s *SettingsScreen) activate(row SettingsRow, cur *settings.Settings) SettingsEffect {
	switch row {
	case RowResolution:
		cur.CycleResolution(1)
		return EffectApply
	case RowWindow:
		cur.ToggleFullscreen()
		return EffectApply
	case RowSave:
		return EffectSave
	case RowResetProgress:
		s.mode = ModeConfirmingReset
		s.choice = ChoiceNo
	case RowBack:
		return EffectBack
	}
	return EffectNone
}

func (s *SettingsScreen) updateConfirm(in *input.State) SettingsEffect {
	switch {
	case in.JustPressed(input.ActionBack):
		s.mode = ModeNormal
	case in.JustPressed(input.ActionLeft):
		s.choice = ChoiceYes
	case in.JustPressed(input.ActionRight):
		s.choice = ChoiceNo
	case in.JustPressed(input.ActionConfirm):
		return s.ActivateConfirm(s.choice)
	}
	return EffectNone
}

// ActivateConfirm answers the reset question directly, as clicking Yes or
// No would.
func (s *SettingsScreen) ActivateConfirm(choice ConfirmChoice) SettingsEffect {
	if s.mode != ModeConfirmingReset {
		return EffectNone
	}
	s.choice = choice
	s.mode = ModeNormal
	if choice == ChoiceYes {
		return EffectResetProgress
	}
	return EffectNone
}

func (s *SettingsScreen) View(cur settings.Settings, dirty bool) View {
	title := "Settings"
	if dirty {
		title += " *"
	}
	v := View{Title: title, Selected: s.cursor.index, Hint: "Left/Right to change, Enter to select, Esc to go back"}
	for r := SettingsRow(0); r < settingsRowCount; r++ {
		v.Rows = append(v.Rows, Row{Label: r.String(), Value: settingValue(r, cur), Action: int(r), Index: int(r)})
	}
	if s.mode == ModeConfirmingReset {
		v.Dialog = &Dialog{
			Prompt:   "Reset all progress?",
			Choices:  []string{"Yes", "No"},
			Selected: int(s.choice),
		}
		v.Hint = "Left/Right to choose, Enter to confirm, Esc to cancel"
	}
	return v
}

func settingValue(r SettingsRow, cur settings.Settings) string {
	switch r {
	case RowMusic:
		return fmt.Sprintf("%d%%", int(cur.MusicVolume*100+0.5))
	case RowSound:
		return fmt.Sprintf("%d%%", int(cur.SFXVolume*100+0.5))
	case RowResolution:
		return cur.Resolution().Label
	case RowWindow:
		if cur.Fullscreen {
			return "Fullscreen"
		}
		return "Windowed"
	default:
		return ""
	}
}
