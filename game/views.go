package game

import (
	"fmt"
	"time"
)

// HUD is the overlay drawn while Playing.
type HUD struct {
	LevelNumber int
	LevelCount  int
	LevelName   string
	LevelDeaths int
	TotalDeaths int
}

func (g *Game) HUD() HUD {
	h := HUD{
		LevelNumber: g.ctx.CurrentLevel + 1,
		LevelCount:  g.ctx.LevelCount,
		LevelName:   g.ctx.LevelName,
	}
	if d := g.ctx.Deaths; d != nil {
		h.LevelDeaths = d.CurrentLevel
		h.TotalDeaths = d.Total
	}
	return h
}

func (g *Game) MenuView() View        { return g.menu.View() }
func (g *Game) PauseView() View       { return g.pause.View() }
func (g *Game) LevelSelectView() View { return g.levelSelect.View(g.ctx.Progress) }

func (g *Game) SettingsView() View {
	return g.settingsView.View(g.ctx.Settings, g.ctx.SettingsDirty)
}

func (g *Game) VictoryView() View {
	deaths := 0
	if g.ctx.Deaths != nil {
		deaths = g.ctx.Deaths.Total
	}
	v := View{
		Title: "Victory!",
		Lines: []string{fmt.Sprintf("You died: %d%s", deaths, DeathComment(deaths))},
		Hint:  "Press Enter to return to the menu",
	}
	if g.lastRun != nil && g.lastRun.Duration > 0 {
		v.Lines = append(v.Lines, "Time: "+formatDuration(g.lastRun.Duration))
	}
	if g.bestRun != nil {
		v.Lines = append(v.Lines, fmt.Sprintf("Best: %d deaths in %s", g.bestRun.Deaths, formatDuration(g.bestRun.Duration)))
	}
	return v
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d", m, s)
}
