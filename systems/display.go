package systems

import (
	"github.com/automoto/simple-platformer/settings"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// DisplayApplier pushes display settings into the running window. Volumes
// are kept on the settings value only; there is no audio output.
type DisplayApplier struct {
	logger *log.Logger
}

func NewDisplayApplier(logger *log.Logger) *DisplayApplier {
	return &DisplayApplier{logger: logger}
}

func (a *DisplayApplier) Apply(s settings.Settings) {
	res := s.Resolution()
	if ebiten.IsFullscreen() != s.Fullscreen {
		ebiten.SetFullscreen(s.Fullscreen)
	}
	if !s.Fullscreen {
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	a.logger.Debug("display applied", "resolution", res.Label, "fullscreen", s.Fullscreen)
}
