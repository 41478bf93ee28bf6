package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the overlay shown while a level appears.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
