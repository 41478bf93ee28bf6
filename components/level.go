package components

import (
	"github.com/automoto/simple-platformer/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Layout *level.Layout
}

var Level = donburi.NewComponentType[LevelData]()
