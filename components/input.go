package components

import (
	"github.com/automoto/simple-platformer/input"
	"github.com/yohamta/donburi"
)

// InputData carries the step's input into the world systems.
type InputData struct {
	State *input.State
}

var Input = donburi.NewComponentType[InputData]()
