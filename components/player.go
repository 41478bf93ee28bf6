package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing    float64 // -1 left, 1 right
	JumpSpeed float64
	SpawnX    float64 // Top-left of the collider at spawn
	SpawnY    float64
}

var Player = donburi.NewComponentType[PlayerData]()
