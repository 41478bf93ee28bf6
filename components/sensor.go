package components

import "github.com/yohamta/donburi"

// SensorData is the player's overlap state, refreshed once per step.
type SensorData struct {
	TouchingExit   bool
	TouchingHazard bool
	OutOfBounds    bool
}

var Sensor = donburi.NewComponentType[SensorData]()
