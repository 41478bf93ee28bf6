package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Spikes   = donburi.NewTag().SetName("Spikes")
	Exit     = donburi.NewTag().SetName("Exit")
	Tile     = donburi.NewTag().SetName("Tile")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvSpikes = "spikes"
	ResolvExit   = "exit"
)
