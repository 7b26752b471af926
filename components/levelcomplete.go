package components

import "github.com/yohamta/donburi"

// LevelCompleteData is set on the tick the player reaches the goal.
type LevelCompleteData struct {
	Reached bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
