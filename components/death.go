package components

import "github.com/yohamta/donburi"

// DeathData marks an enemy whose death clip has finished.
// Timer counts down each tick; at 0 the entity is removed.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
