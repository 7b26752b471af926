package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedY float64 // positive is down
}

var Physics = donburi.NewComponentType[PhysicsData]()
