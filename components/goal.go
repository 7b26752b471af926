package components

import "github.com/yohamta/donburi"

type GoalData struct {
	X float64
}

var Goal = donburi.NewComponentType[GoalData]()
