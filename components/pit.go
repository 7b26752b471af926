package components

import "github.com/yohamta/donburi"

type PitData struct {
	Active bool
}

var Pit = donburi.NewComponentType[PitData]()
