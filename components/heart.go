package components

import "github.com/yohamta/donburi"

// HeartData is a health pickup. Collected never goes back to false.
type HeartData struct {
	Collected bool
}

var Heart = donburi.NewComponentType[HeartData]()
