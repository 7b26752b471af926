package components

import "github.com/yohamta/donburi"

// CloudData is a decorative background cloud. It never touches gameplay.
type CloudData struct {
	X, Y  float64
	Scale float64
	Speed float64
}

var Cloud = donburi.NewComponentType[CloudData]()
