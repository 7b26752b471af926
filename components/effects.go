package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake. It offsets drawing only,
// never the camera position.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // ticks remaining
	Elapsed   int     // ticks elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // ticks remaining
	R, G, B  float32 // tint colour
}

var Flash = donburi.NewComponentType[FlashData]()
