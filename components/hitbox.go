package components

import (
	"github.com/yohamta/donburi"
)

// HitboxData is the combat rectangle of an enemy, relative to its object's
// top-left corner. It always lies inside the visual bounds.
type HitboxData struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Origin returns the hitbox top-left in world space for an entity at (x, y).
func (h HitboxData) Origin(x, y float64) (float64, float64) {
	return x + h.OffsetX, y + h.OffsetY
}

var Hitbox = donburi.NewComponentType[HitboxData]()
