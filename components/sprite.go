package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData is a static image drawn stretched over the entity's object.
type SpriteData struct {
	Key string
}

var Sprite = donburi.NewComponentType[SpriteData]()
