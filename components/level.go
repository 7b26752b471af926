package components

import (
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	LevelCount   int
}

var Level = donburi.NewComponentType[LevelData]()
