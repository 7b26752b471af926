package components

import (
	"github.com/automoto/arcade-shooter/config"
	"github.com/yohamta/donburi"
)

// SpawnerData holds one timer per enemy kind, in milliseconds.
type SpawnerData struct {
	Timers    [config.EnemyKindCount]float64
	Intervals [config.EnemyKindCount]float64

	// Decaying mode only
	Decay  bool
	Floors [config.EnemyKindCount]float64
	Steps  [config.EnemyKindCount]float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()
