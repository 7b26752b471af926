package systems

import (
	"log"
	"math"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner advances each kind's timer by one fixed tick and spawns an
// enemy just past the right edge of the view when the interval is reached.
// The timer resets to zero; the overshoot is not carried over.
func UpdateSpawner(ecs *ecs.ECS) {
	spawnerEntry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)

	for kind := cfg.EnemyKind(0); kind < cfg.EnemyKindCount; kind++ {
		spawner.Timers[kind] += cfg.Timing.TickMillis
		if spawner.Timers[kind] < spawner.Intervals[kind] {
			continue
		}

		spawnEnemy(ecs, kind)
		spawner.Timers[kind] = 0
		if spawner.Decay {
			spawner.Intervals[kind] = math.Max(spawner.Floors[kind], spawner.Intervals[kind]-spawner.Steps[kind])
		}
	}
}

func spawnEnemy(e *ecs.ECS, kind cfg.EnemyKind) {
	speedMult, healthMult := 1.0, 1.0
	if level := currentLevel(e); level != nil {
		speedMult = level.EnemySpeedMultiplier
		healthMult = level.EnemyHealthMultiplier
	}

	x := cameraX(e) + float64(cfg.C.Width) + cfg.Enemy.SpawnAheadX
	y := groundLevel(e) - cfg.Enemy.SpawnFeetOffset
	if _, err := factory.CreateEnemy(e, kind, x, y, speedMult, healthMult); err != nil {
		log.Printf("spawner: %v", err)
	}
}
