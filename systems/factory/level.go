package factory

import (
	"math/rand"

	"github.com/automoto/arcade-shooter/archetypes"
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton with its session and goal flags.
// score is carried over from earlier levels.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, levelCount, score int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		LevelIndex:   level.Index,
		LevelCount:   levelCount,
	})
	components.Session.SetValue(entry, components.SessionData{Score: score})
	components.LevelComplete.SetValue(entry, components.LevelCompleteData{})

	return entry
}

// CreateSpawner seeds the per-kind timers from the level's spawn settings.
func CreateSpawner(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	entry := archetypes.Spawner.Spawn(ecs)

	data := components.SpawnerData{Decay: spawn.Decay}
	data.Intervals[cfg.EnemyWalker] = spawn.WalkerInterval
	data.Intervals[cfg.EnemyRunner] = spawn.RunnerInterval
	data.Floors[cfg.EnemyWalker] = spawn.WalkerFloor
	data.Floors[cfg.EnemyRunner] = spawn.RunnerFloor
	data.Steps[cfg.EnemyWalker] = spawn.WalkerStep
	data.Steps[cfg.EnemyRunner] = spawn.RunnerStep
	components.Spawner.SetValue(entry, data)

	return entry
}

// CreateClouds scatters decorative clouds across the level.
func CreateClouds(ecs *ecs.ECS, levelWidth float64, rng *rand.Rand) {
	for i := 0; i < cfg.Cloud.Count; i++ {
		cloud := archetypes.Cloud.Spawn(ecs)
		components.Cloud.SetValue(cloud, components.CloudData{
			X:     rng.Float64() * levelWidth,
			Y:     cfg.Cloud.MinY + rng.Float64()*cfg.Cloud.RangeY,
			Scale: cfg.Cloud.MinScale + rng.Float64()*cfg.Cloud.ScaleRange,
			Speed: cfg.Cloud.MinSpeed + rng.Float64()*cfg.Cloud.SpeedRange,
		})
	}
}

// CreateLevelWorld builds everything a fresh level needs: collision space,
// level and session state, static geometry, the player on the ground at the
// start line, the camera, the spawner and the background clouds.
func CreateLevelWorld(ecs *ecs.ECS, level *leveldata.Level, levelCount, score int) *donburi.Entry {
	CreateSpace(ecs, level.Width, level.Height, SpaceCellSize, SpaceCellSize)
	levelEntry := CreateLevel(ecs, level, levelCount, score)

	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, p := range level.Pits {
		CreatePit(ecs, p)
	}
	for _, h := range level.Hearts {
		CreateHeart(ecs, h)
	}
	CreateGoal(ecs, level.GoalX, level.GroundY)

	CreatePlayer(ecs, cfg.Player.StartX, level.GroundY-cfg.Player.Height)
	CreateCamera(ecs)
	CreateSpawner(ecs, level.Spawn)
	CreateClouds(ecs, float64(level.Width), rand.New(rand.NewSource(cfg.Cloud.Seed+int64(level.Index))))

	return levelEntry
}
