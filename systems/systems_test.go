package systems

import (
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/automoto/arcade-shooter/systems/factory"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testGroundY = 500.0

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:                  "Test",
		Width:                 5000,
		Height:                800,
		GroundY:               testGroundY,
		GoalX:                 4700,
		EnemySpeedMultiplier:  1,
		EnemyHealthMultiplier: 1,
		Spawn: leveldata.Spawn{
			WalkerInterval: 2000,
			RunnerInterval: 5000,
		},
	}
}

func newTestWorld(t *testing.T, level *leveldata.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevelWorld(e, level, 3, 0)
	return e
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "player exists")
	return entry
}

// placePlayer moves the player to x with its feet on the ground.
func placePlayer(t *testing.T, e *ecs.ECS, x float64) *donburi.Entry {
	t.Helper()
	entry := player(t, e)
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = testGroundY - obj.H
	obj.Update()
	return entry
}

func spawnWalker(t *testing.T, e *ecs.ECS, x float64) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateEnemy(e, cfg.EnemyWalker, x, testGroundY-cfg.Enemy.Height, 1, 1)
	require.NoError(t, err)
	return entry
}

func countEnemies(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func pending(e *ecs.ECS) []components.AudioCommand {
	return GetOrCreateAudio(e).Pending
}

func hasEffect(e *ecs.ECS, sound cfg.SoundID) bool {
	for _, cmd := range pending(e) {
		if cmd.Kind == components.PlayEffect && cmd.Effect == sound {
			return true
		}
	}
	return false
}

// gameplayTick runs the simulation systems in pipeline order, without
// raw input polling or audio output.
func gameplayTick(e *ecs.ECS) {
	for _, system := range []ecs.System{
		UpdatePlayer,
		UpdatePhysics,
		UpdateSpawner,
		UpdateEnemies,
		UpdateCombat,
		UpdateLevelComplete,
		UpdateCamera,
		UpdateEffects,
		UpdateAnimations,
		UpdateDeaths,
		UpdateClouds,
	} {
		WithGameplayChecks(system)(e)
	}
}
