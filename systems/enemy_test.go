package systems

import (
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEnemies_WalksTowardPlayer(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 1000)

	UpdateEnemies(e)

	assert.Equal(t, 998.0, components.Object.Get(enemy).X)
	assert.Equal(t, cfg.DirectionLeft, components.Enemy.Get(enemy).Direction)
}

func TestUpdateEnemies_AttackHonoursCooldown(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 150)
	health := components.Health.Get(player(t, e))

	UpdateEnemies(e)
	require.Equal(t, cfg.StateAttacking, components.State.Get(enemy).CurrentState)
	assert.Equal(t, 90, health.Current)
	assert.True(t, hasEffect(e, cfg.SoundPlayerHurt))

	for i := 0; i < cfg.Enemy.AttackCooldownTicks-1; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, 90, health.Current, "still cooling down")

	UpdateEnemies(e)
	assert.Equal(t, 80, health.Current)
}

func TestUpdateEnemies_LethalHitKillsPlayer(t *testing.T) {
	e := newTestWorld(t, testLevel())
	spawnWalker(t, e, 150)
	entry := player(t, e)
	components.Health.Get(entry).Current = cfg.Enemy.AttackDamage

	UpdateEnemies(e)

	assert.Zero(t, components.Health.Get(entry).Current)
	assert.Equal(t, cfg.StateDead, components.State.Get(entry).CurrentState)
	assert.True(t, GetSession(e).GameOverArmed)
}

func TestUpdateEnemies_DeadPlayerTakesNoDamage(t *testing.T) {
	e := newTestWorld(t, testLevel())
	spawnWalker(t, e, 150)
	entry := player(t, e)
	components.Health.Get(entry).Current = 50
	killPlayer(e, entry)

	UpdateEnemies(e)
	assert.Equal(t, 50, components.Health.Get(entry).Current)
}

func TestIsPlayerAbove(t *testing.T) {
	tests := []struct {
		name       string
		playerFeet float64
		hitboxTop  float64
		dx         float64
		want       bool
	}{
		{"standing over the enemy", 300, 368, 50, true},
		{"above but far to the side", 300, 368, cfg.Enemy.PlayerAboveRange, false},
		{"level with the enemy", 500, 368, 0, false},
		{"feet exactly at the hitbox top", 368, 368, 0, false},
		{"left side counts too", 300, 368, -100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPlayerAbove(tt.playerFeet, tt.hitboxTop, tt.dx))
		})
	}
}

func TestUpdateEnemies_PlayerAboveIsNotHit(t *testing.T) {
	e := newTestWorld(t, testLevel())
	entry := placePlayer(t, e, 100)
	enemy := spawnWalker(t, e, 70)
	components.Enemy.Get(enemy).AttackRange = 400

	enemyObj := components.Object.Get(enemy)
	hitboxTop := enemyObj.Y + cfg.Enemy.HitboxOffsetY
	obj := components.Object.Get(entry)
	obj.Y = hitboxTop - obj.H - 10
	obj.Update()
	health := components.Health.Get(entry)
	before := health.Current

	UpdateEnemies(e)
	assert.NotEqual(t, cfg.StateAttacking, components.State.Get(enemy).CurrentState, "no attack starts on a player overhead")

	setEnemyState(enemy, cfg.StateAttacking)
	UpdateEnemies(e)
	assert.Equal(t, before, health.Current)
	assert.False(t, hasEffect(e, cfg.SoundPlayerHurt))
}

func TestUpdateEnemies_CulledBehindCamera(t *testing.T) {
	e := newTestWorld(t, testLevel())
	placePlayer(t, e, 3000)
	UpdateCamera(e)
	require.Equal(t, 2760.0, cameraX(e))

	enemy := spawnWalker(t, e, 2000)
	UpdateEnemies(e)
	assert.False(t, components.Enemy.Get(enemy).Active)

	UpdateDeaths(e)
	assert.False(t, enemy.Valid())
	assert.Zero(t, countEnemies(e))
}

func TestUpdateEnemies_FallsIntoActivePit(t *testing.T) {
	level := testLevel()
	level.Pits = []leveldata.Pit{{Rect: leveldata.Rect{X: 1000, Y: testGroundY, W: 200, H: 100}, Active: true}}
	e := newTestWorld(t, level)

	hitboxCenter := cfg.Enemy.HitboxOffsetX + cfg.Enemy.HitboxWidth/2
	enemy := spawnWalker(t, e, 1100-hitboxCenter)
	y := components.Object.Get(enemy).Y

	UpdateEnemies(e)
	assert.False(t, components.Enemy.Get(enemy).Active)
	assert.Equal(t, y+cfg.Enemy.PitNudge, components.Object.Get(enemy).Y)
}

func TestUpdateAnimations_DeadEnemyIsRemovedAfterDelay(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 2000)
	components.Health.Get(enemy).Current = 0
	require.True(t, checkEnemyDeath(e, enemy))

	for i := 0; i < 200 && !enemy.HasComponent(components.Death); i++ {
		UpdateAnimations(e)
	}
	require.True(t, enemy.HasComponent(components.Death))
	assert.Equal(t, cfg.Enemy.DeathRemovalTicks, components.Death.Get(enemy).Timer)

	for i := 0; i < cfg.Enemy.DeathRemovalTicks-1; i++ {
		UpdateDeaths(e)
	}
	assert.True(t, enemy.Valid())

	UpdateDeaths(e)
	assert.False(t, enemy.Valid())
}
