package systems

import (
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// attackOnce starts an attack and runs combat and animation until it ends.
func attackOnce(t *testing.T, e *ecs.ECS) {
	t.Helper()
	entry := player(t, e)
	state := components.State.Get(entry)

	components.Intent.Get(entry).AttackPending = true
	UpdatePlayer(e)
	require.Equal(t, cfg.StateAttacking, state.CurrentState)

	for i := 0; i < 200 && state.CurrentState == cfg.StateAttacking; i++ {
		UpdateCombat(e)
		UpdateAnimations(e)
	}
	require.Equal(t, cfg.StateIdle, state.CurrentState)
	require.False(t, components.Player.Get(entry).AttackCooldown, "cooldown clears with the clip")
}

func TestUpdateCombat_ThreeAttacksLeaveWalkerAlive(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 150)

	for i := 0; i < 3; i++ {
		attackOnce(t, e)
	}

	assert.Equal(t, 25, components.Health.Get(enemy).Current)
	assert.NotEqual(t, cfg.StateDead, components.State.Get(enemy).CurrentState)
	assert.Zero(t, Score(e))
}

func TestUpdateCombat_FourthAttackKillsWalker(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 150)

	for i := 0; i < 4; i++ {
		attackOnce(t, e)
	}

	assert.Zero(t, components.Health.Get(enemy).Current)
	assert.Equal(t, cfg.StateDead, components.State.Get(enemy).CurrentState)
	assert.Equal(t, cfg.Enemy.Kinds[cfg.EnemyWalker].Points, Score(e))
}

func TestUpdateCombat_DamageLandsOnImpactFrame(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 150)
	entry := player(t, e)
	health := components.Health.Get(enemy)

	components.Intent.Get(entry).AttackPending = true
	UpdatePlayer(e)

	// 0.15 per tick crosses 1.0 every 7 ticks; frame 2 shows after 14.
	for i := 0; i < 14; i++ {
		UpdateCombat(e)
		assert.Equal(t, 100, health.Current, "tick %d", i)
		UpdateAnimations(e)
	}
	require.Equal(t, cfg.Combat.ImpactFrame, components.Animation.Get(entry).Frame())

	UpdateCombat(e)
	assert.Equal(t, 75, health.Current)

	UpdateCombat(e)
	assert.Equal(t, 75, health.Current, "one hit per attack")
}

func TestUpdateCombat_OutOfRangeIsUntouched(t *testing.T) {
	e := newTestWorld(t, testLevel())
	far := spawnWalker(t, e, 100+cfg.Combat.PlayerAttackRange+1-cfg.Enemy.HitboxOffsetX)

	attackOnce(t, e)
	assert.Equal(t, 100, components.Health.Get(far).Current)
}

func TestCheckEnemyDeath_ScoresOnce(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 2000)
	components.Health.Get(enemy).Current = 0

	UpdateEnemies(e)
	UpdateEnemies(e)
	assert.False(t, checkEnemyDeath(e, enemy))

	assert.Equal(t, cfg.Enemy.Kinds[cfg.EnemyWalker].Points, Score(e))
	deaths := 0
	for _, cmd := range pending(e) {
		if cmd.Kind == components.PlayEffect && cmd.Effect == cfg.SoundEnemyDeath {
			deaths++
		}
	}
	assert.Equal(t, 1, deaths)
}

func TestUpdateEffects_FlashCountsDown(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 2000)
	flash(enemy)

	f := components.Flash.Get(enemy)
	require.Equal(t, cfg.Combat.HitFlashTicks, f.Duration)
	for i := 0; i < cfg.Combat.HitFlashTicks+5; i++ {
		UpdateEffects(e)
	}
	assert.Zero(t, f.Duration)
}
