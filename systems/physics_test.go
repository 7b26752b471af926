package systems

import (
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePhysics_GroundClamp(t *testing.T) {
	e := newTestWorld(t, testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry)

	for i := 0; i < 5; i++ {
		UpdatePhysics(e)
	}

	assert.Equal(t, testGroundY-obj.H, obj.Y)
	assert.Zero(t, components.Physics.Get(entry).SpeedY)
}

func TestUpdatePhysics_FallSpeedIsCapped(t *testing.T) {
	e := newTestWorld(t, testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry)
	obj.Y = -2000
	obj.Update()

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
	}
	assert.Equal(t, cfg.Physics.MaxFallSpeed, components.Physics.Get(entry).SpeedY)
}

func TestUpdatePhysics_LandingIsIdempotent(t *testing.T) {
	level := testLevel()
	level.Platforms = []leveldata.Rect{{X: 400, Y: 350, W: 300, H: 30}}
	e := newTestWorld(t, level)

	entry := player(t, e)
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)
	obj.X = 300
	obj.Y = 345 - obj.H
	obj.Update()
	physics.SpeedY = 5

	UpdatePhysics(e)
	require.True(t, components.Player.Get(entry).OnPlatform)
	landed := obj.Y
	assert.Equal(t, 350-obj.H, landed)

	for i := 0; i < 10; i++ {
		UpdatePhysics(e)
		assert.Equal(t, landed, obj.Y)
		assert.Zero(t, physics.SpeedY)
		assert.True(t, components.Player.Get(entry).OnPlatform)
	}
}

func TestUpdatePhysics_RisingPlayerPassesThroughPlatform(t *testing.T) {
	level := testLevel()
	level.Platforms = []leveldata.Rect{{X: 400, Y: 350, W: 300, H: 30}}
	e := newTestWorld(t, level)

	entry := player(t, e)
	obj := components.Object.Get(entry)
	obj.X = 300
	obj.Y = 355 - obj.H
	obj.Update()
	components.Physics.Get(entry).SpeedY = -10

	UpdatePhysics(e)
	assert.False(t, components.Player.Get(entry).OnPlatform)
}

func TestUpdatePhysics_EdgeTouchIsNotOverlap(t *testing.T) {
	level := testLevel()
	level.Platforms = []leveldata.Rect{{X: 400, Y: 350, W: 300, H: 30}}
	e := newTestWorld(t, level)

	entry := player(t, e)
	obj := components.Object.Get(entry)
	obj.X = 400 - obj.W
	obj.Y = 345 - obj.H
	obj.Update()
	components.Physics.Get(entry).SpeedY = 5

	UpdatePhysics(e)
	assert.False(t, components.Player.Get(entry).OnPlatform)
}

func TestUpdatePhysics_HeartIsCollectedOnce(t *testing.T) {
	level := testLevel()
	level.Hearts = []leveldata.Rect{{X: 150, Y: 400, W: 32, H: 32}}
	e := newTestWorld(t, level)

	entry := player(t, e)
	health := components.Health.Get(entry)
	health.Current = 40

	UpdatePhysics(e)
	assert.Equal(t, 100, health.Current)
	assert.True(t, hasEffect(e, cfg.SoundHeart))

	health.Current = 50
	for i := 0; i < 5; i++ {
		UpdatePhysics(e)
	}
	assert.Equal(t, 50, health.Current, "a collected heart never heals again")
}

func TestUpdatePhysics_ActivePitKillsAndArmsGameOver(t *testing.T) {
	level := testLevel()
	level.Pits = []leveldata.Pit{{Rect: leveldata.Rect{X: 1000, Y: testGroundY, W: 200, H: 100}, Active: true}}
	e := newTestWorld(t, level)

	entry := placePlayer(t, e, 1100-cfg.Player.Width/2)
	UpdatePhysics(e)

	assert.Equal(t, cfg.StateDead, components.State.Get(entry).CurrentState)
	assert.Zero(t, components.Health.Get(entry).Current)
	assert.False(t, GameOverDue(e))

	for i := 0; i < cfg.Timing.GameOverDelayTicks-1; i++ {
		UpdateDeaths(e)
	}
	assert.False(t, GameOverDue(e), "not one tick early")

	UpdateDeaths(e)
	assert.True(t, GameOverDue(e))
}

func TestUpdatePhysics_InactivePitIsGround(t *testing.T) {
	level := testLevel()
	level.Pits = []leveldata.Pit{{Rect: leveldata.Rect{X: 1000, Y: testGroundY, W: 200, H: 100}, Active: false}}
	e := newTestWorld(t, level)

	entry := placePlayer(t, e, 1100-cfg.Player.Width/2)
	for i := 0; i < 5; i++ {
		UpdatePhysics(e)
	}

	assert.NotEqual(t, cfg.StateDead, components.State.Get(entry).CurrentState)
	assert.Equal(t, testGroundY, components.Object.Get(entry).Y+components.Object.Get(entry).H)
}
