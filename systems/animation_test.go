package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestUpdateAnimations_LocomotionFollowsMovement(t *testing.T) {
	e := newTestWorld(t, testLevel())
	entry := player(t, e)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	components.Player.Get(entry).Moving = true
	UpdateAnimations(e)
	assert.Equal(t, cfg.StateWalking, state.CurrentState)
	assert.Equal(t, "player/walking", anim.Sheet())

	components.Player.Get(entry).Moving = false
	UpdateAnimations(e)
	assert.Equal(t, cfg.StateIdle, state.CurrentState)
	assert.Equal(t, 0, anim.Frame(), "idle is a static pose")
}

func TestUpdateAnimations_DeadPlayerHoldsPose(t *testing.T) {
	e := newTestWorld(t, testLevel())
	entry := player(t, e)
	killPlayer(e, entry)

	for i := 0; i < 200; i++ {
		UpdateAnimations(e)
	}

	clip := components.Animation.Get(entry).Current()
	assert.Equal(t, cfg.StateDead, components.State.Get(entry).CurrentState)
	assert.True(t, clip.Done())
	assert.Equal(t, len(cfg.PlayerClips[cfg.StateDead].Frames)-1, clip.Index())
}

func TestUpdateClouds_Wrap(t *testing.T) {
	e := newTestWorld(t, testLevel())

	var cloud *components.CloudData
	count := 0
	tags.Cloud.Each(e.World, func(entry *donburi.Entry) {
		count++
		cloud = components.Cloud.Get(entry)
	})
	assert.Equal(t, cfg.Cloud.Count, count)

	cloud.X = -cfg.Cloud.Width*cloud.Scale - 1
	UpdateClouds(e)
	assert.Equal(t, 5000.0, cloud.X)

	cloud.X = 100
	UpdateClouds(e)
	assert.Equal(t, 100-cloud.Speed, cloud.X)
}

func TestRenderSnapshot(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 2000)
	flash(enemy)

	drawables := RenderSnapshot(e)

	if assert.Len(t, drawables, 2) {
		walker, hero := drawables[0], drawables[1]

		assert.Equal(t, "walker/walking", walker.Sheet)
		assert.True(t, walker.FlipX)
		assert.NotNil(t, walker.Flash)

		assert.Equal(t, "player/idle", hero.Sheet)
		assert.False(t, hero.FlipX)
		assert.Nil(t, hero.Flash)
		assert.Equal(t, cfg.Player.StartX, hero.X)
		assert.Equal(t, cfg.Player.FrameWidth, hero.FrameW)
	}
}

func TestRenderSnapshot_SkipsInactiveEnemies(t *testing.T) {
	e := newTestWorld(t, testLevel())
	enemy := spawnWalker(t, e, 2000)
	components.Enemy.Get(enemy).Active = false

	assert.Len(t, RenderSnapshot(e), 1)
}

func TestDebugColor(t *testing.T) {
	solid := resolv.NewObject(0, 0, 10, 10, tags.ResolvSolid)
	enemy := resolv.NewObject(0, 0, 10, 10, "character", tags.ResolvEnemy)
	other := resolv.NewObject(0, 0, 10, 10, tags.ResolvGoal)

	assert.Equal(t, color.RGBA{100, 100, 100, 255}, debugColor(solid))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, debugColor(enemy))
	assert.Equal(t, color.RGBA{0, 255, 255, 255}, debugColor(other))
}
