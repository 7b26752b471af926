package systems

import (
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestAudioQueue_Order(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	PlayMusic(e, "meadow")
	PlaySFX(e, cfg.SoundJump)
	PlayMusicAt(e, "dusk", 2.5)
	FadeOutMusic(e)
	StopMusic(e)

	assert.Equal(t, []components.AudioCommand{
		{Kind: components.PlayMusic, Track: "meadow"},
		{Kind: components.PlayEffect, Effect: cfg.SoundJump},
		{Kind: components.PlayMusic, Track: "dusk", Offset: 2.5},
		{Kind: components.FadeOutMusic},
		{Kind: components.StopMusic},
	}, pending(e))
}

func TestKillPlayer_FadesMusic(t *testing.T) {
	e := newTestWorld(t, testLevel())
	killPlayer(e, player(t, e))

	assert.Contains(t, pending(e), components.AudioCommand{Kind: components.FadeOutMusic})
}
