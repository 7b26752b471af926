package systems

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down enemy removal timers, removes inactive enemies
// and advances the game-over countdown.
func UpdateDeaths(ecs *ecs.ECS) {
	var remove []*donburi.Entry

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			remove = append(remove, e)
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Active && !e.HasComponent(components.Death) {
			remove = append(remove, e)
		}
	})

	for _, e := range remove {
		removeEntity(ecs, e)
	}

	if session := GetSession(ecs); session != nil && session.GameOverArmed && !session.GameOverDue {
		session.GameOverTimer--
		if session.GameOverTimer <= 0 {
			session.GameOverDue = true
		}
	}
}

// removeEntity drops e from the collision space and the world.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// killPlayer moves the player into the dead state and arms the game-over
// countdown. Calling it again is a no-op.
func killPlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	state := components.State.Get(playerEntry)
	if state.CurrentState == cfg.StateDead {
		return
	}
	state.Set(cfg.StateDead)
	components.Animation.Get(playerEntry).SetState(cfg.StateDead)

	if session := GetSession(e); session != nil {
		session.ArmGameOver(cfg.Timing.GameOverDelayTicks)
	}
	PlaySFX(e, cfg.SoundPlayerDeath)
	FadeOutMusic(e)
}
