package systems

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every clip by one tick and fires completion
// effects. It runs after gameplay so the clip reflects this tick's state.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, updatePlayerAnimation)

	var finished []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !advanceClip(e) {
			return
		}
		switch components.State.Get(e).CurrentState {
		case cfg.StateDead:
			finished = append(finished, e)
		case cfg.StateAttacking:
			// Enemies swing until they leave attack range.
			components.Animation.Get(e).Current().Restart()
		}
	})

	// Adding a component changes the archetype, so do it outside Each.
	for _, e := range finished {
		if !e.HasComponent(components.Death) {
			donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Enemy.DeathRemovalTicks})
		}
	}
}

// advanceClip steps the active clip and reports whether a one-shot clip
// finished on this tick.
func advanceClip(e *donburi.Entry) bool {
	clip := components.Animation.Get(e).Current()
	if clip == nil {
		return false
	}
	return clip.Advance()
}

func updatePlayerAnimation(e *donburi.Entry) {
	state := components.State.Get(e)
	player := components.Player.Get(e)
	anim := components.Animation.Get(e)

	if advanceClip(e) && state.CurrentState == cfg.StateAttacking {
		player.AttackCooldown = false
		state.Set(cfg.StateIdle)
		anim.SetState(cfg.StateIdle)
	}

	switch state.CurrentState {
	case cfg.StateAttacking, cfg.StateDead:
		return
	}

	next := cfg.StateIdle
	if player.Moving {
		next = cfg.StateWalking
	}
	state.Set(next)
	anim.SetState(next)
}
