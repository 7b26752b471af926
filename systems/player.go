package systems

import (
	"math"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the player's intent: attack, jump, then horizontal
// movement. Pending jump and attack requests are consumed every tick, so an
// invalid request is dropped rather than buffered.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry)
	})
}

func updateSinglePlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	intent := components.Intent.Get(playerEntry)
	defer func() {
		intent.JumpPending = false
		intent.AttackPending = false
	}()

	state := components.State.Get(playerEntry)
	if state.CurrentState == cfg.StateDead {
		return
	}

	player := components.Player.Get(playerEntry)
	player.Moving = intent.Moving

	if intent.AttackPending {
		tryStartAttack(e, playerEntry)
	}
	if intent.JumpPending {
		tryJump(e, playerEntry)
	}

	if state.CurrentState == cfg.StateAttacking || !intent.Moving {
		return
	}

	player.Direction = intent.Direction
	movePlayer(e, playerEntry, player.Direction)
}

// tryStartAttack starts an attack from idle or walking when the cooldown is clear.
func tryStartAttack(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)

	if player.AttackCooldown {
		return false
	}
	if state.CurrentState != cfg.StateIdle && state.CurrentState != cfg.StateWalking {
		return false
	}

	state.Set(cfg.StateAttacking)
	anim := components.Animation.Get(playerEntry)
	anim.SetState(cfg.StateAttacking)
	if clip := anim.Current(); clip != nil {
		clip.Restart()
	}

	player.AttackCooldown = true
	player.HitApplied = false
	PlaySFX(e, cfg.SoundAttack)
	return true
}

// tryJump launches the player when standing on a platform or the ground.
func tryJump(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.Jumping {
		return false
	}

	obj := components.Object.Get(playerEntry)
	groundY := groundLevel(e)
	if !player.OnPlatform && obj.Y+obj.H < groundY {
		return false
	}

	physics := components.Physics.Get(playerEntry)
	physics.SpeedY = cfg.Player.JumpPower
	player.Jumping = true
	player.OnPlatform = false
	PlaySFX(e, cfg.SoundJump)
	return true
}

func movePlayer(e *ecs.ECS, playerEntry *donburi.Entry, direction float64) {
	obj := components.Object.Get(playerEntry)
	obj.X += cfg.Player.Speed * direction

	maxX := float64(cfg.C.Width) - obj.W
	if level := currentLevel(e); level != nil {
		maxX = float64(level.Width) - obj.W
	}
	obj.X = math.Max(0, math.Min(obj.X, maxX))
	obj.Update()
}

// groundLevel is the y of the ground surface for the current level.
func groundLevel(e *ecs.ECS) float64 {
	if level := currentLevel(e); level != nil {
		return level.GroundY
	}
	return cfg.GroundY()
}
