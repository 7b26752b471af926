package systems

import (
	"math"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves the player's attack. Damage lands once per attack,
// on the tick the attack clip shows the impact frame.
func UpdateCombat(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		resolvePlayerAttack(ecs, playerEntry)
	})
}

func resolvePlayerAttack(e *ecs.ECS, playerEntry *donburi.Entry) {
	state := components.State.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	if state.CurrentState != cfg.StateAttacking || player.HitApplied {
		return
	}

	anim := components.Animation.Get(playerEntry)
	if anim.Frame() != cfg.Combat.ImpactFrame {
		return
	}

	playerX := components.Object.Get(playerEntry).X
	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		if !enemy.Active || components.State.Get(enemyEntry).CurrentState == cfg.StateDead {
			return
		}

		obj := components.Object.Get(enemyEntry)
		hx, _ := components.Hitbox.Get(enemyEntry).Origin(obj.X, obj.Y)
		if math.Abs(playerX-hx) > cfg.Combat.PlayerAttackRange {
			return
		}

		components.Health.Get(enemyEntry).Damage(cfg.Combat.PlayerAttackDamage)
		flash(enemyEntry)
		checkEnemyDeath(e, enemyEntry)
	})

	player.HitApplied = true
	PlaySFX(e, cfg.SoundHit)
}
