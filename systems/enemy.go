package systems

import (
	"math"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the AI of every active enemy, then applies pit falls,
// culling behind the camera and death scoring.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	camX := cameraX(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if !enemy.Active {
			return
		}

		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown--
		}

		if hasPlayer {
			updateEnemyAI(ecs, e, playerEntry)
		}

		checkEnemyPit(ecs, e)

		obj := components.Object.Get(e)
		if obj.X+obj.W < camX-cfg.Enemy.CullMargin {
			enemy.Active = false
		}

		checkEnemyDeath(ecs, e)
	})
}

func updateEnemyAI(e *ecs.ECS, enemyEntry, playerEntry *donburi.Entry) {
	state := components.State.Get(enemyEntry)
	if state.CurrentState == cfg.StateDead {
		return
	}

	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)
	hitbox := components.Hitbox.Get(enemyEntry)
	playerObj := components.Object.Get(playerEntry)

	hx, hy := hitbox.Origin(obj.X, obj.Y)
	dx := playerObj.X - hx
	dy := playerObj.Y - hy
	distance := math.Hypot(dx, dy)
	exempt := isPlayerAbove(playerObj.Y+playerObj.H, hy, dx)

	switch {
	case distance <= enemy.AttackRange && state.CurrentState != cfg.StateAttacking && !exempt:
		setEnemyState(enemyEntry, cfg.StateAttacking)
	case distance > enemy.AttackRange && state.CurrentState != cfg.StateWalking:
		setEnemyState(enemyEntry, cfg.StateWalking)
	}

	switch state.CurrentState {
	case cfg.StateWalking:
		if dx != 0 {
			enemy.Direction = math.Copysign(1, dx)
			obj.X += enemy.Speed * enemy.Direction
			obj.Update()
		}
	case cfg.StateAttacking:
		if enemy.AttackCooldown == 0 && !exempt {
			hitPlayer(e, playerEntry)
			enemy.AttackCooldown = cfg.Enemy.AttackCooldownTicks
		}
	}
}

// isPlayerAbove reports whether a player whose feet are at playerFeet is
// standing over a hitbox whose top is hitboxTop, at horizontal separation dx.
func isPlayerAbove(playerFeet, hitboxTop, dx float64) bool {
	return playerFeet < hitboxTop && math.Abs(dx) < cfg.Enemy.PlayerAboveRange
}

func setEnemyState(e *donburi.Entry, state cfg.StateID) {
	components.State.Get(e).Set(state)
	components.Animation.Get(e).SetState(state)
}

// hitPlayer applies one enemy hit. A dead player takes no damage.
func hitPlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	state := components.State.Get(playerEntry)
	if state.CurrentState == cfg.StateDead {
		return
	}

	health := components.Health.Get(playerEntry)
	health.Damage(cfg.Enemy.AttackDamage)
	PlaySFX(e, cfg.SoundHit)
	flash(playerEntry)
	TriggerScreenShake(e, cfg.Combat.HitShakeIntensity, cfg.Combat.HitShakeTicks)

	if health.Current <= 0 {
		killPlayer(e, playerEntry)
		return
	}
	PlaySFX(e, cfg.SoundPlayerHurt)
}

// checkEnemyPit drops an enemy standing over an active pit.
func checkEnemyPit(e *ecs.ECS, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)
	hitbox := components.Hitbox.Get(enemyEntry)

	hx, _ := hitbox.Origin(obj.X, obj.Y)
	pit, ok := activePitAt(e, hx+hitbox.Width/2)
	if !ok {
		return
	}
	if math.Abs(obj.Y+obj.H-pit.Y) > cfg.Enemy.PitFloorTolerance {
		return
	}
	obj.Y += cfg.Enemy.PitNudge
	obj.Update()
	enemy.Active = false
}

// checkEnemyDeath moves an enemy at zero health into the dead state and
// awards its points exactly once.
func checkEnemyDeath(e *ecs.ECS, enemyEntry *donburi.Entry) bool {
	enemy := components.Enemy.Get(enemyEntry)
	state := components.State.Get(enemyEntry)
	if components.Health.Get(enemyEntry).Current > 0 || state.CurrentState == cfg.StateDead {
		return false
	}

	setEnemyState(enemyEntry, cfg.StateDead)
	if !enemy.Scored {
		enemy.Scored = true
		if session := GetSession(e); session != nil {
			session.Score += enemy.Points
		}
	}
	PlaySFX(e, cfg.SoundEnemyDeath)
	return true
}

// flash tints a sprite briefly.
func flash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	f := components.Flash.Get(e)
	f.Duration = cfg.Combat.HitFlashTicks
	f.R, f.G, f.B = 1, 0.2, 0.2
}
