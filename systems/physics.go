package systems

import (
	"math"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity for the player, then resolves platform
// landing, heart pickups, pits and the ground, in that order.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayerPhysics(ecs, e)
	})
}

func updatePlayerPhysics(e *ecs.ECS, playerEntry *donburi.Entry) {
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	physics.SpeedY = math.Min(physics.SpeedY+cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
	obj.Y += physics.SpeedY
	obj.Update()

	resolvePlatformLanding(playerEntry)

	dead := components.State.Get(playerEntry).CurrentState == cfg.StateDead
	if !dead {
		collectHearts(e, playerEntry)
	}

	groundY := groundLevel(e)
	centerX := obj.X + obj.W/2
	overPit := overActivePit(e, centerX)

	if overPit && !dead && obj.Y+obj.H >= groundY {
		components.Health.Get(playerEntry).Current = 0
		killPlayer(e, playerEntry)
	}

	if !overPit && obj.Y+obj.H >= groundY {
		player := components.Player.Get(playerEntry)
		obj.Y = groundY - obj.H
		physics.SpeedY = 0
		player.Jumping = false
		player.OnPlatform = false
		obj.Update()
	}
}
