package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction  float64 // facing, config.DirectionLeft or config.DirectionRight
	Moving     bool
	Jumping    bool
	OnPlatform bool

	// AttackCooldown is set when an attack starts and cleared only when the
	// attack clip completes.
	AttackCooldown bool
	// HitApplied guards the single damage pass of the current attack.
	HitApplied bool
}

var Player = donburi.NewComponentType[PlayerData]()
