package components

import (
	"github.com/automoto/arcade-shooter/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind      config.EnemyKind
	Direction float64

	// Stats after level multipliers
	Speed       float64
	AttackRange float64
	Points      int

	AttackCooldown int  // ticks until the enemy may hit again
	Active         bool // false once culled or fallen; removed at end of tick
	Scored         bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
