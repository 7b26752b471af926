package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Heart    = donburi.NewTag().SetName("Heart")
	Pit      = donburi.NewTag().SetName("Pit")
	Goal     = donburi.NewTag().SetName("Goal")
	Cloud    = donburi.NewTag().SetName("Cloud")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHeart  = "heart"
	ResolvPit    = "pit"
	ResolvGoal   = "goal"
)
