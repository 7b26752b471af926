package factory

import (
	"github.com/automoto/arcade-shooter/archetypes"
	"github.com/automoto/arcade-shooter/components"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Goal flag size and image key
const (
	GoalSprite = "flag"
	GoalWidth  = 60.0
	GoalHeight = 160.0
)

// CreateGoal places the goal flag with its pole at x, standing on groundY.
func CreateGoal(ecs *ecs.ECS, x, groundY float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(x, groundY-GoalHeight, GoalWidth, GoalHeight, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, GoalWidth, GoalHeight))
	obj.Data = goal
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	components.Goal.SetValue(goal, components.GoalData{X: x})
	components.Sprite.SetValue(goal, components.SpriteData{Key: GoalSprite})
	addToSpace(ecs, obj)

	return goal
}
