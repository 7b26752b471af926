package factory

import (
	"github.com/automoto/arcade-shooter/archetypes"
	"github.com/automoto/arcade-shooter/components"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HeartSprite is the image key of a heart pickup.
const HeartSprite = "heart"

func CreateHeart(ecs *ecs.ECS, rect leveldata.Rect) *donburi.Entry {
	heart := archetypes.Heart.Spawn(ecs)

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvHeart)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = heart
	components.Object.SetValue(heart, components.ObjectData{Object: obj})
	components.Heart.SetValue(heart, components.HeartData{})
	components.Sprite.SetValue(heart, components.SpriteData{Key: HeartSprite})
	addToSpace(ecs, obj)

	return heart
}
