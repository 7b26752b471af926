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

func CreatePlatform(ecs *ecs.ECS, rect leveldata.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	object := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
	object.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	return platform
}
