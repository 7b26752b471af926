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

// CreatePit creates an invisible hazard zone with no ground under it.
func CreatePit(ecs *ecs.ECS, pit leveldata.Pit) *donburi.Entry {
	entry := archetypes.Pit.Spawn(ecs)

	obj := resolv.NewObject(pit.X, pit.Y, pit.W, pit.H, tags.ResolvPit)
	obj.SetShape(resolv.NewRectangle(0, 0, pit.W, pit.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Pit.SetValue(entry, components.PitData{Active: pit.Active})
	addToSpace(ecs, obj)

	return entry
}
