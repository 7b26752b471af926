package archetypes

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Intent,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Hitbox,
		components.Object,
		components.Health,
		components.Animation,
		components.State,
		components.Flash,
	)
	Heart = newArchetype(
		tags.Heart,
		components.Heart,
		components.Object,
		components.Sprite,
	)
	Pit = newArchetype(
		tags.Pit,
		components.Pit,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
		components.Sprite,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Session,
		components.LevelComplete,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
