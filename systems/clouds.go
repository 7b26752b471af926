package systems

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClouds drifts the background clouds left, wrapping them to the far
// edge of the level once they leave it.
func UpdateClouds(ecs *ecs.ECS) {
	levelWidth := float64(cfg.C.Width)
	if level := currentLevel(ecs); level != nil {
		levelWidth = float64(level.Width)
	}

	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		cloud.X -= cloud.Speed
		if cloud.X < -cfg.Cloud.Width*cloud.Scale {
			cloud.X = levelWidth
		}
	})
}
