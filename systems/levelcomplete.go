package systems

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelComplete flags the level as reached on the first tick the
// player's center is at or past the goal line.
func UpdateLevelComplete(e *ecs.ECS) {
	levelEntry, ok := levelEntry(e)
	if !ok {
		return
	}
	complete := components.LevelComplete.Get(levelEntry)
	if complete.Reached {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || components.State.Get(playerEntry).CurrentState == cfg.StateDead {
		return
	}

	goalX, ok := goalLine(e)
	if !ok {
		return
	}

	obj := components.Object.Get(playerEntry)
	if obj.X+obj.W/2 >= goalX {
		complete.Reached = true
		PlaySFX(e, cfg.SoundLevelComplete)
	}
}

// goalLine is the x of the level's goal entity, falling back to the level data.
func goalLine(e *ecs.ECS) (float64, bool) {
	if goalEntry, ok := tags.Goal.First(e.World); ok {
		return components.Goal.Get(goalEntry).X, true
	}
	if level := currentLevel(e); level != nil {
		return level.GoalX, true
	}
	return 0, false
}
