package systems

import (
	"github.com/automoto/arcade-shooter/components"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// currentLevel returns the loaded level, or nil before a level is built.
func currentLevel(e *ecs.ECS) *leveldata.Level {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry).CurrentLevel
}

func levelEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Level.First(e.World)
}

// GetSession returns the run state of the current level, or nil.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := levelEntry(e)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// Score is the running score, 0 when no level is loaded.
func Score(e *ecs.ECS) int {
	if session := GetSession(e); session != nil {
		return session.Score
	}
	return 0
}

// GameOverDue reports whether the post-death delay has elapsed.
func GameOverDue(e *ecs.ECS) bool {
	session := GetSession(e)
	return session != nil && session.GameOverDue
}

// LevelReached reports whether the player reached the goal.
func LevelReached(e *ecs.ECS) bool {
	entry, ok := levelEntry(e)
	if !ok {
		return false
	}
	return components.LevelComplete.Get(entry).Reached
}
