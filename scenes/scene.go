package scenes

import (
	"github.com/automoto/arcade-shooter/systems"
	"github.com/yohamta/donburi/ecs"
)

// Flow is the part of the game state machine the scenes drive.
type Flow interface {
	FinishLoading() bool
	ShowInstructions() bool
	ShowCredits() bool
	ShowMainMenu() bool
	StartGame() bool
	Retry() bool
	TogglePause() bool
	GameOver(score int) bool
	CompleteLevel(score int) bool
	NextLevel() bool
	Running() bool
}

// newSceneECS returns a world with the systems every scene runs first.
func newSceneECS(e *ecs.ECS) *ecs.ECS {
	// Audio system (runs first to initialize audio context)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	return e
}
