package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/automoto/arcade-shooter/systems"
	"github.com/automoto/arcade-shooter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level. It reports death and goal to the flow
// once per run and draws the pause overlay while the flow is paused.
type PlatformerScene struct {
	ecs        *ecs.ECS
	flow       Flow
	level      *leveldata.Level
	levelCount int
	score      int
	once       sync.Once
	finished   bool
}

// NewPlatformerScene creates a scene for level, starting from score.
func NewPlatformerScene(flow Flow, level *leveldata.Level, levelCount, score int) *PlatformerScene {
	return &PlatformerScene{flow: flow, level: level, levelCount: levelCount, score: score}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.finished {
		return
	}

	// The flow owns the loop; the pause flag only mirrors it.
	systems.GetOrCreatePause(ps.ecs).IsPaused = !ps.flow.Running()
	ps.ecs.Update()

	switch {
	case systems.GameOverDue(ps.ecs):
		ps.finish()
		ps.flow.GameOver(systems.Score(ps.ecs))
	case systems.LevelReached(ps.ecs):
		ps.finish()
		ps.flow.CompleteLevel(systems.Score(ps.ecs))
	}
}

// finish stops the scene and plays whatever this last tick queued.
func (ps *PlatformerScene) finish() {
	ps.finished = true
	systems.UpdateAudio(ps.ecs)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) onPauseToggle(paused bool) {
	if paused == !ps.flow.Running() {
		return
	}
	ps.flow.TogglePause()
}

func (ps *PlatformerScene) onMainMenu() {
	ps.finished = true
	ps.flow.ShowMainMenu()
}

func (ps *PlatformerScene) configure() {
	ecs := newSceneECS(ecs.NewECS(donburi.NewWorld()))

	// Systems that always run
	ecs.AddSystem(systems.NewUpdatePause(ps.onPauseToggle, ps.onMainMenu))

	// Game systems wrapped with pause and level complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateIntent))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelComplete))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClouds))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	factory.CreateLevelWorld(ps.ecs, ps.level, ps.levelCount, ps.score)
	systems.UpdateCamera(ps.ecs)

	// Start level music
	systems.PlayMusic(ps.ecs, ps.level.Theme.Music)
}
