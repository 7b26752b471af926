package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene is a full-screen result page with a primary action and a
// return to the main menu.
type ResultScene struct {
	ecs     *ecs.ECS
	flow    Flow
	layout  cfg.ScreenConfig
	score   int
	music   string
	primary func() bool
	once    sync.Once
}

// NewGameOverScene offers a retry of the level that was lost.
func NewGameOverScene(flow Flow, score int) *ResultScene {
	return &ResultScene{flow: flow, layout: cfg.GameOver, score: score, music: cfg.Sound.GameOverMusic, primary: flow.Retry}
}

// NewLevelCompleteScene continues to the next level, or to Victory.
func NewLevelCompleteScene(flow Flow, score int) *ResultScene {
	return &ResultScene{flow: flow, layout: cfg.LevelComplete, score: score, primary: flow.NextLevel}
}

// NewVictoryScene starts a fresh run.
func NewVictoryScene(flow Flow, score int) *ResultScene {
	return &ResultScene{flow: flow, layout: cfg.Victory, score: score, music: cfg.Sound.MenuMusic, primary: flow.StartGame}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultScene) onSelect(option components.ScreenOption) {
	// Flush the selection sound before the scene is replaced.
	systems.StopMusic(rs.ecs)
	systems.UpdateAudio(rs.ecs)

	switch option {
	case components.ScreenPrimary:
		rs.primary()
	case components.ScreenMainMenu:
		rs.flow.ShowMainMenu()
	}
}

func (rs *ResultScene) configure() {
	rs.ecs = newSceneECS(ecs.NewECS(donburi.NewWorld()))

	systems.GetOrCreateScreenMenu(rs.ecs).Score = rs.score

	rs.ecs.AddSystem(systems.NewUpdateScreenMenu(rs.onSelect))
	rs.ecs.AddRenderer(cfg.Default, systems.NewDrawScreen(rs.layout))

	if rs.music != "" {
		systems.PlayMusic(rs.ecs, rs.music)
	}
}
