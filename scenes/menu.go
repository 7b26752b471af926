package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs  *ecs.ECS
	flow Flow
	once sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(flow Flow) *MenuScene {
	return &MenuScene{flow: flow}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) onSelect(option components.MainMenuOption) {
	switch option {
	case components.MainMenuStart:
		systems.StopMusic(ms.ecs)
		ms.flow.StartGame()
	case components.MainMenuInstructions:
		ms.flow.ShowInstructions()
	case components.MainMenuCredits:
		ms.flow.ShowCredits()
	case components.MainMenuExit:
		os.Exit(0)
	}
}

func (ms *MenuScene) configure() {
	ms.ecs = newSceneECS(ecs.NewECS(donburi.NewWorld()))

	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.onSelect))
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	// Start menu music
	systems.PlayMusic(ms.ecs, cfg.Sound.MenuMusic)
}
