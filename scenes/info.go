package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/systems"
	"github.com/automoto/arcade-shooter/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InfoScene shows the Instructions or Credits panel. The menu-back action
// (Backspace or gamepad B) or the Back button return to the main menu.
type InfoScene struct {
	ecsWorld *ecs.ECS
	flow     Flow
	infoUI   *ui.InfoUI
	title    string
	lines    []string
	once     sync.Once

	shouldGoBack bool
}

func NewInstructionsScene(flow Flow) *InfoScene {
	return &InfoScene{flow: flow, title: cfg.Info.InstructionsTitle, lines: cfg.Info.Instructions}
}

func NewCreditsScene(flow Flow) *InfoScene {
	return &InfoScene{flow: flow, title: cfg.Info.CreditsTitle, lines: cfg.Info.Credits}
}

func (s *InfoScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.infoUI.Update()

	if s.shouldGoBack {
		s.flow.ShowMainMenu()
	}
}

func (s *InfoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.infoUI == nil {
		return
	}
	s.infoUI.UI.Draw(screen)
}

func (s *InfoScene) configure() {
	s.ecsWorld = newSceneECS(ecs.NewECS(donburi.NewWorld()))
	s.ecsWorld.AddSystem(func(e *ecs.ECS) {
		input := systems.GetOrCreateInput(e)
		if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
			systems.PlaySFX(e, cfg.SoundMenuSelect)
			s.shouldGoBack = true
		}
	})

	s.infoUI = ui.NewInfoUI(s.title, s.lines, cfg.Info.BackLabel, func() {
		s.shouldGoBack = true
	})
}
