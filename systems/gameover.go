package systems

import (
	"fmt"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateScreenMenu creates the two-option menu shared by the game over,
// level complete and victory screens.
func NewUpdateScreenMenu(onSelect func(components.ScreenOption)) ecs.System {
	return func(e *ecs.ECS) {
		screenMenu := GetOrCreateScreenMenu(e)
		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.ScreenMainMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			screenMenu.SelectedOption = components.ScreenOption(
				(int(screenMenu.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			screenMenu.SelectedOption = components.ScreenOption(
				(int(screenMenu.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			if onSelect != nil {
				onSelect(screenMenu.SelectedOption)
			}
		}
	}
}

// NewDrawScreen returns a renderer for a result screen laid out by layout.
func NewDrawScreen(layout cfg.ScreenConfig) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screenMenu := GetOrCreateScreenMenu(e)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			layout.BackgroundColor,
			false,
		)

		titleFont := fonts.Title.Get()
		text.Draw(screen, layout.Title, titleFont, centerTextX(layout.Title, titleFont, width), int(layout.TitleY), layout.TitleColor)

		scoreFont := fonts.Regular.Get()
		score := fmt.Sprintf("SCORE %d", screenMenu.Score)
		text.Draw(screen, score, scoreFont, centerTextX(score, scoreFont, width), int(layout.ScoreY), layout.TextColor)

		menuFont := fonts.Bold.Get()
		for i, option := range layout.MenuOptions {
			y := layout.MenuStartY + float64(i)*(layout.MenuItemHeight+layout.MenuItemGap)

			textColor := layout.TextColor
			if components.ScreenOption(i) == screenMenu.SelectedOption {
				textColor = layout.TextColorSelected
			}

			text.Draw(screen, option, menuFont, centerTextX(option, menuFont, width), int(y)+int(layout.MenuItemHeight), textColor)
		}
	}
}

// GetOrCreateScreenMenu returns the singleton ScreenMenu component, creating if needed
func GetOrCreateScreenMenu(e *ecs.ECS) *components.ScreenMenuData {
	entry, ok := components.ScreenMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.ScreenMenu))
	}
	return components.ScreenMenu.Get(entry)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
