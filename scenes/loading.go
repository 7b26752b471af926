package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/arcade-shooter/assets"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/fonts"
	"github.com/automoto/arcade-shooter/systems"
	"github.com/automoto/arcade-shooter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// LoadingScene warms the asset caches, holds for a short beat and then
// hands over to the main menu.
type LoadingScene struct {
	flow  Flow
	ticks int
	once  sync.Once
}

func NewLoadingScene(flow Flow) *LoadingScene {
	return &LoadingScene{flow: flow}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.preload)

	ls.ticks++
	if ls.ticks >= cfg.Timing.LoadingTicks {
		ls.flow.FinishLoading()
	}
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	face := fonts.Bold.Get()
	msg := "LOADING..."
	bounds := text.BoundString(face, msg)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, screen.Bounds().Dy()/2, cfg.White)
}

// preload decodes every sprite sheet and sound effect the levels use.
func (ls *LoadingScene) preload() {
	systems.PreloadAllSFX()

	keys := []string{factory.HeartSprite, factory.GoalSprite, "cloud"}
	for state := range cfg.PlayerClips {
		keys = append(keys, cfg.SheetName(factory.PlayerSheetOwner, state))
	}
	for _, kind := range cfg.Enemy.Kinds {
		for state := range cfg.EnemyClips {
			keys = append(keys, cfg.SheetName(kind.SheetKey, state))
		}
	}
	assets.PreloadImages(keys)
}
