package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/arcade-shooter/assets"
	"github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/fonts"
	"github.com/automoto/arcade-shooter/gamestate"
	"github.com/automoto/arcade-shooter/scenes"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game swaps scenes as the state machine moves between screens.
type Game struct {
	bounds  image.Rectangle
	scene   Scene
	machine *gamestate.Machine
	levels  []leveldata.Level
	skipped bool
}

func NewGame(levels []leveldata.Level) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		levels: levels,
	}
	g.machine = gamestate.New(len(levels), g)
	g.scene = scenes.NewLoadingScene(g.machine)
	return g
}

// EnterLevel implements gamestate.Listener.
func (g *Game) EnterLevel(index, score int) {
	g.scene = scenes.NewPlatformerScene(g.machine, &g.levels[index], len(g.levels), score)
}

// EnterScreen implements gamestate.Listener.
func (g *Game) EnterScreen(state gamestate.State) {
	switch state {
	case gamestate.Loading:
		g.scene = scenes.NewLoadingScene(g.machine)
	case gamestate.MainMenu:
		if config.Debug.SkipMenu && !g.skipped {
			g.skipped = true
			g.machine.StartGame()
			return
		}
		g.scene = scenes.NewMenuScene(g.machine)
	case gamestate.Instructions:
		g.scene = scenes.NewInstructionsScene(g.machine)
	case gamestate.Credits:
		g.scene = scenes.NewCreditsScene(g.machine)
	case gamestate.GameOver:
		g.scene = scenes.NewGameOverScene(g.machine, g.machine.Score())
	case gamestate.LevelComplete:
		g.scene = scenes.NewLevelCompleteScene(g.machine, g.machine.Score())
	case gamestate.Victory:
		g.scene = scenes.NewVictoryScene(g.machine, g.machine.Score())
	case gamestate.Playing, gamestate.Paused:
		// The level scene stays and draws its own pause overlay.
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start the first level directly")
	flag.BoolVar(&config.Debug.Hitboxes, "debug", false, "outline collision objects and hitboxes")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, damage flash disabled: %v", err)
	}
	levels := assets.MustLoadLevels()

	ebiten.SetTPS(config.Timing.TPS)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(levels)); err != nil {
		log.Fatal(err)
	}
}
