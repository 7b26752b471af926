package systems

import (
	"fmt"
	"math"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/fonts"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HUD is the read-only view of the run shown over gameplay.
type HUD struct {
	Score          int
	HealthPercent  float64
	ActiveEnemies  int
	LevelIndex     int
	LevelCount     int
	DistanceToGoal float64
}

// HUDSnapshot reads the current HUD values from the world.
func HUDSnapshot(e *ecs.ECS) HUD {
	hud := HUD{Score: Score(e)}

	if entry, ok := levelEntry(e); ok {
		level := components.Level.Get(entry)
		hud.LevelIndex = level.LevelIndex
		hud.LevelCount = level.LevelCount
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Active && components.State.Get(entry).CurrentState != cfg.StateDead {
			hud.ActiveEnemies++
		}
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return hud
	}
	hud.HealthPercent = components.Health.Get(playerEntry).Percent()
	if goalX, ok := goalLine(e); ok {
		obj := components.Object.Get(playerEntry)
		hud.DistanceToGoal = math.Max(0, goalX-(obj.X+obj.W/2))
	}
	return hud
}

// DrawHUD renders the health bar, score and progress in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := HUDSnapshot(ecs)
	margin := float32(cfg.HUD.Margin)
	barW := float32(cfg.HUD.HealthBarWidth)
	barH := float32(cfg.HUD.HealthBarHeight)

	// Background
	vector.FillRect(screen, margin, margin, barW, barH, cfg.HUD.BarBgColor, false)

	// Current HP
	barColor := cfg.HUD.BarColor
	if hud.HealthPercent <= float64(cfg.HUD.LowHealth) {
		barColor = cfg.HUD.BarLowColor
	}
	ratio := float32(hud.HealthPercent / 100)
	vector.FillRect(screen, margin, margin, barW*ratio, barH, barColor, false)

	face := fonts.Regular.Get()
	lineY := int(margin+barH) + 18
	text.Draw(screen, fmt.Sprintf("SCORE %d", hud.Score), face, int(margin), lineY, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("LEVEL %d/%d", hud.LevelIndex+1, hud.LevelCount), face, int(margin), lineY+18, cfg.HUD.TextColor)

	right := fmt.Sprintf("ENEMIES %d   GOAL %dm", hud.ActiveEnemies, int(hud.DistanceToGoal/100))
	width := float64(screen.Bounds().Dx())
	bounds := text.BoundString(face, right)
	text.Draw(screen, right, face, int(width)-bounds.Dx()-int(margin), int(margin)+14, cfg.HUD.TextColor)
}
