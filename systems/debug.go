package systems

import (
	"image/color"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// debugColor picks the outline colour for a collision object.
func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{100, 100, 100, 255} // Grey
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255} // Blue
	case obj.HasTags(tags.ResolvEnemy):
		return color.RGBA{255, 0, 0, 255} // Red
	case obj.HasTags(tags.ResolvPit):
		return color.RGBA{255, 128, 0, 255}
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}

// DrawDebug outlines every collision object in view, the enemy hitboxes and
// the player's attack reach. It only draws when cfg.Debug.Hitboxes is set.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	camX := cameraX(ecs)
	viewW := float64(screen.Bounds().Dx())

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < camX || obj.X > camX+viewW {
				continue
			}
			strokeRect(screen, obj.X-camX, obj.Y, obj.W, obj.H, debugColor(obj))
		}
	}

	hitbox := color.RGBA{255, 255, 0, 255}
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Active {
			return
		}
		obj := components.Object.Get(entry)
		hb := components.Hitbox.Get(entry)
		x, y := hb.Origin(obj.X, obj.Y)
		strokeRect(screen, x-camX, y, hb.Width, hb.Height, hitbox)
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(playerEntry)
		reach := cfg.Combat.PlayerAttackRange
		strokeRect(screen, obj.X-reach-camX, obj.Y, reach*2, obj.H, color.RGBA{0, 255, 0, 255})
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
