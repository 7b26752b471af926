package systems

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/automoto/arcade-shooter/assets"
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// Drawable is one animated sprite as the renderer sees it, in world units.
type Drawable struct {
	X, Y, W, H float64
	FlipX      bool
	Sheet      string
	Frame      int
	FrameW     int
	FrameH     int
	Flash      *components.FlashData
}

// RenderSnapshot lists the animated entities to draw this frame, enemies
// first so the player is drawn on top.
func RenderSnapshot(e *ecs.ECS) []Drawable {
	var out []Drawable
	add := func(entry *donburi.Entry, facing float64) {
		obj := components.Object.Get(entry)
		anim := components.Animation.Get(entry)
		d := Drawable{
			X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
			FlipX:  facing < 0,
			Sheet:  anim.Sheet(),
			Frame:  anim.Frame(),
			FrameW: anim.FrameWidth,
			FrameH: anim.FrameHeight,
		}
		// Dying entities keep their death pose untinted.
		if entry.HasComponent(components.Flash) && !entry.HasComponent(components.Death) {
			if f := components.Flash.Get(entry); f.Duration > 0 {
				d.Flash = f
			}
		}
		out = append(out, d)
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Active {
			add(entry, components.Enemy.Get(entry).Direction)
		}
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		add(entry, components.Player.Get(entry).Direction)
	})
	return out
}

// DrawWorld renders the level behind the HUD: sky, clouds, ground with
// pits cut out, platforms, pickups, the goal flag and the characters.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	level := currentLevel(e)
	if level == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	offX := -camera.Position.X + camera.Shake.X
	offY := -camera.Position.Y + camera.Shake.Y
	width := float64(screen.Bounds().Dx())

	screen.Fill(level.Theme.Sky)

	cloudImg := assets.Image("cloud")
	tags.Cloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		// Clouds scroll at half speed for parallax.
		x := cloud.X - camera.Position.X*0.5
		if x > width || x+cfg.Cloud.Width*cloud.Scale < 0 {
			return
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(cfg.Cloud.Width*cloud.Scale/float64(cloudImg.Bounds().Dx()), cfg.Cloud.Height*cloud.Scale/float64(cloudImg.Bounds().Dy()))
		drawOp.GeoM.Translate(x, cloud.Y)
		drawOp.ColorScale.ScaleAlpha(cfg.Cloud.Alpha)
		screen.DrawImage(cloudImg, drawOp)
	})

	drawGround(e, screen, level.GroundY, float64(level.Width), level.Theme.Ground, offX, offY)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.FillRect(screen, float32(obj.X+offX), float32(obj.Y+offY), float32(obj.W), float32(obj.H), level.Theme.Ground, false)
	})

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Heart) && components.Heart.Get(entry).Collected {
			return
		}
		obj := components.Object.Get(entry)
		img := assets.Image(components.Sprite.Get(entry).Key)
		drawStretched(screen, img, obj.X+offX, obj.Y+offY, obj.W, obj.H, false)
	})

	for _, d := range RenderSnapshot(e) {
		drawCharacter(screen, d, offX, offY)
	}
}

// drawGround fills the ground strip, leaving gaps over active pits.
func drawGround(e *ecs.ECS, screen *ebiten.Image, groundY, levelWidth float64, ground color.Color, offX, offY float64) {
	height := float64(screen.Bounds().Dy()) - (groundY + offY)

	x := 0.0
	var gaps [][2]float64
	tags.Pit.Each(e.World, func(entry *donburi.Entry) {
		if !components.Pit.Get(entry).Active {
			return
		}
		obj := components.Object.Get(entry)
		gaps = append(gaps, [2]float64{obj.X, obj.X + obj.W})
	})
	slices.SortFunc(gaps, func(a, b [2]float64) int { return cmp.Compare(a[0], b[0]) })

	for _, gap := range gaps {
		if gap[0] > x {
			vector.FillRect(screen, float32(x+offX), float32(groundY+offY), float32(gap[0]-x), float32(height), ground, false)
		}
		if gap[1] > x {
			x = gap[1]
		}
	}
	if x < levelWidth {
		vector.FillRect(screen, float32(x+offX), float32(groundY+offY), float32(levelWidth-x), float32(height), ground, false)
	}
}

func drawCharacter(screen *ebiten.Image, d Drawable, offX, offY float64) {
	sheet := assets.Image(d.Sheet)
	var frame *ebiten.Image
	if assets.IsFallback(sheet) {
		frame = sheet
	} else {
		sx := d.Frame * d.FrameW
		frame = sheet.SubImage(image.Rect(sx, 0, sx+d.FrameW, d.FrameH)).(*ebiten.Image)
	}

	if d.Flash != nil && assets.TintShader != nil {
		drawTinted(screen, frame, d, offX, offY)
		return
	}
	drawStretched(screen, frame, d.X+offX, d.Y+offY, d.W, d.H, d.FlipX)
}

// drawStretched draws img scaled to fill a w×h box at (x, y).
func drawStretched(screen, img *ebiten.Image, x, y, w, h float64, flipX bool) {
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if flipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(b.Dx()), 0)
	}
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// drawTinted renders a frame through the tint shader into the box of d.
func drawTinted(screen, frame *ebiten.Image, d Drawable, offX, offY float64) {
	b := frame.Bounds()
	shaderOp.GeoM.Reset()
	if d.FlipX {
		shaderOp.GeoM.Scale(-1, 1)
		shaderOp.GeoM.Translate(float64(b.Dx()), 0)
	}
	shaderOp.GeoM.Scale(d.W/float64(b.Dx()), d.H/float64(b.Dy()))
	shaderOp.GeoM.Translate(d.X+offX, d.Y+offY)
	shaderOp.Images[0] = frame
	shaderOp.Uniforms = map[string]any{
		"TintColor": []float32{d.Flash.R, d.Flash.G, d.Flash.B, 1},
		"Strength":  float32(d.Flash.Duration) / float32(cfg.Combat.HitFlashTicks),
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}
