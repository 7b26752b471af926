package factory

import (
	"fmt"
	"math"

	"github.com/automoto/arcade-shooter/archetypes"
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyHitbox returns the configured combat rectangle.
func EnemyHitbox() components.HitboxData {
	return components.HitboxData{
		OffsetX: cfg.Enemy.HitboxOffsetX,
		OffsetY: cfg.Enemy.HitboxOffsetY,
		Width:   cfg.Enemy.HitboxWidth,
		Height:  cfg.Enemy.HitboxHeight,
	}
}

// ValidateHitbox reports an error when hb does not fit inside a w x h sprite.
func ValidateHitbox(hb components.HitboxData, w, h float64) error {
	if hb.OffsetX < 0 || hb.OffsetY < 0 || hb.Width <= 0 || hb.Height <= 0 ||
		hb.OffsetX+hb.Width > w || hb.OffsetY+hb.Height > h {
		return fmt.Errorf("hitbox %+v outside visual bounds %vx%v", hb, w, h)
	}
	return nil
}

// CreateEnemy spawns an enemy of kind at (x, y). Speed and health are scaled
// by the level multipliers.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, x, y, speedMult, healthMult float64) (*donburi.Entry, error) {
	if kind < 0 || kind >= cfg.EnemyKindCount {
		return nil, fmt.Errorf("unknown enemy kind %d", kind)
	}
	hitbox := EnemyHitbox()
	if err := ValidateHitbox(hitbox, cfg.Enemy.Width, cfg.Enemy.Height); err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	kindCfg := cfg.Enemy.Kinds[kind]
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Enemy.Width, cfg.Enemy.Height))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	health := int(math.Round(float64(kindCfg.Health) * healthMult))
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:        kind,
		Direction:   cfg.DirectionLeft,
		Speed:       kindCfg.Speed * speedMult,
		AttackRange: kindCfg.AttackRange,
		Points:      kindCfg.Points,
		Active:      true,
	})
	components.Hitbox.SetValue(enemy, hitbox)
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateWalking,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	animData := GenerateAnimations(kindCfg.SheetKey, cfg.EnemyClips, cfg.StateWalking, cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight)
	components.Animation.Set(enemy, animData)

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(enemy, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return enemy, nil
}
