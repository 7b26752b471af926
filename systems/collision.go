package systems

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// nearby returns the objects tagged tag sharing a space cell with obj
// shifted by (dx, dy). The space is only a broad phase; callers apply the
// exact test.
func nearby(obj *resolv.Object, dx, dy float64, tag string) []*resolv.Object {
	if check := obj.Check(dx, dy, tag); check != nil {
		return check.Objects
	}
	return nil
}

// overlaps is a strict AABB test.
func overlaps(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W &&
		a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

// landsOn reports whether a body falling at speedY comes to rest on platform:
// strict horizontal overlap, feet within the landing band below the top and
// not moving up.
func landsOn(body, platform *resolv.Object, speedY float64) bool {
	feet := body.Y + body.H
	return body.X+body.W > platform.X &&
		body.X < platform.X+platform.W &&
		feet >= platform.Y &&
		feet <= platform.Y+cfg.Physics.LandingBand &&
		speedY >= 0
}

// resolvePlatformLanding snaps the player onto the first platform it lands on.
func resolvePlatformLanding(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	player.OnPlatform = false
	for _, platform := range nearby(obj, 0, cfg.Physics.LandingBand, tags.ResolvSolid) {
		if !landsOn(obj, platform, physics.SpeedY) {
			continue
		}
		obj.Y = platform.Y - obj.H
		physics.SpeedY = 0
		player.OnPlatform = true
		player.Jumping = false
		obj.Update()
		return
	}
}

// collectHearts marks every touched heart collected and restores full health.
func collectHearts(e *ecs.ECS, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry).Object
	health := components.Health.Get(playerEntry)

	for _, heartObj := range nearby(obj, 0, 0, tags.ResolvHeart) {
		heartEntry, ok := heartObj.Data.(*donburi.Entry)
		if !ok || !heartEntry.Valid() {
			continue
		}
		heart := components.Heart.Get(heartEntry)
		if heart.Collected || !overlaps(obj, heartObj) {
			continue
		}
		heart.Collected = true
		health.Restore(cfg.Heart.RestoreTo)
		PlaySFX(e, cfg.SoundHeart)
	}
}

// activePitAt returns the active pit whose x-range contains x.
func activePitAt(e *ecs.ECS, x float64) (*resolv.Object, bool) {
	var found *resolv.Object
	tags.Pit.Each(e.World, func(entry *donburi.Entry) {
		if found != nil || !components.Pit.Get(entry).Active {
			return
		}
		obj := components.Object.Get(entry).Object
		if x >= obj.X && x <= obj.X+obj.W {
			found = obj
		}
	})
	return found, found != nil
}

func overActivePit(e *ecs.ECS, x float64) bool {
	_, ok := activePitAt(e, x)
	return ok
}
