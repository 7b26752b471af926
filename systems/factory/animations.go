package factory

import (
	"github.com/automoto/arcade-shooter/assets/animations"
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
)

// GenerateAnimations builds one clip per state from defs, with sheet keys
// resolved up front as "<owner>/<state>". The draw code never builds keys.
func GenerateAnimations(owner string, defs map[cfg.StateID]cfg.ClipDef, initial cfg.StateID, frameWidth, frameHeight int) *components.AnimationData {
	animData := &components.AnimationData{
		Clips:        make(map[cfg.StateID]*animations.Clip, len(defs)),
		Sheets:       make(map[cfg.StateID]string, len(defs)),
		CurrentSheet: initial,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
	}

	for state, def := range defs {
		animData.Clips[state] = animations.NewClip(def.Frames, def.Speed, def.Loop)
		animData.Sheets[state] = cfg.SheetName(owner, state)
	}

	return animData
}
