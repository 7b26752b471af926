package components

import (
	"github.com/automoto/arcade-shooter/assets/animations"
	"github.com/automoto/arcade-shooter/config"
	"github.com/yohamta/donburi"
)

// AnimationData holds one clip and one sheet key per state, built at spawn.
type AnimationData struct {
	Clips        map[config.StateID]*animations.Clip
	Sheets       map[config.StateID]string
	CurrentSheet config.StateID
	FrameWidth   int
	FrameHeight  int
}

// SetState selects the clip for state, restarting it only when the state changes.
func (a *AnimationData) SetState(state config.StateID) {
	if a.CurrentSheet == state {
		return
	}
	a.CurrentSheet = state
	if clip, ok := a.Clips[state]; ok {
		clip.Restart()
	}
}

// Current returns the active clip, or nil when the state has none.
func (a *AnimationData) Current() *animations.Clip {
	return a.Clips[a.CurrentSheet]
}

// Sheet returns the sprite-sheet key of the active clip.
func (a *AnimationData) Sheet() string {
	return a.Sheets[a.CurrentSheet]
}

// Frame returns the sheet frame shown, 0 when no clip is active.
func (a *AnimationData) Frame() int {
	if clip := a.Current(); clip != nil {
		return clip.Frame()
	}
	return 0
}

var Animation = donburi.NewComponentType[AnimationData]()
