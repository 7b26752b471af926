package components

import (
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
	Primed          bool // set once the first device poll has filled both buffers
}

var Input = donburi.NewComponentType[InputData]()

// IntentData is everything gameplay knows about the controls: whether the
// player wants to move and which way, plus one-shot jump and attack requests.
type IntentData struct {
	Moving        bool
	Direction     float64
	JumpPending   bool
	AttackPending bool
}

var Intent = donburi.NewComponentType[IntentData]()
