package config

// ClipDef describes one animation clip: the sheet frame indices to show in
// order, the per-tick accumulator increment and whether it wraps.
type ClipDef struct {
	Frames []int
	Speed  float64
	Loop   bool
}

func frameRange(n int) []int {
	frames := make([]int, n)
	for i := range frames {
		frames[i] = i
	}
	return frames
}

// PlayerClips is the player's state-to-clip table.
var PlayerClips = map[StateID]ClipDef{
	StateIdle:      {Frames: []int{0}, Speed: 0, Loop: true},
	StateWalking:   {Frames: frameRange(7), Speed: 0.1, Loop: true},
	StateAttacking: {Frames: frameRange(5), Speed: 0.15, Loop: false},
	StateDead:      {Frames: frameRange(4), Speed: 0.1, Loop: false},
}

// EnemyClips is shared by every enemy kind; kinds differ only in sheet art.
var EnemyClips = map[StateID]ClipDef{
	StateWalking:   {Frames: frameRange(12), Speed: 0.1, Loop: true},
	StateAttacking: {Frames: frameRange(5), Speed: 0.15, Loop: false},
	StateDead:      {Frames: frameRange(5), Speed: 0.1, Loop: false},
}

// SheetName returns the sprite sheet key for an owner and state,
// e.g. "player/walking".
func SheetName(owner string, state StateID) string {
	return owner + "/" + state.String()
}
