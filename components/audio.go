package components

import (
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/yohamta/donburi"
)

// AudioCommandKind is the closed set of fire-and-forget audio requests.
type AudioCommandKind int

const (
	PlayMusic AudioCommandKind = iota
	StopMusic
	PauseMusic
	ResumeMusic
	FadeOutMusic
	PlayEffect
)

func (k AudioCommandKind) String() string {
	switch k {
	case PlayMusic:
		return "play-music"
	case StopMusic:
		return "stop-music"
	case PauseMusic:
		return "pause-music"
	case ResumeMusic:
		return "resume-music"
	case FadeOutMusic:
		return "fade-out-music"
	case PlayEffect:
		return "play-effect"
	default:
		return "unknown"
	}
}

// AudioCommand is queued by gameplay and drained by the audio system.
type AudioCommand struct {
	Kind   AudioCommandKind
	Track  string  // music key for PlayMusic
	Offset float64 // start offset in seconds for PlayMusic
	Effect cfg.SoundID
}

// AudioData is the per-world audio queue (singleton component). Players and
// the audio context are process-wide and live in the audio system.
type AudioData struct {
	Pending []AudioCommand
}

var Audio = donburi.NewComponentType[AudioData]()
