package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundAttack
	SoundHit
	SoundPlayerHurt
	SoundEnemyDeath
	SoundPlayerDeath
	// Movement and pickups
	SoundJump
	SoundHeart
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundLevelComplete
)

func (s SoundID) String() string {
	switch s {
	case SoundAttack:
		return "attack"
	case SoundHit:
		return "hit"
	case SoundPlayerHurt:
		return "player-hurt"
	case SoundEnemyDeath:
		return "enemy-death"
	case SoundPlayerDeath:
		return "player-death"
	case SoundJump:
		return "jump"
	case SoundHeart:
		return "heart"
	case SoundMenuNavigate:
		return "menu-navigate"
	case SoundMenuSelect:
		return "menu-select"
	case SoundLevelComplete:
		return "level-complete"
	default:
		return "none"
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFadeTicks  int // ticks for music fade out (60 = 1 second)
}

// SoundConfig maps sound IDs and music tracks to file paths
type SoundConfig struct {
	MenuMusic         string
	GameOverMusic     string
	MusicPaths        map[string]string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
		MusicFadeTicks:  60,
	}

	Sound = SoundConfig{
		MenuMusic:     "menu",
		GameOverMusic: "gameover",
		MusicPaths: map[string]string{
			"menu":     "audio/music/menu.wav",
			"gameover": "audio/music/gameover.wav",
			"meadow":   "audio/music/meadow.wav",
			"canyon":   "audio/music/canyon.wav",
			"dusk":     "audio/music/dusk.wav",
		},
		SFXPaths: map[SoundID]string{
			SoundAttack:        "audio/sfx/attack.wav",
			SoundHit:           "audio/sfx/hit.wav",
			SoundPlayerHurt:    "audio/sfx/player_hurt.wav",
			SoundEnemyDeath:    "audio/sfx/enemy_death.wav",
			SoundPlayerDeath:   "audio/sfx/player_death.wav",
			SoundJump:          "audio/sfx/jump.wav",
			SoundHeart:         "audio/sfx/heart.wav",
			SoundMenuNavigate:  "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:    "audio/sfx/menu_select.wav",
			SoundLevelComplete: "audio/sfx/level_complete.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:          1.5,
			SoundMenuNavigate: 0.6,
		},
	}
}
