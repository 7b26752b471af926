package systems

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/arcade-shooter/assets"
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFade         *gween.Tween
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("audio: preload %s: %v", id, err)
		}
	}
}

// UpdateAudio drains the queued commands into the audio context and steps
// any running music fade.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	updateFade()

	audioData := GetOrCreateAudio(e)
	for _, cmd := range audioData.Pending {
		applyAudioCommand(cmd)
	}
	audioData.Pending = audioData.Pending[:0]
}

func applyAudioCommand(cmd components.AudioCommand) {
	switch cmd.Kind {
	case components.PlayMusic:
		playMusic(cmd.Track, cmd.Offset)
	case components.StopMusic:
		stopMusic()
	case components.PauseMusic:
		if globalMusicPlayer != nil {
			globalMusicPlayer.Pause()
		}
	case components.ResumeMusic:
		if globalMusicPlayer != nil {
			globalMusicPlayer.Play()
		}
	case components.FadeOutMusic:
		if globalMusicPlayer != nil && globalFade == nil {
			seconds := float32(cfg.Audio.MusicFadeTicks) / float32(cfg.Timing.TPS)
			globalFade = gween.New(float32(globalMusicVolume), 0, seconds, ease.Linear)
		}
	case components.PlayEffect:
		playSFX(cmd.Effect)
	}
}

func updateFade() {
	if globalFade == nil {
		return
	}
	volume, done := globalFade.Update(1 / float32(cfg.Timing.TPS))
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(float64(volume))
	}
	if done {
		stopMusic()
	}
}

func playMusic(key string, offset float64) {
	// Already playing this music
	if globalMusicKey == key && globalFade == nil {
		return
	}

	path, ok := cfg.Sound.MusicPaths[key]
	if !ok {
		log.Printf("audio: unknown music track %q", key)
		return
	}

	stopMusic()

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	if offset > 0 {
		if err := player.SetPosition(time.Duration(offset * float64(time.Second))); err != nil {
			log.Printf("audio: seek %s: %v", key, err)
		}
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = key
}

func stopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = ""
	globalFade = nil
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// QueueAudio appends a command for the next UpdateAudio.
func QueueAudio(e *ecs.ECS, cmd components.AudioCommand) {
	audioData := GetOrCreateAudio(e)
	audioData.Pending = append(audioData.Pending, cmd)
}

// PlayMusic starts a looping track from the beginning.
func PlayMusic(e *ecs.ECS, track string) {
	PlayMusicAt(e, track, 0)
}

// PlayMusicAt starts a looping track at offset seconds.
func PlayMusicAt(e *ecs.ECS, track string, offset float64) {
	QueueAudio(e, components.AudioCommand{Kind: components.PlayMusic, Track: track, Offset: offset})
}

// FadeOutMusic fades the current track to silence, then stops it.
func FadeOutMusic(e *ecs.ECS) {
	QueueAudio(e, components.AudioCommand{Kind: components.FadeOutMusic})
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	QueueAudio(e, components.AudioCommand{Kind: components.StopMusic})
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	QueueAudio(e, components.AudioCommand{Kind: components.PauseMusic})
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	QueueAudio(e, components.AudioCommand{Kind: components.ResumeMusic})
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	QueueAudio(e, components.AudioCommand{Kind: components.PlayEffect, Effect: sound})
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Pending: make([]components.AudioCommand, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
