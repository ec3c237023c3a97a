package systems

import (
	"fmt"
	"sort"
	"sync"

	"github.com/automoto/monkeyfever/assets"
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Sound plays fire-and-forget sound cues.
type Sound interface {
	Play(id cfg.SoundID)
}

// SilentSound is used when audio is muted or unavailable.
type SilentSound struct{}

func (SilentSound) Play(cfg.SoundID) {}

// Global audio state - ebiten allows a single audio context per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// MixerSound plays cues through ebiten's audio context.
type MixerSound struct {
	loader *assets.AudioLoader
	volume float64
}

// NewMixerSound creates the audio context and decodes every sound effect up
// front, so a broken file is reported before the game loop starts.
func NewMixerSound(volume float64) (*MixerSound, error) {
	initGlobalAudio()
	loader := assets.NewAudioLoader(globalAudioContext)

	ids := make([]cfg.SoundID, 0, len(cfg.Sound.SFXPaths))
	for id := range cfg.Sound.SFXPaths {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := loader.PreloadSFX(cfg.Sound.SFXPaths[id]); err != nil {
			return nil, fmt.Errorf("preload %s: %w", id, err)
		}
	}
	return &MixerSound{loader: loader, volume: volume}, nil
}

func (m *MixerSound) Play(id cfg.SoundID) {
	if m.volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	player, err := m.loader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := m.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// NewUpdateAudio returns the system that flushes queued cues through sound.
func NewUpdateAudio(sound Sound) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		for _, id := range audioData.PendingSFX {
			sound.Play(id)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// PlaySFX queues a sound effect to be played at the end of the frame
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}
