package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPunch
	SoundWhiff
)

func (s SoundID) String() string {
	switch s {
	case SoundPunch:
		return "punch"
	case SoundWhiff:
		return "whiff"
	default:
		return "none"
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"` // 0.0 - 1.0
	Muted      bool    `yaml:"muted"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundPunch: "audio/sfx/punch.wav",
			SoundWhiff: "audio/sfx/whiff.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWhiff: 0.6,
		},
	}
}
