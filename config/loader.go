package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of the configuration that can be overridden from a
// YAML file. Keys that are absent from the file keep their current values.
type Tuning struct {
	Window    Config          `yaml:"window"`
	Chimp     ChimpConfig     `yaml:"chimp"`
	Fist      FistConfig      `yaml:"fist"`
	Banner    BannerConfig    `yaml:"banner"`
	Effects   EffectsConfig   `yaml:"effects"`
	Collision CollisionConfig `yaml:"collision"`
	Audio     AudioConfig     `yaml:"audio"`
}

// Current returns the active configuration as a Tuning value.
func Current() Tuning {
	return Tuning{
		Window:    *C,
		Chimp:     Chimp,
		Fist:      Fist,
		Banner:    Banner,
		Effects:   Effects,
		Collision: Collision,
		Audio:     Audio,
	}
}

// Apply makes t the active configuration.
func (t Tuning) Apply() {
	window := t.Window
	C = &window
	Chimp = t.Chimp
	Fist = t.Fist
	Banner = t.Banner
	Effects = t.Effects
	Collision = t.Collision
	Audio = t.Audio
}

// Validate rejects tunings the game loop cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", t.Window.Width, t.Window.Height))
	}
	if t.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps must be positive, got %d", t.Window.TPS))
	}
	if t.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale must be positive, got %v", t.Window.Scale))
	}
	if t.Chimp.SpinStep <= 0 {
		errs = append(errs, fmt.Errorf("chimp spinStep must be positive, got %d", t.Chimp.SpinStep))
	}
	if t.Fist.HitboxShrink < 0 {
		errs = append(errs, fmt.Errorf("fist hitboxShrink must not be negative, got %d", t.Fist.HitboxShrink))
	}
	if t.Collision.CellWidth <= 0 || t.Collision.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("collision cells must be positive, got %dx%d", t.Collision.CellWidth, t.Collision.CellHeight))
	}
	if t.Collision.Margin < 0 {
		errs = append(errs, fmt.Errorf("collision margin must not be negative, got %d", t.Collision.Margin))
	}
	if t.Audio.SFXVolume < 0 || t.Audio.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("audio sfxVolume must be within [0, 1], got %v", t.Audio.SFXVolume))
	}
	if t.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sampleRate must be positive, got %d", t.Audio.SampleRate))
	}
	if t.Banner.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("banner fontSize must be positive, got %v", t.Banner.FontSize))
	}
	if t.Banner.SlideSeconds < 0 {
		errs = append(errs, fmt.Errorf("banner slideSeconds must not be negative, got %v", t.Banner.SlideSeconds))
	}
	if t.Effects.HitFlashIntensity <= 0 {
		errs = append(errs, fmt.Errorf("effects hitFlashIntensity must be positive, got %v", t.Effects.HitFlashIntensity))
	}
	if t.Effects.HitFlashSeconds < 0 {
		errs = append(errs, fmt.Errorf("effects hitFlashSeconds must not be negative, got %v", t.Effects.HitFlashSeconds))
	}
	return errors.Join(errs...)
}

// CheckChimpFits rejects tunings where a w x h chimp would not start inside
// the window, or could not take a step in either direction without leaving it.
// Call it once sprite sizes are known.
func (t Tuning) CheckChimpFits(w, h int) error {
	var errs []error
	x, y := t.Chimp.StartX, t.Chimp.StartY
	if x < 0 || y < 0 || x+w > t.Window.Width || y+h > t.Window.Height {
		errs = append(errs, fmt.Errorf("chimp %dx%d at (%d,%d) does not fit the %dx%d window",
			w, h, x, y, t.Window.Width, t.Window.Height))
	}
	speed := t.Chimp.Speed
	if speed < 0 {
		speed = -speed
	}
	if 2*speed > t.Window.Width-w {
		errs = append(errs, fmt.Errorf("chimp speed %d is too fast for a %d px wide window", t.Chimp.Speed, t.Window.Width))
	}
	return errors.Join(errs...)
}

// Parse overlays YAML data onto base.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, err
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Load resolves the tuning file and applies it.
// Search order: customPath -> ~/.monkeyfever/config.yaml -> ./configs/monkeyfever.yaml -> built-in defaults.
// It returns the path that was applied, or "" when the defaults are used.
// A customPath that cannot be read or parsed is an error; broken files found on
// the search path are reported through warn and skipped.
func Load(customPath string, warn func(path string, err error)) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		t, err := Parse(data, Current())
		if err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		t.Apply()
		return customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		t, err := Parse(data, Current())
		if err != nil {
			if warn != nil {
				warn(path, err)
			}
			continue
		}
		t.Apply()
		return path, nil
	}

	return "", nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".monkeyfever", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "monkeyfever.yaml"))
}
