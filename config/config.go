package config

import "image/color"

// Config holds general window and loop configuration
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TPS    int     `yaml:"tps"`   // fixed update rate
	Scale  float64 `yaml:"scale"` // window size multiplier; the logical size never changes
	Title  string  `yaml:"title"`
}

// ChimpConfig contains the walking and spinning tuning for the chimp
type ChimpConfig struct {
	StartX   int `yaml:"startX"`
	StartY   int `yaml:"startY"`
	Speed    int `yaml:"speed"`    // pixels per tick, positive is rightward
	SpinStep int `yaml:"spinStep"` // degrees per tick while spinning
}

// FistConfig contains the cursor actor tuning
type FistConfig struct {
	HitboxShrink int `yaml:"hitboxShrink"` // pixels removed from each dimension of the strike hitbox
	JabOffsetX   int `yaml:"jabOffsetX"`   // drawn offset while the button is held
	JabOffsetY   int `yaml:"jabOffsetY"`
}

// BannerConfig contains the background banner text settings
type BannerConfig struct {
	Text         string     `yaml:"text"`
	FontSize     float64    `yaml:"fontSize"`
	TextColor    color.RGBA `yaml:"-"`
	Background   color.RGBA `yaml:"-"`
	SlideSeconds float32    `yaml:"slideSeconds"` // banner slide-in duration, 0 disables it
}

// EffectsConfig contains the hit feedback settings
type EffectsConfig struct {
	HitFlashSeconds   float32 `yaml:"hitFlashSeconds"`
	HitFlashIntensity float32 `yaml:"hitFlashIntensity"` // color multiplier at the start of the flash
}

// CollisionConfig contains the broadphase grid settings
type CollisionConfig struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
	Margin     int `yaml:"margin"` // space padding around the window so spinning rects stay inside the grid
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes bool // Draw collision objects over the scene
}

// FullTurn is the spin angle, in degrees, that ends a spin.
const FullTurn = 360

// Global configuration instances
var C *Config
var Chimp ChimpConfig
var Fist FistConfig
var Banner BannerConfig
var Effects EffectsConfig
var Collision CollisionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OffWhite  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	NearBlack = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  468,
		Height: 60,
		TPS:    60,
		Scale:  2,
		Title:  "monkey fever",
	}

	Chimp = ChimpConfig{
		StartX:   10,
		StartY:   10,
		Speed:    9,
		SpinStep: 12,
	}

	Fist = FistConfig{
		HitboxShrink: 5,
		JabOffsetX:   5,
		JabOffsetY:   10,
	}

	Banner = BannerConfig{
		Text:         "pummel the chimp and win $$$",
		FontSize:     20,
		TextColor:    NearBlack,
		Background:   OffWhite,
		SlideSeconds: 0.6,
	}

	Effects = EffectsConfig{
		HitFlashSeconds:   0.25,
		HitFlashIntensity: 2.5,
	}

	Collision = CollisionConfig{
		CellWidth:  16,
		CellHeight: 16,
		Margin:     128,
	}
}
