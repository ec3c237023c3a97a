// monkeyfever is a tiny arcade game: punch the chimp as it walks across the
// window.
//
// Usage:
//
//	monkeyfever [--config file.yaml] [--mute] [--no-font] [--debug] [--scale n]
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/monkeyfever/assets"
	"github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/fonts"
	"github.com/automoto/monkeyfever/scenes"
	"github.com/automoto/monkeyfever/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	flagConfig string
	flagMute   bool
	flagNoFont bool
	flagDebug  bool
	flagScale  float64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "monkeyfever",
})

var rootCmd = &cobra.Command{
	Use:   "monkeyfever",
	Short: "Punch the chimp and win $$$",
	Long: `Monkey Fever shows a chimp walking back and forth across a small
window. Move the mouse to aim the fist and click to punch. A landed punch
sends the chimp spinning.

Controls:
  Mouse        - Aim
  Left button  - Punch
  Esc          - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().BoolVar(&flagNoFont, "no-font", false, "Skip the banner text")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Outline collision objects")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (0 keeps the configured value)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	source, err := config.Load(flagConfig, func(path string, err error) {
		logger.Warn("ignoring config file", "path", path, "err", err)
	})
	if err != nil {
		return err
	}
	if source != "" {
		logger.Info("loaded config", "path", source)
	}

	if flagScale > 0 {
		config.C.Scale = flagScale
	}
	config.Debug.Hitboxes = flagDebug
	if flagMute {
		config.Audio.Muted = true
	}

	if err := assets.LoadImages(); err != nil {
		return fmt.Errorf("load images: %w", err)
	}

	caps, sound := resolveCapabilities()
	logger.Info("capabilities", "fonts", caps.FontsAvailable, "audio", caps.AudioAvailable)

	fw, fh := assets.ImageSize(config.SpriteFist)
	chw, chh := assets.ImageSize(config.SpriteChimp)
	if err := config.Current().CheckChimpFits(chw, chh); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	scene := scenes.NewChimpScene(scenes.Options{
		Capabilities: caps,
		Sound:        sound,
		FistSize:     scenes.Size{W: fw, H: fh},
		ChimpSize:    scenes.Size{W: chw, H: chh},
	})

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		return err
	}
	return nil
}

// resolveCapabilities decides once which optional services the game uses.
func resolveCapabilities() (config.Capabilities, systems.Sound) {
	var caps config.Capabilities

	if flagNoFont {
		logger.Info("banner disabled by flag")
	} else if err := fonts.LoadDefaults(config.Banner.FontSize); err != nil {
		logger.Warn("font unavailable, skipping banner", "err", err)
	} else {
		caps.FontsAvailable = true
	}

	var sound systems.Sound = systems.SilentSound{}
	if config.Audio.Muted {
		logger.Info("sound muted")
	} else if mixer, err := systems.NewMixerSound(config.Audio.SFXVolume); err != nil {
		logger.Warn("sound unavailable, continuing silently", "err", err)
	} else {
		caps.AudioAvailable = true
		sound = mixer
	}

	return caps, sound
}
