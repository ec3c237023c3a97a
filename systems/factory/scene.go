package factory

import (
	"github.com/automoto/monkeyfever/archetypes"
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner spawns the headline. It slides down from above the window
// unless the slide is disabled.
func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)

	data := components.BannerData{Text: cfg.Banner.Text}
	if cfg.Banner.SlideSeconds > 0 {
		start := -float32(cfg.C.Height)
		data.OffsetY = start
		data.Tween = gween.New(start, 0, cfg.Banner.SlideSeconds, ease.OutBounce)
	}
	components.Banner.SetValue(banner, data)

	return banner
}

// CreateDirector spawns the singleton holding the stop flag, the input queue
// and the sound queue.
func CreateDirector(ecs *ecs.ECS, caps cfg.Capabilities) *donburi.Entry {
	director := archetypes.Director.Spawn(ecs)

	components.Director.SetValue(director, components.DirectorData{Capabilities: caps})
	components.Input.SetValue(director, components.InputData{
		Events: make([]components.InputEvent, 0, 4),
	})
	components.Audio.SetValue(director, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})

	return director
}
