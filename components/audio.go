package components

import (
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound triggers (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
