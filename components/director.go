package components

import (
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/yohamta/donburi"
)

// DirectorData is the frame loop's own state (singleton component).
type DirectorData struct {
	Stopped      bool // Set by a quit or escape event; no further frames run
	Capabilities cfg.Capabilities
	Hits         int // Punches that landed, for the debug overlay
	Misses       int
}

var Director = donburi.NewComponentType[DirectorData]()
