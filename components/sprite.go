package components

import (
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/yohamta/donburi"
)

// SpriteData names the bitmap an entity is drawn with. The render system
// resolves it to a loaded image; the actor's Bounds and Pose say where and how.
type SpriteData struct {
	ID cfg.SpriteID
}

var Sprite = donburi.NewComponentType[SpriteData]()
