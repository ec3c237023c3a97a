package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the sprite brightening after a landed punch.
// Intensity is the color multiplier (1 = normal); Tween eases it back to 1.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
}

// Active reports whether a flash is still running.
func (f *FlashData) Active() bool {
	return f.Tween != nil
}

var Flash = donburi.NewComponentType[FlashData]()

// BannerData is the headline text drawn on the background.
// OffsetY slides from above the window to 0 while Tween runs.
type BannerData struct {
	Text    string
	OffsetY float32
	Tween   *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()
