package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/fonts"
	"github.com/automoto/monkeyfever/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the punch tally.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			r := objectRect(obj)

			// Determine color based on tags
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvChimp) {
				c = cfg.LightRed
			} else if obj.HasTags(tags.ResolvHitbox) {
				c = cfg.Blue
			}

			x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	director := GetDirector(ecs)
	if director == nil || !director.Capabilities.FontsAvailable {
		return
	}
	tally := fmt.Sprintf("hits %d  misses %d", director.Hits, director.Misses)
	text.Draw(screen, tally, fonts.Small.Get(), 4, screen.Bounds().Dy()-4, color.Black)
}
