package systems

import (
	"github.com/automoto/monkeyfever/assets"
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/fonts"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/automoto/monkeyfever/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground clears the screen to the background color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Banner.Background)
}

// DrawBanner draws the headline centered at the top of the background.
// It is skipped when no font could be loaded.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	director := GetDirector(ecs)
	if director == nil || !director.Capabilities.FontsAvailable {
		return
	}

	tags.Banner.Each(ecs.World, func(e *donburi.Entry) {
		banner := components.Banner.Get(e)
		face := fonts.Banner.Get()
		bounds := text.BoundString(face, banner.Text)
		x := (screen.Bounds().Dx() - bounds.Dx()) / 2
		y := -bounds.Min.Y + int(banner.OffsetY)
		text.Draw(screen, banner.Text, face, x, y, cfg.Banner.TextColor)
	})
}

// spriteDraw is one sprite blit: which image, where, and how it is posed.
type spriteDraw struct {
	ID        cfg.SpriteID
	Rect      gamemath.Rect
	Pose      components.Pose
	Intensity float32
}

// spriteDraws builds this frame's sprite blits in draw order.
func spriteDraws(w donburi.World) []spriteDraw {
	entries := sceneActors(w)
	draws := make([]spriteDraw, 0, len(entries))
	for _, e := range entries {
		actor := actorOf(e)
		if actor == nil || !e.HasComponent(components.Sprite) {
			continue
		}
		d := spriteDraw{
			ID:        components.Sprite.Get(e).ID,
			Rect:      actor.Bounds(),
			Intensity: 1,
		}
		if e.HasComponent(components.Chimp) {
			d.Pose = components.Chimp.Get(e).Current
		}
		if e.HasComponent(components.Flash) {
			if flash := components.Flash.Get(e); flash.Active() {
				d.Intensity = flash.Intensity
			}
		}
		draws = append(draws, d)
	}
	return draws
}

// DrawSprites draws the fist, then the chimp on top of it.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, d := range spriteDraws(ecs.World) {
		drawPosed(screen, assets.Image(d.ID), d.Rect, d.Pose, d.Intensity)
	}
}

// drawPosed draws img centred in r, mirrored and then rotated
// counter-clockwise as pose says.
func drawPosed(screen, img *ebiten.Image, r gamemath.Rect, pose components.Pose, intensity float32) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if pose.Mirrored {
		drawOp.GeoM.Scale(-1, 1)
	}
	if pose.Angle != 0 {
		// Screen y points down, so a negative angle turns counter-clockwise.
		drawOp.GeoM.Rotate(-gamemath.Radians(pose.Angle))
	}
	drawOp.GeoM.Translate(float64(r.X)+float64(r.W)/2, float64(r.Y)+float64(r.H)/2)

	if intensity != 1 {
		drawOp.ColorScale.Scale(intensity, intensity, intensity, 1)
	}

	screen.DrawImage(img, drawOp)
}
