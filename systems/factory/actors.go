package factory

import (
	"github.com/automoto/monkeyfever/archetypes"
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/automoto/monkeyfever/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFist spawns the cursor actor with a w x h sprite. Create the space
// first so its hitbox object joins it.
func CreateFist(ecs *ecs.ECS, w, h int) *donburi.Entry {
	fist := archetypes.Fist.Spawn(ecs)

	data := components.NewFist(w, h, cfg.Fist.HitboxShrink, cfg.Fist.JabOffsetX, cfg.Fist.JabOffsetY)
	components.Fist.SetValue(fist, data)
	components.Sprite.SetValue(fist, components.SpriteData{ID: cfg.SpriteFist})

	hb := data.Hitbox()
	m := cfg.Collision.Margin
	obj := resolv.NewObject(float64(hb.X+m), float64(hb.Y+m), float64(hb.W), float64(hb.H), tags.ResolvHitbox)
	addObject(ecs, fist, obj)

	return fist
}

// CreateChimp spawns the character actor with a w x h sprite, walking inside
// the window.
func CreateChimp(ecs *ecs.ECS, w, h int) *donburi.Entry {
	chimp := archetypes.Chimp.Spawn(ecs)

	area := gamemath.NewRect(0, 0, cfg.C.Width, cfg.C.Height)
	data := components.NewChimp(cfg.Chimp.StartX, cfg.Chimp.StartY, w, h, cfg.Chimp.Speed, cfg.Chimp.SpinStep, area)
	components.Chimp.SetValue(chimp, data)
	components.Sprite.SetValue(chimp, components.SpriteData{ID: cfg.SpriteChimp})
	components.Flash.SetValue(chimp, components.FlashData{Intensity: 1})

	r := data.Rect
	m := cfg.Collision.Margin
	obj := resolv.NewObject(float64(r.X+m), float64(r.Y+m), float64(r.W), float64(r.H), tags.ResolvChimp)
	addObject(ecs, chimp, obj)

	return chimp
}
