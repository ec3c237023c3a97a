package systems

import (
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/automoto/monkeyfever/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePunch drains this frame's input queue in order. Quit and Escape stop
// the director and discard the rest of the queue.
func UpdatePunch(e *ecs.ECS) {
	dirEntry, ok := components.Director.First(e.World)
	if !ok {
		return
	}
	director := components.Director.Get(dirEntry)
	input := components.Input.Get(dirEntry)
	defer func() { input.Events = input.Events[:0] }()

	if director.Stopped {
		return
	}

	fistEntry, ok := tags.Fist.First(e.World)
	if !ok {
		return
	}
	fist := components.Fist.Get(fistEntry)

	for _, ev := range input.Events {
		switch ev.Kind {
		case components.EventQuit:
			director.Stopped = true
			return
		case components.EventKeyDown:
			if ev.Key == components.KeyEscape {
				director.Stopped = true
				return
			}
		case components.EventPointerDown:
			fist.UpdatePosition(input.Pointer)
			target, chimpEntry := strikeTarget(e, fistEntry)
			if fist.Strike(target) {
				PlaySFX(e, cfg.SoundPunch)
				chimp := components.Chimp.Get(chimpEntry)
				chimp.Punched()
				startFlash(chimpEntry)
				director.Hits++
			} else {
				PlaySFX(e, cfg.SoundWhiff)
				director.Misses++
			}
		case components.EventPointerUp:
			fist.Release()
		}
	}
}

// strikeTarget finds the chimp near the fist's hitbox in the collision space.
// With no candidate it returns an empty rect, which never collides.
func strikeTarget(e *ecs.ECS, fistEntry *donburi.Entry) (gamemath.Rect, *donburi.Entry) {
	fist := components.Fist.Get(fistEntry)
	obj := components.Object.Get(fistEntry)
	syncObject(obj.Object, fist.Hitbox())

	collision := obj.Check(0, 0, tags.ResolvChimp)
	if collision == nil {
		return gamemath.Rect{}, nil
	}
	for _, o := range collision.Objects {
		if entry := chimpEntryOf(o); entry != nil {
			return components.Chimp.Get(entry).Rect, entry
		}
	}
	return gamemath.Rect{}, nil
}

func chimpEntryOf(o *resolv.Object) *donburi.Entry {
	entry, ok := o.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Chimp) {
		return nil
	}
	return entry
}

func startFlash(entry *donburi.Entry) {
	if cfg.Effects.HitFlashSeconds <= 0 {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Intensity = cfg.Effects.HitFlashIntensity
	flash.Tween = gween.New(cfg.Effects.HitFlashIntensity, 1, cfg.Effects.HitFlashSeconds, ease.OutQuad)
}
