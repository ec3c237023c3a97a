package systems

import (
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the tween step for one tick.
func frameSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}

// actorOf returns the actor component stored on entry, or nil.
func actorOf(entry *donburi.Entry) components.Actor {
	switch {
	case entry.HasComponent(components.Fist):
		return components.Fist.Get(entry)
	case entry.HasComponent(components.Chimp):
		return components.Chimp.Get(entry)
	}
	return nil
}

// sceneActors lists the actor entries fist first, then chimp. Updates and
// draws both follow this order.
func sceneActors(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Fist.Each(w, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	tags.Chimp.Each(w, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

// UpdateActors feeds this frame's pointer sample to the fist and steps every
// actor once, pressed or not.
func UpdateActors(e *ecs.ECS) {
	if dirEntry, ok := components.Input.First(e.World); ok {
		pointer := components.Input.Get(dirEntry).Pointer
		tags.Fist.Each(e.World, func(entry *donburi.Entry) {
			components.Fist.Get(entry).Pointer = pointer
		})
	}

	for _, entry := range sceneActors(e.World) {
		if actor := actorOf(entry); actor != nil {
			actor.Update()
		}
	}
}

// UpdateFlash fades the hit flash back to normal.
func UpdateFlash(e *ecs.ECS) {
	dt := frameSeconds()
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if !flash.Active() {
			return
		}
		v, done := flash.Tween.Update(dt)
		flash.Intensity = v
		if done {
			flash.Tween = nil
			flash.Intensity = 1
		}
	})
}

// UpdateBanner slides the banner into place.
func UpdateBanner(e *ecs.ECS) {
	dt := frameSeconds()
	tags.Banner.Each(e.World, func(entry *donburi.Entry) {
		banner := components.Banner.Get(entry)
		if banner.Tween == nil {
			return
		}
		v, done := banner.Tween.Update(dt)
		banner.OffsetY = v
		if done {
			banner.Tween = nil
			banner.OffsetY = 0
		}
	})
}
