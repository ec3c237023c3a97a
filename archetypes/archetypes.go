package archetypes

import (
	"github.com/automoto/monkeyfever/components"
	"github.com/automoto/monkeyfever/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the scene.
const Default ecs.LayerID = 0

var (
	Fist = newArchetype(
		tags.Fist,
		components.Fist,
		components.Object,
		components.Sprite,
	)
	Chimp = newArchetype(
		tags.Chimp,
		components.Chimp,
		components.Object,
		components.Sprite,
		components.Flash,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Banner,
	)
	Space = newArchetype(
		components.Space,
	)
	Director = newArchetype(
		components.Director,
		components.Input,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
