package factory

import (
	"github.com/automoto/monkeyfever/archetypes"
	"github.com/automoto/monkeyfever/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision grid. It is margin pixels larger than the
// window on every side; objects are stored shifted by margin.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight, margin int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width+2*margin, height+2*margin, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func addObject(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
