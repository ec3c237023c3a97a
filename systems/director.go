package systems

import (
	"github.com/automoto/monkeyfever/components"
	"github.com/yohamta/donburi/ecs"
)

// GetDirector returns the scene's director state, or nil before it is spawned.
func GetDirector(e *ecs.ECS) *components.DirectorData {
	entry, ok := components.Director.First(e.World)
	if !ok {
		return nil
	}
	return components.Director.Get(entry)
}

// IsStopped reports whether a quit or escape event has been handled.
func IsStopped(e *ecs.ECS) bool {
	d := GetDirector(e)
	return d != nil && d.Stopped
}
