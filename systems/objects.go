package systems

import (
	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects copies actor geometry into the collision space. The fist is
// represented by its strike hitbox, the chimp by its current rect.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		switch {
		case e.HasComponent(components.Fist):
			syncObject(obj.Object, components.Fist.Get(e).Hitbox())
		case e.HasComponent(components.Chimp):
			syncObject(obj.Object, components.Chimp.Get(e).Bounds())
		}
	}
}

// syncObject moves obj to r, shifted by the space margin.
func syncObject(obj *resolv.Object, r gamemath.Rect) {
	m := float64(cfg.Collision.Margin)
	obj.X = float64(r.X) + m
	obj.Y = float64(r.Y) + m
	obj.W = float64(r.W)
	obj.H = float64(r.H)
	obj.Update()
}

// objectRect converts an object back to window coordinates.
func objectRect(obj *resolv.Object) gamemath.Rect {
	m := float64(cfg.Collision.Margin)
	return gamemath.NewRect(int(obj.X-m), int(obj.Y-m), int(obj.W), int(obj.H))
}
