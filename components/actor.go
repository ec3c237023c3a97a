package components

import "github.com/automoto/monkeyfever/gamemath"

// Actor is the shape shared by the fist and the chimp: both expose the rect
// they occupy on screen and advance once per tick. Neither draws itself.
type Actor interface {
	Bounds() gamemath.Rect
	Update()
}

var (
	_ Actor = (*FistData)(nil)
	_ Actor = (*ChimpData)(nil)
)
