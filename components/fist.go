package components

import (
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/yohamta/donburi"
)

// FistData is the player's cursor actor. It follows the pointer and can
// strike at most once per press-until-release cycle.
type FistData struct {
	Position gamemath.Point // Last polled pointer position
	Pointer  gamemath.Point // Pointer position sampled for the current frame
	W, H     int            // Sprite size
	Pressing bool           // Set by Strike, cleared by Release

	HitboxShrink int // Pixels removed from each dimension of the strike hitbox
	JabX, JabY   int // Draw offset while Pressing
}

// NewFist returns a fist of the given sprite size with default tuning values.
func NewFist(w, h, hitboxShrink, jabX, jabY int) FistData {
	return FistData{W: w, H: h, HitboxShrink: hitboxShrink, JabX: jabX, JabY: jabY}
}

// UpdatePosition moves the fist to p. No smoothing and no clamping to the window.
func (f *FistData) UpdatePosition(p gamemath.Point) {
	f.Position = p
}

// Rect is the fist sprite rect: its top edge is centred on the pointer.
func (f *FistData) Rect() gamemath.Rect {
	return gamemath.MidTopAt(f.W, f.H, f.Position)
}

// Bounds is where the fist is drawn, shifted by the jab offset while pressing.
func (f *FistData) Bounds() gamemath.Rect {
	r := f.Rect()
	if f.Pressing {
		r = gamemath.Move(r, f.JabX, f.JabY)
	}
	return r
}

// Hitbox is the shrunken rect used for strike tests.
func (f *FistData) Hitbox() gamemath.Rect {
	return gamemath.Inflate(f.Rect(), -f.HitboxShrink, -f.HitboxShrink)
}

// Update repositions the fist to the pointer sampled for this frame,
// regardless of press state.
func (f *FistData) Update() {
	f.UpdatePosition(f.Pointer)
}

// Strike starts a punch at target. Only the first call of a press counts:
// while Pressing it returns false without touching any state.
func (f *FistData) Strike(target gamemath.Rect) bool {
	if f.Pressing {
		return false
	}
	f.Pressing = true
	return gamemath.Collides(f.Hitbox(), target)
}

// Release pulls the fist back. Calling it when not pressing is a no-op.
func (f *FistData) Release() {
	f.Pressing = false
}

var Fist = donburi.NewComponentType[FistData]()
