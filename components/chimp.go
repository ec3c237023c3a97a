package components

import (
	"github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/yohamta/donburi"
)

// Facing is the direction the chimp is walking.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Pose describes how the loaded chimp bitmap is displayed: mirrored
// horizontally and/or rotated counter-clockwise by Angle degrees.
type Pose struct {
	Mirrored bool
	Angle    int
}

// Flipped returns p mirrored horizontally. Flipping twice gives p back.
func (p Pose) Flipped() Pose {
	p.Mirrored = !p.Mirrored
	return p
}

// Rotated returns p with its rotation set to deg degrees.
func (p Pose) Rotated(deg int) Pose {
	p.Angle = deg
	return p
}

// ChimpData is the character actor. It is either walking (SpinAngle == 0) or
// spinning (SpinAngle > 0) after being punched.
type ChimpData struct {
	Rect         gamemath.Rect
	Velocity     int // Signed horizontal speed in pixels per tick
	SpinAngle    int // Degrees, in [0, FullTurn)
	SpinStep     int // Degrees added per spinning tick
	Facing       Facing
	BoundsArea   gamemath.Rect // Walking is confined to this area
	Current      Pose          // What is displayed this frame
	SpinBaseline Pose          // Snapshot of Current taken when a spin starts
	BaseW, BaseH int           // Unrotated sprite size

	spinPrimed bool // Punched already applied the first spin step
}

// NewChimp places a w x h chimp at (x, y) walking at speed inside area.
func NewChimp(x, y, w, h, speed, spinStep int, area gamemath.Rect) ChimpData {
	facing := FacingRight
	if speed < 0 {
		facing = FacingLeft
	}
	// The bitmap faces right.
	return ChimpData{
		Rect:       gamemath.NewRect(x, y, w, h),
		Velocity:   speed,
		SpinStep:   spinStep,
		Facing:     facing,
		Current:    Pose{Mirrored: facing == FacingLeft},
		BoundsArea: area,
		BaseW:      w,
		BaseH:      h,
	}
}

// Spinning reports whether a spin cycle is active.
func (c *ChimpData) Spinning() bool {
	return c.SpinAngle > 0
}

// Bounds is the rect the current pose occupies on screen.
func (c *ChimpData) Bounds() gamemath.Rect {
	return c.Rect
}

// Update advances the chimp by one tick: spin if spinning, otherwise walk.
func (c *ChimpData) Update() {
	if c.Spinning() {
		c.spin()
	} else {
		c.walk()
	}
}

// Punched starts a spin. Hits while already spinning are ignored.
func (c *ChimpData) Punched() {
	if c.Spinning() {
		return
	}
	c.SpinBaseline = c.Current
	c.SpinAngle = c.SpinStep
	c.spinPrimed = true
}

func (c *ChimpData) walk() {
	next := gamemath.Move(c.Rect, c.Velocity, 0)
	if !gamemath.Contains(c.BoundsArea, next) {
		c.Velocity = -c.Velocity
		next = gamemath.Move(c.Rect, c.Velocity, 0)
		c.Current = c.Current.Flipped()
		c.turn()
	}
	c.Rect = next
}

func (c *ChimpData) turn() {
	if c.Facing == FacingRight {
		c.Facing = FacingLeft
	} else {
		c.Facing = FacingRight
	}
}

func (c *ChimpData) spin() {
	center := c.Rect.Center()
	if c.spinPrimed {
		c.spinPrimed = false
	} else {
		c.SpinAngle += c.SpinStep
	}

	if c.SpinAngle >= config.FullTurn {
		c.SpinAngle = 0
		c.Current = c.SpinBaseline
		c.Rect = gamemath.CenteredAt(c.BaseW, c.BaseH, center)
		return
	}

	c.Current = c.SpinBaseline.Rotated(c.SpinAngle)
	w, h := gamemath.RotatedSize(c.BaseW, c.BaseH, c.SpinAngle)
	c.Rect = gamemath.CenteredAt(w, h, center)
}

var Chimp = donburi.NewComponentType[ChimpData]()
