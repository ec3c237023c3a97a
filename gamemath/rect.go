package gamemath

// Point is an integer screen position.
type Point struct {
	X, Y int
}

// Rect is an integer axis-aligned rectangle. X, Y is the top-left corner.
// Rects are values: every operation returns a new Rect.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point, rounding toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Move returns r translated by (dx, dy).
func Move(r Rect, dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether inner lies entirely inside outer.
// Edges are inclusive: inner may share an edge with outer.
func Contains(outer, inner Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.Right() <= outer.Right() && inner.Bottom() <= outer.Bottom()
}

// Inflate grows r by dw horizontally and dh vertically, keeping it roughly
// centred. The origin shifts by -dw/2, -dh/2 using truncating division, so
// Inflate(r, -5, -5) moves the origin by (2, 2) and shrinks the size by 5.
// Sizes never go below zero.
func Inflate(r Rect, dw, dh int) Rect {
	return NewRect(r.X-dw/2, r.Y-dh/2, r.W+dw, r.H+dh)
}

// Collides reports whether a and b overlap. Both rectangles are treated as
// half-open ranges [X, X+W) x [Y, Y+H): rectangles that only touch along an
// edge do not collide, and an empty rectangle collides with nothing.
func Collides(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

// CenteredAt returns a w x h rectangle whose Center is c.
func CenteredAt(w, h int, c Point) Rect {
	return NewRect(c.X-w/2, c.Y-h/2, w, h)
}

// MidTopAt returns a w x h rectangle whose top edge is centred on p.
func MidTopAt(w, h int, p Point) Rect {
	return NewRect(p.X-w/2, p.Y, w, h)
}
