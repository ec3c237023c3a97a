package components

import (
	"testing"

	"github.com/automoto/monkeyfever/gamemath"
)

var playArea = gamemath.NewRect(0, 0, 468, 60)

func newTestChimp() ChimpData {
	return NewChimp(10, 10, 66, 48, 9, 12, playArea)
}

func TestNewChimp(t *testing.T) {
	c := newTestChimp()

	if c.Rect != gamemath.NewRect(10, 10, 66, 48) {
		t.Errorf("rect = %+v", c.Rect)
	}
	if c.Velocity != 9 || c.Facing != FacingRight {
		t.Errorf("expected walking right at 9, got %d %v", c.Velocity, c.Facing)
	}
	if c.Spinning() || c.SpinAngle != 0 {
		t.Errorf("a new chimp must be walking")
	}
	if c.Current != (Pose{}) {
		t.Errorf("a new chimp must show the unrotated bitmap, got %+v", c.Current)
	}
}

func TestWalkInsideBounds(t *testing.T) {
	c := newTestChimp()

	c.Update()

	if c.Rect.X != 19 || c.Rect.Y != 10 {
		t.Errorf("position = (%d,%d), expected (19,10)", c.Rect.X, c.Rect.Y)
	}
	if c.Velocity != 9 {
		t.Errorf("velocity = %d, expected 9", c.Velocity)
	}
	if c.Current.Mirrored {
		t.Error("no flip expected inside bounds")
	}
}

func TestWalkBouncesOffEdges(t *testing.T) {
	tests := []struct {
		name         string
		x, velocity  int
		wantX, wantV int
		wantFacing   Facing
	}{
		{"right edge", 397, 9, 388, -9, FacingLeft},
		{"exactly flush right", 393, 9, 402, 9, FacingRight},
		{"left edge", 5, -9, 14, 9, FacingRight},
		{"exactly flush left", 9, -9, 0, -9, FacingLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewChimp(tc.x, 10, 66, 48, tc.velocity, 12, playArea)
			startMirrored := c.Current.Mirrored

			c.Update()

			if c.Rect.X != tc.wantX {
				t.Errorf("x = %d, expected %d", c.Rect.X, tc.wantX)
			}
			if c.Velocity != tc.wantV {
				t.Errorf("velocity = %d, expected %d", c.Velocity, tc.wantV)
			}
			if c.Facing != tc.wantFacing {
				t.Errorf("facing = %v, expected %v", c.Facing, tc.wantFacing)
			}
			flipped := c.Current.Mirrored != startMirrored
			if flipped != (tc.wantV != tc.velocity) {
				t.Errorf("flipped = %v, expected a flip only on reversal", flipped)
			}
		})
	}
}

func TestTwoReversalsRestoreOrientation(t *testing.T) {
	c := NewChimp(397, 10, 66, 48, 9, 12, playArea)
	original := c.Current

	c.Update() // bounce off the right edge
	if c.Current == original {
		t.Fatal("expected the first reversal to mirror the chimp")
	}

	// Walk back over to the right edge and bounce again.
	c.Velocity = 9
	c.Rect.X = 397
	c.Update()

	if c.Current != original {
		t.Errorf("orientation after two reversals = %+v, expected %+v", c.Current, original)
	}
}

func TestSpinCycle(t *testing.T) {
	c := newTestChimp()
	c.Update()
	before := c
	beforeCenter := c.Rect.Center()

	c.Punched()
	if !c.Spinning() || c.SpinAngle != 12 {
		t.Fatalf("after Punched: spinning=%v angle=%d, expected spinning at 12", c.Spinning(), c.SpinAngle)
	}

	for tick := 1; tick <= 29; tick++ {
		c.Update()
		if !c.Spinning() {
			t.Fatalf("stopped spinning after %d ticks", tick)
		}
		if c.SpinAngle != 12*tick {
			t.Fatalf("tick %d: angle = %d, expected %d", tick, c.SpinAngle, 12*tick)
		}
		if c.Current.Angle != c.SpinAngle {
			t.Fatalf("tick %d: displayed angle %d does not follow spin angle %d", tick, c.Current.Angle, c.SpinAngle)
		}
		if c.Rect.Center() != beforeCenter {
			t.Fatalf("tick %d: center moved to %v", tick, c.Rect.Center())
		}
	}

	c.Update()
	if c.Spinning() || c.SpinAngle != 0 {
		t.Fatalf("after 30 ticks: spinning=%v angle=%d, expected walking", c.Spinning(), c.SpinAngle)
	}
	if c.Current != before.Current {
		t.Errorf("pose = %+v, expected the pre-spin baseline %+v", c.Current, before.Current)
	}
	if c.Rect != before.Rect {
		t.Errorf("rect = %+v, expected %+v", c.Rect, before.Rect)
	}
	if c.Velocity != before.Velocity {
		t.Errorf("velocity = %d, expected %d to survive the spin", c.Velocity, before.Velocity)
	}
}

func TestSpinKeepsMirroredBaseline(t *testing.T) {
	c := NewChimp(397, 10, 66, 48, 9, 12, playArea)
	c.Update() // now mirrored, walking left

	c.Punched()
	for i := 0; i < 30; i++ {
		c.Update()
	}

	if !c.Current.Mirrored || c.Current.Angle != 0 {
		t.Errorf("pose = %+v, expected mirrored and unrotated", c.Current)
	}
	if c.Velocity != -9 {
		t.Errorf("velocity = %d, expected -9", c.Velocity)
	}
}

func TestPunchedWhileSpinningIsIgnored(t *testing.T) {
	c := newTestChimp()
	c.Punched()
	for i := 0; i < 5; i++ {
		c.Update()
	}
	angle, baseline := c.SpinAngle, c.SpinBaseline

	c.Punched()

	if c.SpinAngle != angle {
		t.Errorf("angle = %d, expected %d", c.SpinAngle, angle)
	}
	if c.SpinBaseline != baseline {
		t.Errorf("baseline replaced by a re-entrant hit")
	}
	c.Update()
	if c.SpinAngle != angle+12 {
		t.Errorf("spin should continue normally, angle = %d", c.SpinAngle)
	}
}

func TestSpinDoesNotWalk(t *testing.T) {
	c := newTestChimp()
	c.Punched()
	c.Update()
	c.Update()

	if got := c.Rect.Center(); got != gamemath.NewRect(10, 10, 66, 48).Center() {
		t.Errorf("center = %v, a spinning chimp must not walk", got)
	}
}

func TestSixtyTicksWalkingPass(t *testing.T) {
	c := newTestChimp()
	bounces := 0

	for tick := 0; tick < 60; tick++ {
		before := c.Velocity
		c.Update()
		if c.Velocity != before {
			bounces++
		}
		if !gamemath.Contains(playArea, c.Rect) {
			t.Fatalf("tick %d: chimp left the play area at %+v", tick, c.Rect)
		}
	}

	if bounces < 1 || bounces > 2 {
		t.Errorf("bounces = %d, expected one or two", bounces)
	}
}
