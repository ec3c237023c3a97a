package systems

import (
	"github.com/automoto/monkeyfever/components"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// RawInput is one frame of polled device state.
type RawInput struct {
	Closing         bool // The window close button was used
	EscapePressed   bool
	PointerPressed  bool // Left button went down this frame
	PointerReleased bool // Left button went up this frame
	Cursor          gamemath.Point
}

// PollInput samples ebiten's input state for the current frame.
func PollInput() RawInput {
	x, y := ebiten.CursorPosition()
	return RawInput{
		Closing:         ebiten.IsWindowBeingClosed(),
		EscapePressed:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		PointerPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PointerReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Cursor:          gamemath.Point{X: x, Y: y},
	}
}

// TranslateInput replaces the queued events with the ones raw describes.
// A press and a release in the same frame are queued press first.
func TranslateInput(raw RawInput, in *components.InputData) {
	in.Events = in.Events[:0]
	in.Pointer = raw.Cursor

	if raw.Closing {
		in.Push(components.EventQuit)
	}
	if raw.EscapePressed {
		in.PushKey(components.KeyEscape)
	}
	if raw.PointerPressed {
		in.Push(components.EventPointerDown)
	}
	if raw.PointerReleased {
		in.Push(components.EventPointerUp)
	}
}

// NewUpdateInput returns the system that fills the input queue from poll.
// Must run BEFORE UpdatePunch.
func NewUpdateInput(poll func() RawInput) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		TranslateInput(poll(), components.Input.Get(entry))
	}
}
