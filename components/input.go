package components

import (
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/yohamta/donburi"
)

// EventKind classifies a discrete input event
type EventKind int

const (
	EventUnknown EventKind = iota
	EventQuit
	EventKeyDown
	EventPointerDown
	EventPointerUp
)

// Key identifies the keys the game cares about
type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// InputEvent is one entry of the per-frame event queue. Pointer coordinates
// are not part of the event; they come from InputData.Pointer.
type InputEvent struct {
	Kind EventKind
	Key  Key
}

// InputData stores this frame's time-ordered input events and pointer sample.
// The queue is refilled at the start of every frame and drained by the punch system.
type InputData struct {
	Events  []InputEvent
	Pointer gamemath.Point
}

// Push appends an event to this frame's queue.
func (in *InputData) Push(kind EventKind) {
	in.Events = append(in.Events, InputEvent{Kind: kind})
}

// PushKey appends a key-down event to this frame's queue.
func (in *InputData) PushKey(key Key) {
	in.Events = append(in.Events, InputEvent{Kind: EventKeyDown, Key: key})
}

var Input = donburi.NewComponentType[InputData]()
