package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/monkeyfever/components"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/gamemath"
	"github.com/automoto/monkeyfever/systems"
	"github.com/automoto/monkeyfever/tags"
	"github.com/hajimehoshi/ebiten/v2"
)

type recordingSound struct {
	played []cfg.SoundID
}

func (r *recordingSound) Play(id cfg.SoundID) {
	r.played = append(r.played, id)
}

// script replays one RawInput per frame, then idles.
func script(frames ...systems.RawInput) func() systems.RawInput {
	i := 0
	return func() systems.RawInput {
		if i >= len(frames) {
			return systems.RawInput{}
		}
		f := frames[i]
		i++
		return f
	}
}

func newScene(sound systems.Sound, frames ...systems.RawInput) *ChimpScene {
	return NewChimpScene(Options{
		Sound:     sound,
		FistSize:  Size{W: 56, H: 48},
		ChimpSize: Size{W: 66, H: 48},
		Poll:      script(frames...),
	})
}

func TestScenePunchThenQuit(t *testing.T) {
	aim := gamemath.Point{X: 40, Y: 5}
	sound := &recordingSound{}
	scene := newScene(sound,
		systems.RawInput{Cursor: aim, PointerPressed: true},
		systems.RawInput{Cursor: aim, PointerReleased: true},
		systems.RawInput{Cursor: aim, EscapePressed: true, PointerPressed: true},
	)

	if err := scene.Update(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if err := scene.Update(); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if err := scene.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("frame 3: got %v, want ebiten.Termination", err)
	}

	if len(sound.played) != 1 || sound.played[0] != cfg.SoundPunch {
		t.Errorf("played %v, want [punch]", sound.played)
	}

	entry, ok := tags.Chimp.First(scene.World())
	if !ok {
		t.Fatal("no chimp")
	}
	// Punched on frame 1, three spin ticks since.
	if got := components.Chimp.Get(entry).SpinAngle; got != 36 {
		t.Errorf("spin angle = %d, want 36", got)
	}
}

func TestSceneSpinReturnsToWalking(t *testing.T) {
	scene := newScene(nil, systems.RawInput{Cursor: gamemath.Point{X: 40, Y: 5}, PointerPressed: true})

	for i := 0; i < 29; i++ {
		if err := scene.Update(); err != nil {
			t.Fatal(err)
		}
	}
	entry, _ := tags.Chimp.First(scene.World())
	chimp := components.Chimp.Get(entry)
	if !chimp.Spinning() || chimp.SpinAngle != 348 {
		t.Fatalf("after 29 frames: angle %d", chimp.SpinAngle)
	}

	if err := scene.Update(); err != nil {
		t.Fatal(err)
	}
	if chimp.Spinning() || chimp.Current != chimp.SpinBaseline {
		t.Fatalf("after 30 frames: angle %d pose %+v", chimp.SpinAngle, chimp.Current)
	}
	if chimp.Rect.W != 66 || chimp.Rect.H != 48 {
		t.Errorf("rect %v should be back to the sprite size", chimp.Rect)
	}
}

func TestSceneWindowClose(t *testing.T) {
	scene := newScene(nil, systems.RawInput{Closing: true})
	if err := scene.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("got %v, want ebiten.Termination", err)
	}
}

func TestSceneBannerNeedsFonts(t *testing.T) {
	without := newScene(nil)
	if _, ok := tags.Banner.First(without.World()); ok {
		t.Error("banner spawned without fonts")
	}

	with := NewChimpScene(Options{
		Capabilities: cfg.Capabilities{FontsAvailable: true},
		FistSize:     Size{W: 56, H: 48},
		ChimpSize:    Size{W: 66, H: 48},
		Poll:         script(),
	})
	if _, ok := tags.Banner.First(with.World()); !ok {
		t.Error("banner missing with fonts available")
	}
}
