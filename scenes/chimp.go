package scenes

import (
	"sync"

	"github.com/automoto/monkeyfever/archetypes"
	cfg "github.com/automoto/monkeyfever/config"
	"github.com/automoto/monkeyfever/systems"
	"github.com/automoto/monkeyfever/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Size is a sprite's pixel size.
type Size struct {
	W, H int
}

// Options are the startup decisions the scene is built from.
type Options struct {
	Capabilities cfg.Capabilities
	Sound        systems.Sound // nil means silent
	FistSize     Size
	ChimpSize    Size

	// Poll samples input each frame. Nil polls ebiten.
	Poll func() systems.RawInput
}

// ChimpScene runs the punch-the-chimp frame loop.
type ChimpScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
}

func NewChimpScene(opts Options) *ChimpScene {
	if opts.Sound == nil {
		opts.Sound = systems.SilentSound{}
	}
	if opts.Poll == nil {
		opts.Poll = systems.PollInput
	}
	return &ChimpScene{opts: opts}
}

// Update runs one frame. It returns ebiten.Termination once a quit or escape
// event has been handled; the frame that handled it still completes.
func (cs *ChimpScene) Update() error {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if systems.IsStopped(cs.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (cs *ChimpScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// World exposes the entity world for inspection.
func (cs *ChimpScene) World() donburi.World {
	cs.once.Do(cs.configure)
	return cs.ecs.World
}

func (cs *ChimpScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewUpdateInput(cs.opts.Poll))
	ecs.AddSystem(systems.UpdatePunch)
	ecs.AddSystem(systems.UpdateActors)
	ecs.AddSystem(systems.UpdateFlash)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateBanner)
	ecs.AddSystem(systems.NewUpdateAudio(cs.opts.Sound))

	ecs.AddRenderer(archetypes.Default, systems.DrawBackground)
	ecs.AddRenderer(archetypes.Default, systems.DrawBanner)
	ecs.AddRenderer(archetypes.Default, systems.DrawSprites)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	cs.ecs = ecs

	factory.CreateDirector(cs.ecs, cs.opts.Capabilities)
	factory.CreateSpace(cs.ecs,
		cfg.C.Width, cfg.C.Height,
		cfg.Collision.CellWidth, cfg.Collision.CellHeight,
		cfg.Collision.Margin,
	)
	if cs.opts.Capabilities.FontsAvailable {
		factory.CreateBanner(cs.ecs)
	}
	factory.CreateFist(cs.ecs, cs.opts.FistSize.W, cs.opts.FistSize.H)
	factory.CreateChimp(cs.ecs, cs.opts.ChimpSize.W, cs.opts.ChimpSize.H)
}
