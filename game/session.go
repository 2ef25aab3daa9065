// Package game composes the world, spatial index, integration pipeline and phase machine
package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/component"
	"github.com/lixenwraith/mars-base-one/config"
	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/event"
	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/random"
	"github.com/lixenwraith/mars-base-one/spatial"
	"github.com/lixenwraith/mars-base-one/status"
	"github.com/lixenwraith/mars-base-one/system"
	"github.com/lixenwraith/mars-base-one/vmath"
	"github.com/lixenwraith/mars-base-one/worldgen"
)

var ErrTilesUnindexed = errors.New("game: solid tiles fall outside the spatial index")

// Session owns one simulation: grid, frozen tile index, entity tables and phase
// Update and the accessors run on the simulation goroutine; only Queue().Push is concurrent
type Session struct {
	cfg config.Config

	grid  worldgen.Grid
	spawn worldgen.Point
	half  mgl64.Vec2

	world    *engine.World
	index    *spatial.Tree
	queue    *event.EventQueue
	pipeline *system.Pipeline
	boundary system.BoundaryPolicy
	machine  *phaseMachine
	registry *status.Registry

	player  core.Entity
	pending []event.ImpulsePayload
	tick    uint64

	mTicks   *atomic.Int64
	mApplied *atomic.Int64
	mDropped *atomic.Int64
	mClamps  *atomic.Int64
	mQueries *atomic.Int64
	mEntries *atomic.Int64
	mQueue   *atomic.Int64
	mSpeed   *status.AtomicFloat
	mPhase   *status.AtomicLabel
}

// UpdateResult summarizes one Update call
type UpdateResult struct {
	Ticks        int
	Step         system.StepResult
	EpisodeEnded bool
	Phase        Phase
}

// NewSession generates the grid, indexes its solid tiles and prepares empty entity tables
// The session starts in PhaseLoading with EventWorldReady queued
// A nil rng is replaced by one seeded from cfg.World.Seed, or entropy when the seed is 0
func NewSession(cfg config.Config, rng *random.Generator) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		if cfg.World.Seed != 0 {
			rng = random.Seeded(cfg.World.Seed)
		} else {
			rng = random.New()
		}
	}

	var (
		grid  worldgen.Grid
		spawn worldgen.Point
		err   error
	)
	if cfg.World.Cavern {
		grid, spawn, err = worldgen.GenerateCavern(worldgen.CavernConfig{
			Width:    cfg.World.Width,
			Height:   cfg.World.Height,
			Braiding: cfg.World.Braiding,
		}, rng)
	} else {
		grid, spawn, err = worldgen.Generate(cfg.World.Width, cfg.World.Height, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}

	index, err := spatial.BuildWithCapacity(cfg.IndexExtent(), cfg.Index.MaxDepth, cfg.Index.LeafCapacity)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	half := worldgen.HalfExtent(grid, cfg.World.TileSize)
	rejected := 0
	grid.EachSolid(func(x, y int) {
		entry := spatial.Entry{ID: y*grid.Width + x, Bounds: worldgen.TileBounds(x, y, cfg.World.TileSize, half)}
		if !index.Insert(entry) {
			rejected++
		}
	})
	index.Freeze()
	if rejected > 0 {
		return nil, fmt.Errorf("index world: %d tiles outside extent %v: %w", rejected, cfg.IndexExtent(), ErrTilesUnindexed)
	}

	s := &Session{
		cfg:      cfg,
		grid:     grid,
		spawn:    spawn,
		half:     half,
		world:    engine.NewWorld(),
		index:    index,
		queue:    event.NewEventQueue(),
		pipeline: system.NewPipeline(cfg.Physics()),
		boundary: system.BoundaryPolicy{Bounds: worldgen.WorldBounds(grid, cfg.World.TileSize)},
		registry: status.NewRegistry(),
	}
	s.bindMetrics()
	s.mEntries.Store(int64(index.Len()))

	s.machine = newPhaseMachine()
	s.machine.Observe(func(_ Phase, _ event.EventType, to Phase) {
		s.mPhase.Store(to.String())
	})
	s.mPhase.Store(s.machine.Current().String())
	s.machine.Init(s)

	stats := index.Stats()
	log.Printf("session: grid %dx%d solid=%d, index entries=%d depth=%d leaves=%d",
		grid.Width, grid.Height, grid.SolidCount(), index.Len(), index.Depth(), stats.Leaves)
	return s, nil
}

func (s *Session) bindMetrics() {
	r := s.registry
	s.mTicks = r.Ints.Get(status.SimTicks)
	s.mApplied = r.Ints.Get(status.SimImpulsesApplied)
	s.mDropped = r.Ints.Get(status.SimImpulsesDropped)
	s.mClamps = r.Ints.Get(status.SimClamps)
	s.mQueries = r.Ints.Get(status.IndexQueries)
	s.mEntries = r.Ints.Get(status.IndexEntries)
	s.mQueue = r.Ints.Get(status.QueueDropped)
	s.mSpeed = r.Floats.Get(status.PlayerSpeed)
	s.mPhase = r.Labels.Get(status.GamePhase)
}

// Update drains the queue and runs one pipeline step per queued tick
// Impulses queued after the last tick carry over to the next Update
// Control events are applied to the phase machine after the ticks
func (s *Session) Update() UpdateResult {
	drained := event.SplitTicks(s.queue.Consume(), s.pending)
	s.pending = drained.Pending

	var res UpdateResult
	for _, batch := range drained.Ticks {
		step := s.pipeline.Step(s.world, batch)
		s.tick++
		res.Ticks++
		res.Step.ImpulsesApplied += step.ImpulsesApplied
		res.Step.ImpulsesDropped += step.ImpulsesDropped
		res.Step.GravityApplied += step.GravityApplied
		res.Step.Moved += step.Moved
		res.Step.Clamped += step.Clamped

		if out := s.boundary.Check(s.world); len(out) > 0 {
			if s.Fire(event.EventEpisodeEnded) {
				res.EpisodeEnded = true
			}
		}
	}

	for _, ev := range drained.Control {
		s.Fire(ev.Type)
	}

	s.mTicks.Add(int64(res.Ticks))
	s.mApplied.Add(int64(res.Step.ImpulsesApplied))
	s.mDropped.Add(int64(res.Step.ImpulsesDropped))
	s.mClamps.Add(int64(res.Step.Clamped))
	s.mQueue.Store(int64(s.queue.Dropped()))
	if vel, ok := s.world.Velocities.Get(s.player); ok {
		s.mSpeed.Store(vel.Vec.Len())
	}

	res.Phase = s.machine.Current()
	return res
}

// announceWorld queues the event that leaves Loading
func (s *Session) announceWorld() {
	event.Emit(s.queue, event.EventWorldReady)
}

// worldIndexed holds Loading until the tile index accepts queries
func (s *Session) worldIndexed() bool {
	return s.index.Frozen()
}

// CanFire reports whether ev has a transition from the current phase
func (s *Session) CanFire(ev event.EventType) bool {
	return s.machine.Can(ev)
}

// Fire applies a phase event directly; events without a row in the current phase are ignored
func (s *Session) Fire(ev event.EventType) bool {
	_, ok := s.machine.Fire(s, ev)
	return ok
}

// beginEpisode spawns the lander at the spawn pocket and discards queued input
func (s *Session) beginEpisode() {
	s.queue.Consume()
	s.pending = nil

	pos := worldgen.TileCenter(s.spawn.X, s.spawn.Y, s.cfg.World.TileSize, s.half)
	eb := s.world.NewEntity()
	engine.With(eb, s.world.Positions, component.PositionComponent{Vec: pos})
	engine.With(eb, s.world.Velocities, component.VelocityComponent{})
	engine.With(eb, s.world.Boxes, component.BoundingBoxComponent{Width: parameter.LanderWidth, Height: parameter.LanderHeight})
	engine.With(eb, s.world.Gravity, component.GravityComponent{})
	engine.With(eb, s.world.Players, component.PlayerComponent{})
	engine.With(eb, s.world.Elements, component.GameElementComponent{})
	s.player = eb.Build()
}

// endEpisode despawns every game element
func (s *Session) endEpisode() {
	n := s.world.DestroyAll(s.world.Elements)
	s.player = core.NoEntity
	s.mSpeed.Store(0)
	log.Printf("session: despawned %d game elements at tick %d", n, s.tick)
}

// Visible returns the solid tiles overlapping region
func (s *Session) Visible(region vmath.Rect) []spatial.Entry {
	s.mQueries.Add(1)
	return s.index.Query(region)
}

// TileOf maps an index entry ID back to its grid coordinate
func (s *Session) TileOf(id int) worldgen.Point {
	return worldgen.Point{X: id % s.grid.Width, Y: id / s.grid.Width}
}

func (s *Session) World() *engine.World { return s.world }
func (s *Session) Index() *spatial.Tree { return s.index }
func (s *Session) Queue() *event.EventQueue { return s.queue }
func (s *Session) Player() core.Entity { return s.player }
func (s *Session) Phase() Phase { return s.machine.Current() }
func (s *Session) Status() *status.Registry { return s.registry }
func (s *Session) Grid() worldgen.Grid { return s.grid }
func (s *Session) Spawn() worldgen.Point { return s.spawn }
func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) Tick() uint64 { return s.tick }
func (s *Session) Bounds() vmath.Rect { return s.boundary.Bounds }
