package main

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/audio"
	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/event"
	"github.com/lixenwraith/mars-base-one/game"
	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/status"
	"github.com/lixenwraith/mars-base-one/vmath"
	"github.com/lixenwraith/mars-base-one/worldgen"
)

var (
	styleRock   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(178, 84, 44))
	styleLander = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Host owns the screen and drives the session at a fixed tick rate
type Host struct {
	screen  tcell.Screen
	session *game.Session
	cues    *audio.CuePlayer
	clock   *engine.PausableClock
	stepper *engine.FixedStep

	// player mirrors session.Player() for the input goroutine
	player   atomic.Uint64
	commands chan Command
	phase    game.Phase

	droppedTicks *atomic.Int64
}

// NewHost wires a host; source drives the pausable clock
func NewHost(screen tcell.Screen, session *game.Session, cues *audio.CuePlayer, source engine.TimeProvider) *Host {
	cfg := session.Config()
	h := &Host{
		screen:       screen,
		session:      session,
		cues:         cues,
		clock:        engine.NewPausableClock(source),
		stepper:      engine.NewFixedStep(cfg.TickInterval(), cfg.Sim.MaxCatchUpTicks),
		commands:     make(chan Command, 16),
		phase:        session.Phase(),
		droppedTicks: session.Status().Ints.Get(status.SimTicksDropped),
	}
	h.stepper.Reset(h.clock.Now())
	return h
}

// handleKey runs on the input goroutine
// Impulses go straight to the lock-free queue; commands go to the frame loop
func (h *Host) handleKey(key tcell.Key, r rune) {
	act, ok := mapKey(key, r)
	if !ok {
		return
	}
	if !act.hasImpulse() {
		h.commands <- act.Command
		return
	}

	target := core.Entity(h.player.Load())
	if target == core.NoEntity {
		return
	}
	q := h.session.Queue()
	if act.Absolute {
		if !event.EmitVelocity(q, target, act.Impulse, event.SourceInput) {
			log.Printf("host: queue full, dropped velocity set")
		}
		return
	}
	if !event.EmitImpulse(q, target, act.Impulse, event.SourceInput) {
		log.Printf("host: queue full, dropped impulse")
		return
	}
	if act.Thrust {
		h.cues.Play(audio.CueThrust)
	}
}

// pollInput forwards terminal events until the screen is finalized
func (h *Host) pollInput() {
	for {
		switch ev := h.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			h.handleKey(ev.Key(), ev.Rune())
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
}

// apply handles a command on the frame goroutine; false ends the loop
func (h *Host) apply(cmd Command) bool {
	q := h.session.Queue()
	switch cmd {
	case CmdStart:
		h.emit(q, event.EventGameStart)
	case CmdQuit:
		// Quit with nowhere to go back to leaves the program
		if !h.session.CanFire(event.EventGameQuit) {
			return false
		}
		h.emit(q, event.EventGameQuit)
	case CmdExit:
		return false
	case CmdPause:
		if h.clock.IsPaused() {
			h.clock.Resume()
		} else {
			h.clock.Pause()
		}
	case CmdMute:
		h.cues.SetMuted(!h.cues.Muted())
	}
	return true
}

func (h *Host) emit(q *event.EventQueue, t event.EventType) {
	if !event.Emit(q, t) {
		log.Printf("host: queue full, dropped %s", t)
	}
}

// frame converts elapsed clock time into ticks, updates the session and redraws
func (h *Host) frame() game.UpdateResult {
	n := h.stepper.Advance(h.clock.Now())
	if queued := event.EmitTicks(h.session.Queue(), n); queued < n {
		log.Printf("host: queue full, dropped %d of %d ticks", n-queued, n)
	}

	res := h.session.Update()
	h.player.Store(uint64(h.session.Player()))
	h.droppedTicks.Store(int64(h.stepper.Dropped()))

	if res.Phase != h.phase {
		switch {
		case res.Phase == game.PhasePlaying:
			h.cues.Play(audio.CueStart)
		case res.EpisodeEnded:
			h.cues.Play(audio.CueCrash)
		}
		h.phase = res.Phase
	}

	h.draw()
	return res
}

// run is the frame loop; it returns on exit command
func (h *Host) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	core.Go(h.pollInput)

	for {
		select {
		case cmd := <-h.commands:
			if !h.apply(cmd) {
				log.Printf("host: exit at tick %d", h.session.Tick())
				return
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

// view returns the screen size in tiles available for the world, excluding the status row
func (h *Host) view() (cols, rows int) {
	w, ht := h.screen.Size()
	return min(w, parameter.ViewTilesX), min(ht-1, parameter.ViewTilesY)
}

// camera is the world point drawn at the screen center
func (h *Host) camera(snap game.Snapshot) mgl64.Vec2 {
	if snap.Player != nil {
		return snap.Player.Position
	}
	cfg := h.session.Config()
	sp := h.session.Spawn()
	return worldgen.TileCenter(sp.X, sp.Y, cfg.World.TileSize, worldgen.HalfExtent(h.session.Grid(), cfg.World.TileSize))
}

func (h *Host) draw() {
	h.screen.Clear()
	snap := h.session.Snapshot()
	cols, rows := h.view()

	if cols > 0 && rows > 0 {
		h.drawWorld(snap, cols, rows)
	}
	h.drawBanner(snap.Phase, rows)
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawWorld(snap game.Snapshot, cols, rows int) {
	cfg := h.session.Config()
	size := cfg.World.TileSize
	half := worldgen.HalfExtent(h.session.Grid(), size)

	cam := worldgen.TileAt(h.camera(snap), size, half)
	center := worldgen.TileCenter(cam.X, cam.Y, size, half)
	region := vmath.RectFromCenter(center, mgl64.Vec2{float64(cols) * size, float64(rows) * size})

	// World Y points up, screen rows point down
	toScreen := func(p worldgen.Point) (int, int) {
		return p.X - cam.X + cols/2, rows/2 - (p.Y - cam.Y)
	}

	for _, e := range h.session.Visible(region) {
		x, y := toScreen(h.session.TileOf(e.ID))
		if x >= 0 && x < cols && y >= 0 && y < rows {
			h.screen.SetContent(x, y, '█', nil, styleRock)
		}
	}

	for _, b := range snap.Bodies {
		x, y := toScreen(worldgen.TileAt(b.Position, size, half))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			continue
		}
		r := '•'
		if b.Player {
			r = '▲'
		}
		h.screen.SetContent(x, y, r, nil, styleLander)
	}
}

func (h *Host) drawBanner(phase game.Phase, rows int) {
	var text string
	switch phase {
	case game.PhaseLoading:
		text = "generating world..."
	case game.PhaseMainMenu:
		text = fmt.Sprintf("%s - ENTER to launch, ESC to leave", h.session.Config().Title)
	case game.PhaseGameOver:
		text = "LOST CONTACT - ENTER to relaunch, ESC for menu"
	default:
		if h.clock.IsPaused() {
			text = "paused"
		}
	}
	if text == "" {
		return
	}
	w, _ := h.screen.Size()
	h.drawText(max(0, (w-len([]rune(text)))/2), rows/2, text, styleBanner)
}

func (h *Host) drawStatus() {
	w, ht := h.screen.Size()
	if ht < 1 {
		return
	}
	for x := 0; x < w; x++ {
		h.screen.SetContent(x, ht-1, ' ', nil, styleStatus)
	}
	line := h.session.Status().Line(
		status.GamePhase, status.SimTicks, status.PlayerSpeed,
		status.SimClamps, status.SimImpulsesApplied, status.SimTicksDropped,
	)
	if h.cues.Muted() {
		line += " [muted]"
	}
	h.drawText(0, ht-1, line, styleStatus)
}

func (h *Host) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
