package system

import (
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/event"
	"github.com/lixenwraith/mars-base-one/physics"
)

// StepResult summarizes one pipeline pass
type StepResult struct {
	ImpulsesApplied int
	ImpulsesDropped int
	GravityApplied  int
	Moved           int
	Clamped         int
}

// Pipeline runs the fixed-order integration steps for one tick:
// impulse summation, gravity, velocity integration, terminal-velocity clamp
// Each step completes for every entity before the next step starts
type Pipeline struct {
	impulse  *ImpulseSystem
	gravity  GravitySystem
	velocity VelocitySystem
	clamp    ClampSystem
}

// NewPipeline builds a pipeline from integration constants
func NewPipeline(cfg physics.Config) *Pipeline {
	return &Pipeline{
		impulse:  NewImpulseSystem(),
		gravity:  GravitySystem{Gravity: cfg.Gravity},
		velocity: VelocitySystem{Dt: cfg.Dt},
		clamp:    ClampSystem{TerminalVelocity: cfg.TerminalVelocity},
	}
}

// Step runs exactly one tick over w using the tick's impulses
func (p *Pipeline) Step(w *engine.World, impulses []event.ImpulsePayload) StepResult {
	var r StepResult
	r.ImpulsesApplied, r.ImpulsesDropped = p.impulse.Run(w, impulses)
	r.GravityApplied = p.gravity.Run(w)
	r.Moved = p.velocity.Run(w)
	r.Clamped = p.clamp.Run(w)
	return r
}
