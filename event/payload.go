package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/core"
)

// ImpulseSource tags who produced an impulse; diagnostic only
type ImpulseSource int

const (
	SourceUnknown ImpulseSource = iota
	SourceInput
	SourceAI
	SourceGravity
	SourceScript
)

// ImpulsePayload is a requested instantaneous velocity change
// Additive impulses are summed per target; an absolute impulse replaces the velocity outright
type ImpulsePayload struct {
	Target   core.Entity
	Amount   mgl64.Vec2
	Absolute bool
	Source   ImpulseSource
}

// EpisodeEndedPayload lists the entities that crossed the bound on the signalling tick
type EpisodeEndedPayload struct {
	Entities []core.Entity
	Tick     uint64
}
