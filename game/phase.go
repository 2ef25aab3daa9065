package game

import (
	"log"

	"github.com/lixenwraith/mars-base-one/engine/fsm"
	"github.com/lixenwraith/mars-base-one/event"
)

// Phase is the top-level game state
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseMainMenu
	PhasePlaying
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseLoading:  "loading",
	PhaseMainMenu: "menu",
	PhasePlaying:  "playing",
	PhaseGameOver: "game over",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

type phaseMachine = fsm.Machine[Phase, event.EventType, *Session]

// newPhaseMachine wires the transition table and the Loading and Playing hooks
func newPhaseMachine() *phaseMachine {
	m := fsm.NewMachine[Phase, event.EventType, *Session](PhaseLoading)
	m.AllowIf(PhaseLoading, event.EventWorldReady, PhaseMainMenu, (*Session).worldIndexed).
		Allow(PhaseMainMenu, event.EventGameStart, PhasePlaying).
		Allow(PhasePlaying, event.EventEpisodeEnded, PhaseGameOver).
		Allow(PhasePlaying, event.EventGameQuit, PhaseMainMenu).
		Allow(PhaseGameOver, event.EventGameStart, PhasePlaying).
		Allow(PhaseGameOver, event.EventGameQuit, PhaseMainMenu)

	m.OnEnter(PhaseLoading, (*Session).announceWorld)
	m.OnEnter(PhasePlaying, (*Session).beginEpisode)
	m.OnExit(PhasePlaying, (*Session).endEpisode)

	m.Observe(func(from Phase, ev event.EventType, to Phase) {
		log.Printf("phase: %s --%s--> %s", from, ev, to)
	})
	return m
}
