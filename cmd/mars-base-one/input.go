package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/parameter"
)

// Command is a non-physics key action handled by the frame loop
type Command int

const (
	CmdNone Command = iota
	CmdStart
	CmdQuit // leave the episode, or exit from the menu
	CmdExit
	CmdPause
	CmdMute
)

// Action is the mapped meaning of one key press
type Action struct {
	Impulse  mgl64.Vec2
	Absolute bool
	Thrust   bool
	Command  Command
}

// mapKey translates a key press; ok is false for unbound keys
// r is only consulted for tcell.KeyRune
func mapKey(key tcell.Key, r rune) (Action, bool) {
	switch key {
	case tcell.KeyUp:
		return Action{Impulse: mgl64.Vec2{0, parameter.ThrustUp}, Thrust: true}, true
	case tcell.KeyDown:
		return Action{Impulse: mgl64.Vec2{0, -parameter.ThrustBrake}, Thrust: true}, true
	case tcell.KeyLeft:
		return Action{Impulse: mgl64.Vec2{-parameter.ThrustSide, 0}, Thrust: true}, true
	case tcell.KeyRight:
		return Action{Impulse: mgl64.Vec2{parameter.ThrustSide, 0}, Thrust: true}, true
	case tcell.KeyEnter:
		return Action{Command: CmdStart}, true
	case tcell.KeyEscape:
		return Action{Command: CmdQuit}, true
	case tcell.KeyCtrlC:
		return Action{Command: CmdExit}, true
	case tcell.KeyRune:
	default:
		return Action{}, false
	}

	switch r {
	case 'w', ' ':
		return Action{Impulse: mgl64.Vec2{0, parameter.ThrustUp}, Thrust: true}, true
	case 's':
		return Action{Impulse: mgl64.Vec2{0, -parameter.ThrustBrake}, Thrust: true}, true
	case 'a':
		return Action{Impulse: mgl64.Vec2{-parameter.ThrustSide, 0}, Thrust: true}, true
	case 'd':
		return Action{Impulse: mgl64.Vec2{parameter.ThrustSide, 0}, Thrust: true}, true
	case 'x':
		// Hover: cancel all motion for one tick
		return Action{Absolute: true}, true
	case 'p':
		return Action{Command: CmdPause}, true
	case 'm':
		return Action{Command: CmdMute}, true
	case 'q':
		return Action{Command: CmdExit}, true
	}
	return Action{}, false
}

// hasImpulse reports whether the action feeds the physics queue
func (a Action) hasImpulse() bool {
	return a.Command == CmdNone
}
