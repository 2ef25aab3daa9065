package event

// EventType represents the type of game event
type EventType int

const (
	// EventPhysicsTick marks one fixed simulation step
	// Trigger: host clock via FixedStep | Consumer: Session pipeline | Payload: nil
	EventPhysicsTick EventType = iota

	// EventImpulse requests a velocity change for one entity
	// Trigger: input mapping, AI, scripts | Consumer: impulse summation | Payload: ImpulsePayload
	EventImpulse

	// EventEpisodeEnded signals a player left the world bounds
	// Trigger: boundary policy | Consumer: phase machine, host | Payload: *EpisodeEndedPayload
	EventEpisodeEnded

	// EventWorldReady signals the session finished generation and indexing
	// Trigger: Session | Consumer: phase machine (Loading -> MainMenu) | Payload: nil
	EventWorldReady

	// EventGameStart requests a new episode
	// Trigger: menu input | Consumer: phase machine | Payload: nil
	EventGameStart

	// EventGameQuit requests return to the main menu
	// Trigger: input | Consumer: phase machine | Payload: nil
	EventGameQuit
)

var eventNames = map[EventType]string{
	EventPhysicsTick:  "Tick",
	EventImpulse:      "Impulse",
	EventEpisodeEnded: "EpisodeEnded",
	EventWorldReady:   "WorldReady",
	EventGameStart:    "GameStart",
	EventGameQuit:     "GameQuit",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is one queued event
type GameEvent struct {
	Type    EventType
	Payload any
}
