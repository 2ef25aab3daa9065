package fsm

// ActionFunc executes a side effect on entering or leaving a state
type ActionFunc[C any] func(ctx C)

// GuardFunc returns true if the transition should occur
type GuardFunc[C any] func(ctx C) bool

// TransitionFunc observes every completed transition
type TransitionFunc[S, E comparable] func(from S, ev E, to S)

// key addresses one row of the transition table
type key[S, E comparable] struct {
	from S
	ev   E
}

// transition is the target and optional guard for a table row
type transition[S comparable, C any] struct {
	to    S
	guard GuardFunc[C]
}
