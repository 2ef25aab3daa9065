package fsm

import "fmt"

// Machine is a flat finite state machine over a tagged state enum S and event enum E
// The transition table is explicit: an event not listed for the current state is ignored
// C is the context passed to actions and guards
type Machine[S, E comparable, C any] struct {
	current S

	table   map[key[S, E]]transition[S, C]
	onEnter map[S][]ActionFunc[C]
	onExit  map[S][]ActionFunc[C]

	observers []TransitionFunc[S, E]
}

// NewMachine creates a machine resting in initial without running its enter actions
func NewMachine[S, E comparable, C any](initial S) *Machine[S, E, C] {
	return &Machine[S, E, C]{
		current: initial,
		table:   make(map[key[S, E]]transition[S, C]),
		onEnter: make(map[S][]ActionFunc[C]),
		onExit:  make(map[S][]ActionFunc[C]),
	}
}

// Allow adds the row (from, ev) -> to
// Panics on a duplicate row; the table must be unambiguous
func (m *Machine[S, E, C]) Allow(from S, ev E, to S) *Machine[S, E, C] {
	return m.AllowIf(from, ev, to, nil)
}

// AllowIf adds a guarded row; a nil guard always passes
func (m *Machine[S, E, C]) AllowIf(from S, ev E, to S, guard GuardFunc[C]) *Machine[S, E, C] {
	k := key[S, E]{from: from, ev: ev}
	if _, dup := m.table[k]; dup {
		panic(fmt.Sprintf("fsm: duplicate transition %v --%v-->", from, ev))
	}
	m.table[k] = transition[S, C]{to: to, guard: guard}
	return m
}

// OnEnter registers an action run when s becomes current
func (m *Machine[S, E, C]) OnEnter(s S, fn ActionFunc[C]) *Machine[S, E, C] {
	m.onEnter[s] = append(m.onEnter[s], fn)
	return m
}

// OnExit registers an action run when s stops being current
func (m *Machine[S, E, C]) OnExit(s S, fn ActionFunc[C]) *Machine[S, E, C] {
	m.onExit[s] = append(m.onExit[s], fn)
	return m
}

// Observe registers a callback invoked after every transition
func (m *Machine[S, E, C]) Observe(fn TransitionFunc[S, E]) {
	m.observers = append(m.observers, fn)
}

// Current returns the active state
func (m *Machine[S, E, C]) Current() S {
	return m.current
}

// Can reports whether ev has a row for the current state, ignoring guards
func (m *Machine[S, E, C]) Can(ev E) bool {
	_, ok := m.table[key[S, E]{from: m.current, ev: ev}]
	return ok
}

// Fire applies ev to the current state
// Returns the resulting state and whether a transition happened
func (m *Machine[S, E, C]) Fire(ctx C, ev E) (S, bool) {
	t, ok := m.table[key[S, E]{from: m.current, ev: ev}]
	if !ok {
		return m.current, false
	}
	if t.guard != nil && !t.guard(ctx) {
		return m.current, false
	}

	from := m.current
	for _, fn := range m.onExit[from] {
		fn(ctx)
	}
	m.current = t.to
	for _, fn := range m.onEnter[t.to] {
		fn(ctx)
	}
	for _, obs := range m.observers {
		obs(from, ev, t.to)
	}
	return m.current, true
}

// Init runs the enter actions of the current state
// Call once after the table and actions are registered
func (m *Machine[S, E, C]) Init(ctx C) {
	for _, fn := range m.onEnter[m.current] {
		fn(ctx)
	}
}

