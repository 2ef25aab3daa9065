package event

// Drained is one queue drain split at tick boundaries
type Drained struct {
	// Ticks holds one impulse batch per tick marker, in order
	// An impulse belongs to the first tick marker queued after it
	Ticks [][]ImpulsePayload

	// Pending holds impulses queued after the last tick marker
	// They belong to the next drain's first tick
	Pending []ImpulsePayload

	// Control holds every other event in FIFO order
	Control []GameEvent
}

// SplitTicks groups drained events into per-tick impulse batches
// pending is the carry from the previous drain and is placed before the new events
// Impulse events with a malformed payload are dropped
func SplitTicks(events []GameEvent, pending []ImpulsePayload) Drained {
	var d Drained
	current := pending

	for _, ev := range events {
		switch ev.Type {
		case EventImpulse:
			p, ok := ev.Payload.(ImpulsePayload)
			if !ok {
				continue
			}
			current = append(current, p)
		case EventPhysicsTick:
			d.Ticks = append(d.Ticks, current)
			current = nil
		default:
			d.Control = append(d.Control, ev)
		}
	}

	d.Pending = current
	return d
}
