package event

import (
	"sync/atomic"

	"github.com/lixenwraith/mars-base-one/parameter"
)

// slot carries one event plus its sequence stamp
// seq == pos: free for the producer claiming pos
// seq == pos+1: written, readable by the consumer at pos
type slot struct {
	seq atomic.Uint64
	ev  GameEvent
}

// EventQueue is a bounded lock-free MPSC ring of game events
// Thread-Safety:
//   - Push: any goroutine (host input, sim loop)
//   - Consume: the sim loop only
//
// Overflow: Push rejects the new event when the ring is full
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	enqueue atomic.Uint64
	dequeue atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	eq := &EventQueue{}
	for i := range eq.slots {
		eq.slots[i].seq.Store(uint64(i))
	}
	return eq
}

// Push claims the next slot and publishes ev into it
// Returns false and counts a drop when the consumer has fallen a full ring behind
func (eq *EventQueue) Push(ev GameEvent) bool {
	for {
		pos := eq.enqueue.Load()
		s := &eq.slots[pos&parameter.EventBufferMask]
		seq := s.seq.Load()

		switch {
		case seq == pos:
			if eq.enqueue.CompareAndSwap(pos, pos+1) {
				s.ev = ev
				s.seq.Store(pos + 1)
				return true
			}
		case seq < pos:
			eq.dropped.Add(1)
			return false
		}
		// seq > pos: another producer won this slot, reload
	}
}

// Consume drains published events in FIFO order
// Stops at the first slot whose producer has not finished writing
func (eq *EventQueue) Consume() []GameEvent {
	pos := eq.dequeue.Load()
	var out []GameEvent
	for {
		s := &eq.slots[pos&parameter.EventBufferMask]
		if s.seq.Load() != pos+1 {
			break
		}
		out = append(out, s.ev)
		s.ev = GameEvent{}
		s.seq.Store(pos + parameter.EventQueueSize)
		pos++
	}
	eq.dequeue.Store(pos)
	return out
}

// Len returns the approximate number of claimed, unconsumed slots
func (eq *EventQueue) Len() int {
	tail, head := eq.enqueue.Load(), eq.dequeue.Load()
	if tail <= head {
		return 0
	}
	return min(int(tail-head), parameter.EventQueueSize)
}

// Dropped returns how many events Push rejected on a full ring
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
