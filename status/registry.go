// Package status holds lock-free counters shared between the simulation and the host
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names written by the session
const (
	SimTicks           = "sim.ticks"
	SimImpulsesApplied = "sim.impulses.applied"
	SimImpulsesDropped = "sim.impulses.dropped"
	SimClamps          = "sim.clamps"
	SimTicksDropped    = "sim.ticks.dropped"
	QueueDropped       = "queue.dropped"
	IndexEntries       = "index.entries"
	IndexQueries       = "index.queries"
	PlayerSpeed        = "player.speed"
	GamePhase          = "game.phase"
)

// Registry groups metric maps by value type
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[AtomicLabel]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[AtomicLabel](),
	}
}

// TotalCount returns the number of registered metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Line renders the named metrics as "key=value" pairs in the given order
// Unregistered names are skipped
func (r *Registry) Line(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		var v string
		switch {
		case r.Ints.Has(k):
			v = fmt.Sprintf("%d", r.Ints.Get(k).Load())
		case r.Floats.Has(k):
			v = fmt.Sprintf("%.2f", r.Floats.Get(k).Load())
		case r.Labels.Has(k):
			v = r.Labels.Get(k).Load()
		default:
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}
