package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its bit pattern; zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MaxLabelLen bounds AtomicLabel values so the status line stays one row
const MaxLabelLen = 24

// AtomicLabel is a short string readable from the render goroutine
type AtomicLabel struct {
	ptr atomic.Pointer[string]
}

// Store truncates val to MaxLabelLen
func (l *AtomicLabel) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

func (l *AtomicLabel) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
