package random

import "sync"

// Locking is a Generator guarded by a mutex for use across goroutines
type Locking struct {
	mu  sync.Mutex
	gen *Generator
}

// NewLocking returns a locking generator seeded from entropy
func NewLocking() *Locking {
	return &Locking{gen: New()}
}

// SeededLocking returns a locking generator with a deterministic sequence
func SeededLocking(seed uint64) *Locking {
	return &Locking{gen: Seeded(seed)}
}

func (l *Locking) Range(lo, hi int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Range(lo, hi)
}

func (l *Locking) RangeInclusive(lo, hi int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.RangeInclusive(lo, hi)
}

func (l *Locking) RangeFloat(lo, hi float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.RangeFloat(lo, hi)
}

func (l *Locking) Float() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Float()
}

func (l *Locking) Next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Next()
}
