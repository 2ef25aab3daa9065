package engine

import (
	"testing"

	"github.com/lixenwraith/mars-base-one/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	e1, e2, e3 := core.NewEntity(1, 1), core.NewEntity(2, 1), core.NewEntity(3, 1)

	s.Set(e1, 10)
	s.Set(e2, 20)
	s.Set(e3, 30)
	s.Set(e2, 21)

	if s.Count() != 3 {
		t.Fatalf("Count = %d, want 3", s.Count())
	}
	if v, _ := s.Get(e2); v != 21 {
		t.Errorf("Get(e2) = %d, want 21", v)
	}

	s.RemoveEntity(e1)
	if s.HasEntity(e1) {
		t.Error("e1 still present")
	}
	// Swap-remove must keep the moved entry addressable
	if v, ok := s.Get(e3); !ok || v != 30 {
		t.Errorf("Get(e3) = %d, %v after swap-remove", v, ok)
	}
	if v, ok := s.Get(e2); !ok || v != 21 {
		t.Errorf("Get(e2) = %d, %v after swap-remove", v, ok)
	}

	s.RemoveEntity(e1)
	if s.Count() != 2 {
		t.Errorf("Count = %d after double remove", s.Count())
	}
}

func TestStorePtrMutates(t *testing.T) {
	s := NewStore[int]()
	e := core.NewEntity(0, 1)
	s.Set(e, 1)

	p, ok := s.Ptr(e)
	if !ok {
		t.Fatal("Ptr missing")
	}
	*p = 5
	if v, _ := s.Get(e); v != 5 {
		t.Errorf("Get = %d, want 5", v)
	}

	if _, ok := s.Ptr(core.NewEntity(9, 1)); ok {
		t.Error("Ptr returned value for missing entity")
	}
}

func TestStoreEachAndClear(t *testing.T) {
	s := NewStore[int]()
	for i := uint32(0); i < 5; i++ {
		s.Set(core.NewEntity(i, 1), int(i))
	}
	s.Each(func(_ core.Entity, v *int) { *v *= 2 })

	sum := 0
	s.Each(func(_ core.Entity, v *int) { sum += *v })
	if sum != 20 {
		t.Errorf("sum = %d, want 20", sum)
	}

	s.Clear()
	if s.Count() != 0 || len(s.All()) != 0 {
		t.Error("store not empty after Clear")
	}
}
