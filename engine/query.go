package engine

import (
	"sort"

	"github.com/lixenwraith/mars-base-one/core"
)

// QueryBuilder finds entities present in every listed store
// Intersection starts from the smallest store
type QueryBuilder struct {
	stores   []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	entities := world.Query().
//	    With(world.Positions).
//	    With(world.Velocities).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]AnyStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in all stores, in the dense order of the smallest store
// Repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	qb.results = candidates
	return qb.results
}
