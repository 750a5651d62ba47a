// Package store holds the in-memory entity collections backing the
// dashboard. Collections are ordered newest-first and hand out copies:
// callers never see or share the backing slice.
package store

import "evalboard/internal/domain"

// Entity is anything the store can hold, identified by a stable string id.
type Entity interface {
	EntityID() string
}

// Collection is an ordered set of entities. The zero value is an empty
// collection ready for use.
type Collection[T Entity] struct {
	items []T
}

// NewCollection builds a collection from items, preserving their order.
func NewCollection[T Entity](items ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, len(items))}
	copy(c.items, items)
	return c
}

// Append inserts item at the front so listings show newest entries first.
func (c *Collection[T]) Append(item T) {
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the entity with the same id for item, keeping its position.
// It reports whether a match was found; on a miss the collection is
// unchanged.
func (c *Collection[T]) Replace(item T) bool {
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// ByID looks up an entity by id.
func (c *Collection[T]) ByID(id string) (T, bool) {
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the collection in display order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entities held.
func (c *Collection[T]) Len() int { return len(c.items) }

// First returns the entity at the front of the collection, i.e. the most
// recently appended one.
func (c *Collection[T]) First() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[0], true
}

// ---------------------------------------------------------------------------

// Store bundles the six entity collections plus the fixed report-template
// catalog and dashboard system status. It is not safe for concurrent
// mutation; the single-threaded update loop owns it.
type Store struct {
	Models     Collection[domain.TargetModel]
	Tasks      Collection[domain.EvaluationTask]
	Strategies Collection[domain.EvaluationStrategy]
	Datasets   Collection[domain.Dataset]
	Tools      Collection[domain.EvaluationTool]
	Reports    Collection[domain.EvaluationReport]

	// Templates is the fixed report-template catalog. Read-only.
	Templates []domain.ReportTemplate

	Agents []domain.AgentStatus
	Infra  domain.InfrastructureStats
}

// TemplateByID looks up a report template from the catalog.
func (s *Store) TemplateByID(id string) (domain.ReportTemplate, bool) {
	for _, t := range s.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.ReportTemplate{}, false
}
