// Package norm provides a normalized, insertion-ordered entity collection.
//
// A Collection indexes entities by id and separately records the order ids
// were first inserted in, which defines iteration and display order. All
// operations are pure: they never mutate their receiver and return a new
// collection, so observers can rely on equality-based change detection and
// earlier snapshots stay valid (structural sharing, undo).
package norm

// Collection is an id-indexed set of entities with stable insertion order.
// Every id in IDs has exactly one entry in ByID and vice versa. The zero
// value is an empty, usable collection.
type Collection[E any] struct {
	ByID map[string]E
	IDs  []string
}

// New returns an empty collection.
func New[E any]() Collection[E] {
	return Collection[E]{ByID: map[string]E{}}
}

// Get returns the entity stored under id.
func (c Collection[E]) Get(id string) (E, bool) {
	e, ok := c.ByID[id]
	return e, ok
}

// Has reports whether an entity is stored under id.
func (c Collection[E]) Has(id string) bool {
	_, ok := c.ByID[id]
	return ok
}

// Len returns the number of entities in the collection.
func (c Collection[E]) Len() int { return len(c.IDs) }

// All returns the entities in insertion order.
func (c Collection[E]) All() []E {
	out := make([]E, 0, len(c.IDs))
	for _, id := range c.IDs {
		out = append(out, c.ByID[id])
	}
	return out
}

// Insert returns a collection with e stored under id, appended to the end
// of the order. If id is already present, the receiver is returned
// unchanged: duplicate insertion is a silent no-op, never an overwrite.
func (c Collection[E]) Insert(id string, e E) Collection[E] {
	if _, ok := c.ByID[id]; ok {
		return c
	}

	byID := make(map[string]E, len(c.ByID)+1)
	for k, v := range c.ByID {
		byID[k] = v
	}
	byID[id] = e

	ids := make([]string, len(c.IDs), len(c.IDs)+1)
	copy(ids, c.IDs)
	ids = append(ids, id)

	return Collection[E]{ByID: byID, IDs: ids}
}

// Update returns a collection with the entity under id replaced by fn(old).
// fn receives a copy of the stored entity and returns the replacement; the
// entity keeps its position in the order. If id is absent, the receiver is
// returned unchanged — updates may race with entity removal elsewhere, so
// an unknown id is tolerated rather than treated as an error.
func (c Collection[E]) Update(id string, fn func(E) E) Collection[E] {
	old, ok := c.ByID[id]
	if !ok {
		return c
	}

	byID := make(map[string]E, len(c.ByID))
	for k, v := range c.ByID {
		byID[k] = v
	}
	byID[id] = fn(old)

	// The order is untouched, so the IDs slice is shared with the receiver.
	return Collection[E]{ByID: byID, IDs: c.IDs}
}
