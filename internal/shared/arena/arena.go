// Package arena keeps an insertion-ordered collection indexed by id.
//
// An Arena is not safe for concurrent use; owners guard it with their own lock.
package arena

// Arena stores items in insertion order with an id→position index. Removing an
// item compacts the backing slice. Ids handed out by NextID are strictly greater
// than every id the arena has ever held, so a deleted id is never issued again.
type Arena[T any] struct {
	items     []T
	index     map[int64]int
	highWater int64
	idOf      func(T) int64
}

// New builds an empty arena; idOf extracts the identifier of an item.
func New[T any](idOf func(T) int64) *Arena[T] {
	return &Arena[T]{index: map[int64]int{}, idOf: idOf}
}

// NextID returns the identifier the next appended item should carry.
func (a *Arena[T]) NextID() int64 {
	return a.highWater + 1
}

// Put appends item, or replaces the item already stored under the same id in place.
func (a *Arena[T]) Put(item T) {
	id := a.idOf(item)
	if pos, ok := a.index[id]; ok {
		a.items[pos] = item
		return
	}
	a.index[id] = len(a.items)
	a.items = append(a.items, item)
	if id > a.highWater {
		a.highWater = id
	}
}

// Get returns the item stored under id.
func (a *Arena[T]) Get(id int64) (T, bool) {
	pos, ok := a.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return a.items[pos], true
}

// Find returns the first item, in insertion order, accepted by match.
func (a *Arena[T]) Find(match func(T) bool) (T, bool) {
	for _, item := range a.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every item accepted by match, in insertion order.
func (a *Arena[T]) Filter(match func(T) bool) []T {
	var out []T
	for _, item := range a.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Remove deletes the item stored under id and compacts the collection.
func (a *Arena[T]) Remove(id int64) bool {
	pos, ok := a.index[id]
	if !ok {
		return false
	}
	a.items = append(a.items[:pos], a.items[pos+1:]...)
	delete(a.index, id)
	for i := pos; i < len(a.items); i++ {
		a.index[a.idOf(a.items[i])] = i
	}
	return true
}

// Clear drops every item. The id high-water mark is kept.
func (a *Arena[T]) Clear() int {
	n := len(a.items)
	a.items = nil
	a.index = map[int64]int{}
	return n
}

// Items returns a copy of the collection in insertion order.
func (a *Arena[T]) Items() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Len reports the number of stored items.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
