package groupx

import "iter"

// Groups is a mapping from key to the elements that produced that key.
// Keys are kept in order of first occurrence in the input, and each
// group keeps its elements in input order. The zero value is not usable;
// Groups values are produced by the grouping functions of this package.
type Groups[K comparable, V any] struct {
	groups map[K][]V
	order  []K
}

func newGroups[K comparable, V any](sizeHint int) *Groups[K, V] {
	return &Groups[K, V]{
		groups: make(map[K][]V, sizeHint),
	}
}

func (g *Groups[K, V]) add(key K, item V) {
	if _, ok := g.groups[key]; !ok {
		g.order = append(g.order, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

// Get returns the group for key and whether the key was present in the
// input. The returned slice is the group itself, not a copy.
func (g *Groups[K, V]) Get(key K) ([]V, bool) {
	items, ok := g.groups[key]
	return items, ok
}

// Has reports whether at least one element produced key.
func (g *Groups[K, V]) Has(key K) bool {
	_, ok := g.groups[key]
	return ok
}

// Count returns the number of elements in the group for key, or 0 if
// the key was never produced.
func (g *Groups[K, V]) Count(key K) int {
	return len(g.groups[key])
}

// Keys returns a copy of the keys in first-occurrence order.
func (g *Groups[K, V]) Keys() []K {
	keys := make([]K, len(g.order))
	copy(keys, g.order)
	return keys
}

// Len returns the number of distinct keys.
func (g *Groups[K, V]) Len() int {
	return len(g.order)
}

// Total returns the number of elements across all groups, which equals
// the number of input elements consumed.
func (g *Groups[K, V]) Total() int {
	n := 0
	for _, items := range g.groups {
		n += len(items)
	}
	return n
}

// All iterates over the groups in first-occurrence order of their keys.
func (g *Groups[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for _, key := range g.order {
			if !yield(key, g.groups[key]) {
				return
			}
		}
	}
}

// AsMap returns the underlying map view. The map and its slices are
// shared with the Groups value, not copied; mutating them mutates the
// Groups. Iteration order over the map is unspecified, use All or Keys
// when order matters.
func (g *Groups[K, V]) AsMap() map[K][]V {
	return g.groups
}
