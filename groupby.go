package groupx

// GroupBy consumes the collection once, left to right, and returns its
// elements grouped by the key computed for each of them. Keys appear in
// the result in order of first occurrence, and each group preserves the
// input order of its elements. The result is built fresh on every call
// and holds no reference to the collection.
//
// K must be usable as a map key. When K is an interface type, a key
// holding a non-comparable dynamic value makes the insert panic at the
// first offending element, as for any Go map.
func GroupBy[V any, K comparable](collection []V, key KeyFunc[V, K]) *Groups[K, V] {
	result := newGroups[K, V](len(collection))

	for _, item := range collection {
		result.add(key(item), item)
	}

	return result
}

// Group groups the collection by the elements themselves, i.e. GroupBy
// with the identity key function.
func Group[V comparable](collection []V) *Groups[V, V] {
	return GroupBy(collection, Identity[V])
}
