package groupx

// PartitionBy returns the groups of GroupBy without their keys, in
// first-occurrence order of the keys.
func PartitionBy[V any, K comparable](collection []V, key KeyFunc[V, K]) [][]V {
	grouped := GroupBy(collection, key)

	result := make([][]V, 0, grouped.Len())
	for _, k := range grouped.order {
		result = append(result, grouped.groups[k])
	}

	return result
}

// CountBy counts the elements of each group instead of collecting them.
func CountBy[V any, K comparable](collection []V, key KeyFunc[V, K]) map[K]int {
	result := make(map[K]int)

	for _, item := range collection {
		result[key(item)]++
	}

	return result
}

// Count counts occurrences of each element, i.e. CountBy with the
// identity key function.
func Count[V comparable](collection []V) map[V]int {
	return CountBy(collection, Identity[V])
}
