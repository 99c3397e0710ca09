package groupx

// KeyFunc classifies an element into a group by computing its key.
// It is expected to be deterministic: calling it twice with the same
// element should produce equal keys. It is invoked exactly once per
// element, in input order.
type KeyFunc[V any, K comparable] func(item V) K

// Identity returns the element itself as its key. It is the default
// key function used by Group and Count.
func Identity[V comparable](item V) V {
	return item
}
