package groupx

import "iter"

// TryGroupBy is GroupBy for a key function that can fail. If the key
// function returns an error for any element, the whole call fails with
// that same error and no partial result: the groups built so far are
// discarded and a nil *Groups is returned. Otherwise it behaves exactly
// like GroupBy.
func TryGroupBy[V any, K comparable](collection []V, key func(item V) (K, error)) (*Groups[K, V], error) {
	result := newGroups[K, V](len(collection))

	for _, item := range collection {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		result.add(k, item)
	}

	return result, nil
}

// TryGroupBySeq groups a lazily-produced sequence whose production can
// itself fail. The sequence yields (element, error) pairs; the first
// non-nil error aborts the call and is returned unchanged, as is the
// first error returned by the key function. No partial result is
// returned on failure.
func TryGroupBySeq[V any, K comparable](seq iter.Seq2[V, error], key func(item V) (K, error)) (*Groups[K, V], error) {
	result := newGroups[K, V](0)

	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		result.add(k, item)
	}

	return result, nil
}
