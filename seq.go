package groupx

import "iter"

// GroupBySeq is GroupBy over a lazily-produced sequence. The sequence
// is consumed exactly once; any blocking inherent in producing the next
// element happens on the calling goroutine.
func GroupBySeq[V any, K comparable](seq iter.Seq[V], key KeyFunc[V, K]) *Groups[K, V] {
	result := newGroups[K, V](0)

	for item := range seq {
		result.add(key(item), item)
	}

	return result
}

// Collect groups a sequence that already carries a key per element,
// such as the output of another iterator transformation.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Groups[K, V] {
	result := newGroups[K, V](0)

	for key, item := range seq {
		result.add(key, item)
	}

	return result
}

// ChanValues adapts a channel to a sequence, yielding values until the
// channel is closed or the consumer stops. No goroutine is spawned: the
// drain runs inside the consumer's range loop.
func ChanValues[V any](ch <-chan V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}
