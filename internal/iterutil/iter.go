package iterutil

import (
	"iter"
)

// UniqBy returns a new iterator that yields the first value for each key from the input iterator.
// The order of the output is the same as the input.
func UniqBy[V any, K comparable](seq iter.Seq[V], key func(V) K) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		seen := map[K]struct{}{}
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// Map returns a new iterator that applies the function to each value from the input iterator.
// The output iterator yields the results of the function calls.
func Map[V, R any](seq iter.Seq[V], f func(V) R) iter.Seq[R] {
	return iter.Seq[R](func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	})
}
