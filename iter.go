package span

import "iter"

// All returns an iterator over the elements of s, from From up to but not
// including To, in ascending order. The sequence is empty when From >= To.
// Since a Span is a plain value, the same span can be iterated any number of
// times, always yielding the same elements.
func (s Span[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.From; i < s.To; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
