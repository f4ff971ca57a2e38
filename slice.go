package span

// Slice returns the subslice of xs identified by s, like xs[s.From:s.To]. The
// result shares xs's backing array, so writes through it are visible in xs.
// Bounds are checked by the slice expression alone; a span that is out of
// range or crossed panics exactly like the equivalent slice expression.
func Slice[E any, T Number](xs []E, s Span[T]) []E {
	return xs[s.From:s.To]
}

// SliceString returns the substring of str identified by s, like
// str[s.From:s.To], with the same bounds behavior as [Slice].
func SliceString[T Number](str string, s Span[T]) string {
	return str[s.From:s.To]
}
