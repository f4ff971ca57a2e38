// Package span provides a half-open interval type with plain value semantics.
//
// A [Span] has no state beyond its two endpoints: copies are always
// independent, the zero value is the empty span [0, 0), and values can be
// compared with == and used as map keys. Structs can embed a Span to satisfy
// the [Ranger] interface while remaining freely copyable, which makes the type
// suitable as a building block for larger value types that carry a range.
package span

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elves/span/hash"
)

// Number is the constraint satisfied by Span element types: the built-in
// signed and unsigned integer types, and types defined from them. These types
// support ordering, addition and subtraction, comparison with == and a
// meaningful zero value, which is everything a Span requires of its elements.
type Number interface{ constraints.Integer }

// Ranger wraps the Range method.
type Ranger[T Number] interface {
	// Range returns the span associated with the value.
	Range() Span[T]
}

// Span represents a half-open interval [From, To) over an integer element
// type. Its memory representation is exactly the two fields, From then To,
// so a Span can be built from or taken apart into a plain pair of numbers.
//
// No invariant relates the two fields: a crossed span with From > To is
// representable, and contains no elements. Note that [Span.IsEmpty] does not
// report such a span as empty.
type Span[T Number] struct {
	From T
	To   T
}

// New returns the span [from, to). No validation is performed; from may
// exceed to.
func New[T Number](from, to T) Span[T] {
	return Span[T]{from, to}
}

// At returns the zero-width span [pos, pos).
func At[T Number](pos T) Span[T] {
	return Span[T]{pos, pos}
}

// Mixed returns a span from the start position of a to the end position of b.
func Mixed[T Number](a, b Ranger[T]) Span[T] {
	return Span[T]{a.Range().From, b.Range().To}
}

// Range returns the span itself. It makes Span satisfy [Ranger], also on
// behalf of structs that embed it.
func (s Span[T]) Range() Span[T] { return s }

// Before returns the zero-width span [From, From) at the start of s.
func (s Span[T]) Before() Span[T] {
	return Span[T]{s.From, s.From}
}

// After returns the zero-width span [To, To) at the end of s.
func (s Span[T]) After() Span[T] {
	return Span[T]{s.To, s.To}
}

// WithFrom returns the span [from, To), leaving s unchanged.
func (s Span[T]) WithFrom(from T) Span[T] {
	return Span[T]{from, s.To}
}

// WithTo returns the span [From, to), leaving s unchanged.
func (s Span[T]) WithTo(to T) Span[T] {
	return Span[T]{s.From, to}
}

// WithLen returns the span [From, From+n), leaving s unchanged. The addition
// is the element type's ordinary addition; on overflow it wraps like any Go
// integer addition.
func (s Span[T]) WithLen(n T) Span[T] {
	return Span[T]{s.From, s.From + n}
}

// Len returns To - From, computed with the element type's subtraction.
func (s Span[T]) Len() T {
	return s.To - s.From
}

// Contains reports whether e falls within s, i.e. From <= e < To.
func (s Span[T]) Contains(e T) bool {
	return s.From <= e && e < s.To
}

// IsEmpty reports whether From == To. The check is exact field equality: a
// crossed span contains no elements either, but is not reported empty.
func (s Span[T]) IsEmpty() bool {
	return s.From == s.To
}

// Overlaps reports whether s contains the start of o, or o contains the start
// of s. The test is exactly this disjunction rather than a symmetric
// intersection test; the difference shows around zero-width spans, which
// contain nothing themselves but whose start may still fall within the other
// span.
func (s Span[T]) Overlaps(o Span[T]) bool {
	return s.Contains(o.From) || o.Contains(s.From)
}

// Hash computes a hash code of s, consistent with ==.
func (s Span[T]) Hash() uint32 {
	return hash.DJB(hash.Num(s.From), hash.Num(s.To))
}

// String formats s as "[From,To)".
func (s Span[T]) String() string {
	return fmt.Sprintf("[%d,%d)", s.From, s.To)
}
