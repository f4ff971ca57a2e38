package diag

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/elves/span"
)

// Error is an error with a [Context] that can be shown.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	// TODO: Include line and column numbers instead of byte indices.
	return fmt.Sprintf("%s: %d-%d in %s: %s",
		e.Type, e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the span of the error's context.
func (e *Error) Range() span.Span[int] {
	return e.Context.Range()
}

// Show shows the error, with the type capitalized and the culprit
// highlighted.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: %s%s%s\n",
		title(e.Type), messageStart, e.Message, messageEnd)
	return header + indent + "  " + e.Context.ShowCompact(indent+"  ")
}

// title returns s with the first codepoint changed to title case.
func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}
