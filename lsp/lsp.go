// Package lsp converts spans to and from the positions used by the Language
// Server Protocol.
//
// LSP positions count lines and UTF-16 code units within a line, while spans
// index bytes, so every conversion takes the text that the spans index into.
package lsp

import (
	lsp "github.com/sourcegraph/go-lsp"

	"github.com/elves/span"
)

// PositionOf returns the position of the byte offset idx in s. Offsets past
// the end of s are clamped to the position just after the last character.
func PositionOf(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// OffsetOf returns the byte offset of the position pos in s. Positions past
// the end of a line are clamped to the end of the line.
func OffsetOf(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

// RangeOf converts the span of r to a Range in s.
func RangeOf(s string, r span.Ranger[int]) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: PositionOf(s, rg.From),
		End:   PositionOf(s, rg.To),
	}
}

// SpanOf converts a Range in s to a span.
func SpanOf(s string, r lsp.Range) span.Span[int] {
	return span.New(OffsetOf(s, r.Start), OffsetOf(s, r.End))
}

// Generates (index, position) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r':
			p.Line++
			p.Character = 0
		case r == '\n':
			if lastCR {
				// Ignore \n if it's part of a \r\n sequence
			} else {
				p.Line++
				p.Character = 0
			}
		case r <= 0xFFFF:
			// Encoded in UTF-16 with one unit
			p.Character++
		default:
			// Encoded in UTF-16 with two units
			p.Character += 2
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
