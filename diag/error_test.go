package diag

import (
	"testing"

	"github.com/elves/span"
)

func TestError(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	setMessageMarkers(t, "{", "}")

	err := &Error{
		Type:    "parse error",
		Message: "unexpected end",
		Context: *contextInParen("[test]", "head (bad)"),
	}

	wantError := "parse error: 5-10 in [test]: unexpected end"
	if gotError := err.Error(); gotError != wantError {
		t.Errorf("Error() -> %q, want %q", gotError, wantError)
	}

	if got, want := err.Range(), span.New(5, 10); got != want {
		t.Errorf("Range() -> %v, want %v", got, want)
	}

	// Type is capitalized in the return value of Show.
	wantShow := dedent(`
		Parse error: {unexpected end}
		  [test], line 1: head <(bad)>`)
	if gotShow := err.Show(""); gotShow != wantShow {
		t.Errorf("Show() -> %q, want %q", gotShow, wantShow)
	}
}

func TestTitle(t *testing.T) {
	if got := title("foo bar"); got != "Foo bar" {
		t.Errorf("title(foo bar) -> %q, want %q", got, "Foo bar")
	}
	if got := title(""); got != "" {
		t.Errorf("title of empty string -> %q, want empty string", got)
	}
	// ǳ has a dedicated title-case form distinct from its upper case.
	if got := title("ǳ"); got != "ǲ" {
		t.Errorf("title(ǳ) -> %q, want %q", got, "ǲ")
	}
}
