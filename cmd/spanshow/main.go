// Command spanshow shows which part of a text a span covers.
//
// The span is given with -r, either as FROM:TO (a half-open byte range) or as
// FROM:+LEN. Input comes from the named files, or from stdin when no file is
// given. When stdout is a terminal the covered text is highlighted within its
// surrounding lines; otherwise only the covered text itself is printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/elves/span"
	"github.com/elves/span/diag"
)

var (
	rangeArg = flag.String("r", "", "span to show, as FROM:TO or FROM:+LEN")
	srcName  = flag.String("name", "", "name to show for the input; defaults to the file name")
	plain    = flag.Bool("plain", false, "never highlight, even on a terminal")
)

func main() {
	flag.Parse()

	if *rangeArg == "" {
		diag.Complain(os.Stderr, "-r is required, as FROM:TO or FROM:+LEN")
		os.Exit(2)
	}
	s, err := parseSpan(*rangeArg)
	if err != nil {
		diag.Complainf(os.Stderr, "parse -r: %v", err)
		os.Exit(2)
	}
	styled := !*plain && isTerminal(os.Stdout)

	files := flag.Args()
	if len(files) == 0 {
		text, err := io.ReadAll(os.Stdin)
		handleReadError("stdin", err)
		show(nameOr("stdin"), string(text), s, styled)
		return
	}
	for _, file := range files {
		text, err := os.ReadFile(file)
		handleReadError(file, err)
		show(nameOr(file), string(text), s, styled)
	}
}

func show(name, text string, s span.Span[int], styled bool) {
	if s.From < 0 || s.To > len(text) || s.From > s.To {
		diag.Complainf(os.Stderr, "%s: span %v out of range", name, s)
		os.Exit(2)
	}
	if styled {
		fmt.Println(diag.NewContext(name, text, s).Show("  "))
	} else {
		fmt.Println(span.SliceString(text, s))
	}
}

// parseSpan parses the FROM:TO and FROM:+LEN forms. An empty TO part makes a
// zero-width span.
func parseSpan(s string) (span.Span[int], error) {
	fromPart, toPart, ok := strings.Cut(s, ":")
	if !ok {
		return span.Span[int]{}, fmt.Errorf("no : in %q", s)
	}
	from, err := strconv.Atoi(fromPart)
	if err != nil {
		return span.Span[int]{}, fmt.Errorf("bad start %q", fromPart)
	}
	switch {
	case toPart == "":
		return span.At(from), nil
	case strings.HasPrefix(toPart, "+"):
		n, err := strconv.Atoi(toPart[1:])
		if err != nil {
			return span.Span[int]{}, fmt.Errorf("bad length %q", toPart[1:])
		}
		return span.At(from).WithLen(n), nil
	default:
		to, err := strconv.Atoi(toPart)
		if err != nil {
			return span.Span[int]{}, fmt.Errorf("bad end %q", toPart)
		}
		return span.New(from, to), nil
	}
}

func nameOr(fallback string) string {
	if *srcName != "" {
		return *srcName
	}
	return fallback
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func handleReadError(name string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", name, err)
		os.Exit(2)
	}
}
