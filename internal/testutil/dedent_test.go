package testutil

import "testing"

var dedentTests = []struct {
	name string
	in   string
	out  string
}{
	{
		name: "no leading newline, no trailing newline",
		in:   " \n  lorem\n ipsum",
		out:  "\n lorem\nipsum",
	},
	{
		name: "leading newline, no trailing newline",
		in: `
			lorem
			 ipsum
			dolor`,
		out: "lorem\n ipsum\ndolor",
	},
	{
		name: "leading newline and trailing newline",
		in: `
			lorem
			 ipsum
			`,
		out: "lorem\n ipsum\n",
	},
	{
		name: "no consistent leading whitespace removes as much as possible",
		in: `
				lorem
			ipsum`,
		out: "\tlorem\nipsum",
	},
}

func TestDedent(t *testing.T) {
	for _, tc := range dedentTests {
		got := Dedent(tc.in)
		if got != tc.out {
			t.Errorf("Dedent(%q) -> %q, want %q", tc.in, got, tc.out)
		}
	}
}
