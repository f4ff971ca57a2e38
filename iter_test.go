package span

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAll(t *testing.T) {
	if diff := cmp.Diff([]int{2, 3, 4}, slices.Collect(New(2, 5).All())); diff != "" {
		t.Errorf("All of [2,5) (-want +got):\n%s", diff)
	}
	if got := slices.Collect(New(5, 5).All()); got != nil {
		t.Errorf("All of [5,5) yielded %v, want nothing", got)
	}
	if got := slices.Collect(New(5, 3).All()); got != nil {
		t.Errorf("All of [5,3) yielded %v, want nothing", got)
	}
	// Iteration stops before To even when To is the maximum of the element
	// type, without wrapping around.
	if diff := cmp.Diff([]uint8{253, 254}, slices.Collect(New[uint8](253, 255).All())); diff != "" {
		t.Errorf("All of [253,255) over uint8 (-want +got):\n%s", diff)
	}
}

func TestAllIsRestartable(t *testing.T) {
	s := New(2, 5)
	first := slices.Collect(s.All())
	second := slices.Collect(s.All())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second All differs from first (-first +second):\n%s", diff)
	}
}

func TestAllStopsWhenBreaking(t *testing.T) {
	var got []int
	for i := range New(0, 100).All() {
		got = append(got, i)
		if len(got) == 3 {
			break
		}
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Errorf("elements seen before break (-want +got):\n%s", diff)
	}
}
