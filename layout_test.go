package span

import (
	"testing"
	"unsafe"
)

// The memory layout of a Span is guaranteed to be exactly two element values,
// From followed by To, with no padding. Code may rely on this to reinterpret
// spans as flat pairs of numbers.

func TestLayout(t *testing.T) {
	testLayout[int8](t, 1)
	testLayout[int16](t, 2)
	testLayout[int32](t, 4)
	testLayout[int64](t, 8)
	testLayout[uint8](t, 1)
	testLayout[uint16](t, 2)
	testLayout[uint32](t, 4)
	testLayout[uint64](t, 8)
	testLayout[int](t, unsafe.Sizeof(int(0)))
	testLayout[uint](t, unsafe.Sizeof(uint(0)))
	testLayout[uintptr](t, unsafe.Sizeof(uintptr(0)))
}

func testLayout[T Number](t *testing.T, size uintptr) {
	t.Helper()
	var s Span[T]
	if got := unsafe.Sizeof(s); got != 2*size {
		t.Errorf("Sizeof(%T) = %d, want %d", s, got, 2*size)
	}
	if got := unsafe.Offsetof(s.From); got != 0 {
		t.Errorf("Offsetof(%T.From) = %d, want 0", s, got)
	}
	if got := unsafe.Offsetof(s.To); got != size {
		t.Errorf("Offsetof(%T.To) = %d, want %d", s, got, size)
	}
}

func TestLayoutReinterpret(t *testing.T) {
	pair := [2]uint32{6, 11}
	s := *(*Span[uint32])(unsafe.Pointer(&pair))
	if s != New[uint32](6, 11) {
		t.Errorf("reinterpreting {6, 11} = %v, want %v", s, New[uint32](6, 11))
	}
	s.To = 12
	back := *(*[2]uint32)(unsafe.Pointer(&s))
	if back != [2]uint32{6, 12} {
		t.Errorf("reinterpreting %v = %v, want [6 12]", s, back)
	}
}
