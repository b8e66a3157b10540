package alloc

import "testing"

func TestGoHeapAlloc(t *testing.T) {
	var h GoHeap
	b := h.Alloc(16)
	if len(b) != 16 {
		t.Fatalf("Alloc(16) returned %d digits", len(b))
	}
	b = h.Realloc(b, 4)
	if len(b) != 4 {
		t.Fatalf("Realloc(4) returned %d digits", len(b))
	}
	b = h.Realloc(b, 64)
	if len(b) != 64 {
		t.Fatalf("Realloc(64) returned %d digits", len(b))
	}
}

func TestArenaRoundTrip(t *testing.T) {
	a := NewArena()
	defer a.Close()

	b := a.Alloc(32)
	for i := range b {
		if b[i] != 0 {
			t.Fatalf("Calloc region not zeroed at %d", i)
		}
	}
	b[0] = 42
	b = a.Realloc(b, 64)
	if len(b) != 64 || b[0] != 42 {
		t.Fatalf("Realloc lost prefix or length: len=%d first=%d", len(b), b[0])
	}
	a.Free(b)
}
