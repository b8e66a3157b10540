package bigint

import (
	"testing"

	hostalloc "github.com/sentra-lang/bignum/internal/alloc"
)

func TestAllocZeroFilled(t *testing.T) {
	x := alloc(3, false)
	for i, d := range x.digits[:x.count] {
		if d != 0 {
			t.Fatalf("alloc(3, false) digit %d = %d, want 0", i, d)
		}
	}
	if x.count != 3 || x.isNeg {
		t.Fatalf("alloc(3, false) = {count:%d, isNeg:%v}", x.count, x.isNeg)
	}
}

func TestTrimDropsLeadingZeroDigits(t *testing.T) {
	x := &BigInt{count: 4, digits: []int32{5, 0, 0, 0}, refs: 1}
	x = trim(x, false)
	if x.count != 1 || x.digits[0] != 5 {
		t.Fatalf("trim = {count:%d, digits[0]:%d}, want {1, 5}", x.count, x.digits[0])
	}
}

func TestTrimKeepsCanonicalZero(t *testing.T) {
	x := &BigInt{count: 4, digits: []int32{0, 0, 0, 0}, refs: 1}
	x = trim(x, false)
	if x.count != 1 || x.digits[0] != 0 {
		t.Fatalf("trim of all-zero = {count:%d, digits[0]:%d}, want {1, 0}", x.count, x.digits[0])
	}
}

func TestEnsureUniqueClonesWhenShared(t *testing.T) {
	x := alloc(2, false)
	x.digits[0], x.digits[1] = 7, 8
	x.Ref() // refs now 2: not unique

	u := ensureUnique(x)
	if u == x {
		t.Fatal("ensureUnique returned the shared buffer instead of a clone")
	}
	u.digits[0] = 99
	if x.digits[0] == 99 {
		t.Fatal("mutating the clone affected the original shared buffer")
	}
}

func TestEnsureUniqueReusesWhenUnique(t *testing.T) {
	x := alloc(2, false)
	u := ensureUnique(x)
	if u != x {
		t.Fatal("ensureUnique cloned a uniquely-owned buffer")
	}
}

func TestPushGrowsBuffer(t *testing.T) {
	x := alloc(1, false)
	x.digits[0] = 42
	x = push(x, 7)
	if x.count != 2 || x.digits[0] != 42 || x.digits[1] != 7 {
		t.Fatalf("push result = %+v, want count 2, digits [42 7]", x)
	}
}

// TestSetAllocatorRoutesThroughArena confirms alloc/trim/push actually
// draw their digit buffers from whatever allocator SetAllocator
// installs, not a bare make() that bypasses it.
func TestSetAllocatorRoutesThroughArena(t *testing.T) {
	a := hostalloc.NewArena()
	t.Cleanup(func() {
		SetAllocator(hostalloc.GoHeap{})
		a.Close()
	})
	SetAllocator(a)

	x := alloc(1, false)
	if x.digits[0] != 0 {
		t.Fatal("arena-backed alloc digit not zeroed")
	}
	x.digits[0] = 1
	for i := int32(2); i <= 6; i++ {
		// capacityFor(1) == 4, so the fifth digit forces push to grow
		// the buffer through hostalloc.Arena.Realloc, not GoHeap's.
		x = push(x, i)
	}
	if x.count != 6 {
		t.Fatalf("arena-backed push count = %d, want 6", x.count)
	}
	for i, want := range []int32{1, 2, 3, 4, 5, 6} {
		if x.digits[i] != want {
			t.Fatalf("arena-backed push digits[%d] = %d, want %d", i, x.digits[i], want)
		}
	}
}
