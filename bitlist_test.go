package cretrit

import "testing"

func TestBitListRoundTrip(t *testing.T) {
	bits := []bool{true, false, false, true, true, true, false, false, true, false}

	bl := newBitList(len(bits))
	for _, b := range bits {
		bl.push(b)
	}

	rt := bitListFromSlice(bl.bytes())
	for i, want := range bits {
		got, ok := rt.shift()
		if !ok {
			t.Fatalf("shift() ran out of bits at index %d", i)
		}
		if got != want {
			t.Errorf("bit %d = %v, want %v", i, got, want)
		}
	}
}

func TestBitListFullyConsumed(t *testing.T) {
	bl := newBitList(3)
	bl.push(true)
	bl.push(false)
	bl.push(true)

	rt := bitListFromSlice(bl.bytes())
	if rt.fullyConsumed() {
		t.Fatal("fullyConsumed() = true before any bits were read")
	}
	for i := 0; i < 3; i++ {
		if _, ok := rt.shift(); !ok {
			t.Fatalf("shift() failed at index %d", i)
		}
	}
	if !rt.fullyConsumed() {
		t.Error("fullyConsumed() = false after reading every pushed bit")
	}
}

func TestBitListByteBoundary(t *testing.T) {
	bl := newBitList(16)
	for i := 0; i < 16; i++ {
		bl.push(i%3 == 0)
	}
	if got := len(bl.bytes()); got != 2 {
		t.Errorf("16 pushed bits packed into %d bytes, want 2", got)
	}
}

func TestBitListShiftPastEndFails(t *testing.T) {
	bl := newBitList(1)
	bl.push(true)

	rt := bitListFromSlice(bl.bytes())
	for i := 0; i < 8; i++ {
		if _, ok := rt.shift(); !ok {
			t.Fatalf("shift() failed at index %d, want success within the byte", i)
		}
	}
	if _, ok := rt.shift(); ok {
		t.Error("shift() succeeded past the end of the buffer")
	}
}
