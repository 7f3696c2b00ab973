package cretrit

import "testing"

func prpSeed(b byte) []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func TestPRPIsAPermutation(t *testing.T) {
	pp, err := newPRP(prpSeed(0), 16)
	if err != nil {
		t.Fatalf("newPRP: %v", err)
	}

	seen := make(map[uint16]bool)
	for i := 0; i < 16; i++ {
		v := pp.value(uint16(i))
		if v >= 16 {
			t.Fatalf("value(%d) = %d, out of range", i, v)
		}
		if seen[v] {
			t.Fatalf("value(%d) = %d is a duplicate, not a permutation", i, v)
		}
		seen[v] = true
	}
}

func TestPRPIsNotTheIdentity(t *testing.T) {
	pp, err := newPRP(prpSeed(1), 16)
	if err != nil {
		t.Fatalf("newPRP: %v", err)
	}

	allIdentity := true
	for i := 0; i < 16; i++ {
		if pp.value(uint16(i)) != uint16(i) {
			allIdentity = false
			break
		}
	}
	if allIdentity {
		t.Fatal("PRP produced the identity permutation")
	}
}

func TestPRPRoundTrips(t *testing.T) {
	pp, err := newPRP(prpSeed(2), 16)
	if err != nil {
		t.Fatalf("newPRP: %v", err)
	}

	for i := 0; i < 16; i++ {
		if got := pp.inverse(pp.value(uint16(i))); got != uint16(i) {
			t.Errorf("inverse(value(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestPRPDeterministic(t *testing.T) {
	a, err := newPRP(prpSeed(3), 256)
	if err != nil {
		t.Fatalf("newPRP: %v", err)
	}
	b, err := newPRP(prpSeed(3), 256)
	if err != nil {
		t.Fatalf("newPRP: %v", err)
	}
	for i := 0; i < 256; i++ {
		if a.value(uint16(i)) != b.value(uint16(i)) {
			t.Errorf("PRP with identical seed diverged at %d", i)
		}
	}
}
