package cretrit

import (
	"bytes"
	"testing"
)

func TestPRFDeterministic(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i * 7)
	}

	p, err := newPRF(key)
	if err != nil {
		t.Fatalf("newPRF: %v", err)
	}

	a := p.randomise(42)
	b := p.randomise(42)
	if !bytes.Equal(a, b) {
		t.Error("randomise is not deterministic for the same value")
	}

	c := p.randomise(43)
	if bytes.Equal(a, c) {
		t.Error("randomise produced identical output for different values")
	}
}

func TestPRFRejectsBadKeyLength(t *testing.T) {
	if _, err := newPRF(make([]byte, 10)); err == nil {
		t.Fatal("expected an error for a short key")
	} else if !IsKeyError(err) {
		t.Errorf("expected a KeyError, got %T: %v", err, err)
	}
}
