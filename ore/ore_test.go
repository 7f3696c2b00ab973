package ore

import (
	"crypto/rand"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	k := make([]byte, 32)
	if _, err := rand.Read(k); err != nil {
		t.Fatalf("generating a test key: %v", err)
	}
	return k
}

func TestOrdering(t *testing.T) {
	c, err := NewCipher(8, 256, testKey(t))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	n1, err := c.FullEncrypt(42)
	if err != nil {
		t.Fatalf("FullEncrypt: %v", err)
	}
	n2, err := c.FullEncrypt(31337)
	if err != nil {
		t.Fatalf("FullEncrypt: %v", err)
	}

	if !n1.Less(n2) {
		t.Error("Less(42, 31337) = false, want true")
	}
	if !n2.Greater(n1) {
		t.Error("Greater(31337, 42) = false, want true")
	}
	if n1.Equal(n2) {
		t.Error("Equal(42, 31337) = true, want false")
	}
	if !n1.Equal(n1) {
		t.Error("Equal(42, 42) = false, want true")
	}
}

func TestOrderingRoundTrip(t *testing.T) {
	c, err := NewCipher(8, 256, testKey(t))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	n1f, err := c.FullEncrypt(42)
	if err != nil {
		t.Fatalf("FullEncrypt: %v", err)
	}
	n2f, err := c.FullEncrypt(31337)
	if err != nil {
		t.Fatalf("FullEncrypt: %v", err)
	}

	n1r, err := c.RightEncrypt(42)
	if err != nil {
		t.Fatalf("RightEncrypt: %v", err)
	}
	n2r, err := c.RightEncrypt(31337)
	if err != nil {
		t.Fatalf("RightEncrypt: %v", err)
	}

	n1rBytes, err := n1r.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	n2rBytes, err := n2r.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	n1rRT, err := NewCipherTextFromBytes(8, 256, n1rBytes)
	if err != nil {
		t.Fatalf("NewCipherTextFromBytes: %v", err)
	}
	n2rRT, err := NewCipherTextFromBytes(8, 256, n2rBytes)
	if err != nil {
		t.Fatalf("NewCipherTextFromBytes: %v", err)
	}

	if !n1f.Equal(n1rRT) {
		t.Error("n1f != round-tripped n1r")
	}
	if !n2f.Equal(n2rRT) {
		t.Error("n2f != round-tripped n2r")
	}
	if !n1f.Less(n2rRT) {
		t.Error("n1f should be less than round-tripped n2r")
	}
	if !n2f.Greater(n1rRT) {
		t.Error("n2f should be greater than round-tripped n1r")
	}
}

func TestThreeWayPanicsWithTwoRightOnlyOperands(t *testing.T) {
	c, err := NewCipher(1, 4, testKey(t))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	a, err := c.RightEncrypt(2)
	if err != nil {
		t.Fatalf("RightEncrypt: %v", err)
	}
	b, err := c.RightEncrypt(3)
	if err != nil {
		t.Fatalf("RightEncrypt: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when neither operand has a left half")
		}
	}()
	a.Less(b)
}
