package cretrit

import "testing"

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Params
		ok   bool
	}{
		{"typical", Params{N: 8, W: 256}, true},
		{"minimal", Params{N: 1, W: 2}, true},
		{"zero N", Params{N: 0, W: 256}, false},
		{"negative N", Params{N: -1, W: 256}, false},
		{"W too small", Params{N: 8, W: 1}, false},
		{"W too large", Params{N: 8, W: 70000}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.p.Validate()
			if c.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !c.ok && err == nil {
				t.Error("Validate() = nil, want an error")
			}
		})
	}
}

func TestValidateComparatorArity(t *testing.T) {
	if err := validateComparatorArity(2); err != nil {
		t.Errorf("arity 2 rejected: %v", err)
	}
	if err := validateComparatorArity(3); err != nil {
		t.Errorf("arity 3 rejected: %v", err)
	}
	if err := validateComparatorArity(4); err == nil {
		t.Error("arity 4 accepted, want an error")
	}
}

func TestValidateBlockIndex(t *testing.T) {
	if err := validateBlockIndex(0, 4, "test"); err != nil {
		t.Errorf("index 0 of 4 rejected: %v", err)
	}
	if err := validateBlockIndex(3, 4, "test"); err != nil {
		t.Errorf("index 3 of 4 rejected: %v", err)
	}
	if err := validateBlockIndex(4, 4, "test"); err == nil {
		t.Error("index 4 of 4 accepted, want an error")
	}
	if err := validateBlockIndex(-1, 4, "test"); err == nil {
		t.Error("negative index accepted, want an error")
	}
}

func TestValidateKeyLength(t *testing.T) {
	if err := validateKeyLength(make([]byte, 16), 16, "test"); err != nil {
		t.Errorf("correct-length key rejected: %v", err)
	}
	if err := validateKeyLength(make([]byte, 15), 16, "test"); err == nil {
		t.Error("wrong-length key accepted, want an error")
	}
}
