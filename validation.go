package cretrit

import "fmt"

// Input validation helpers, kept small and reusable across the
// package rather than duplicated inline at every call site.

func validateBlockIndex(n, blockCount int, context string) error {
	if n < 0 || n >= blockCount {
		return &RangeError{
			Field:   "n",
			Value:   n,
			Message: fmt.Sprintf("%s: block index %d out of range [0, %d)", context, n, blockCount),
		}
	}
	return nil
}

func validateBlockValue(value, w uint16, context string) error {
	if int(value) >= int(w) {
		return &RangeError{
			Field:   "value",
			Value:   value,
			Message: fmt.Sprintf("%s: block value %d out of range [0, %d)", context, value, w),
		}
	}
	return nil
}

func validateKeyLength(key []byte, expected int, context string) error {
	if len(key) != expected {
		return &KeyError{
			Message: fmt.Sprintf("%s: expected a %d-byte key, got %d bytes", context, expected, len(key)),
		}
	}
	return nil
}

// Validate checks that a Params value describes a usable domain:
// N >= 1 and 2 <= W <= 65535 (spec invariant 1; M is checked
// separately by each Comparator's fixed arity).
func (p Params) Validate() error {
	if p.N < 1 {
		return &RangeError{Field: "N", Value: p.N, Message: "N must be at least 1"}
	}
	if p.W < 2 || p.W > 65535 {
		return &RangeError{Field: "W", Value: p.W, Message: "W must be in [2, 65535]"}
	}
	return nil
}

func validateComparatorArity(m int) error {
	if m != 2 && m != 3 {
		return &ParseError{Field: "M", Message: fmt.Sprintf("unsupported comparator arity %d, only 2 or 3 are known", m)}
	}
	return nil
}
