package cretrit

import "encoding/binary"

// CipherText is the output of encrypting a PlainText: a right half,
// and optionally a left half (spec §4.6-4.9). A CipherText with both
// halves can be used as either operand of Compare; a right-only
// CipherText can only be the right-hand operand.
type CipherText struct {
	params     Params
	comparator Comparator

	Left  *LeftCipherText
	Right *RightCipherText
}

func newCipherText(c *Cipher, value *PlainText, withLeft bool) (*CipherText, error) {
	if value.params != c.params {
		return nil, &ComparisonError{Message: "plaintext parameters do not match this cipher's parameters"}
	}

	right, err := newRightCipherText(c)
	if err != nil {
		return nil, err
	}

	var left *LeftCipherText
	if withLeft {
		left = newLeftCipherText(c)
	}

	for n := 0; n < c.params.N; n++ {
		block := value.Block(n)
		if left != nil {
			if err := left.setBlock(n, block); err != nil {
				return nil, err
			}
		}
		if err := right.setBlock(n, block); err != nil {
			return nil, err
		}
	}

	return &CipherText{
		params:     c.params,
		comparator: c.comparator,
		Left:       left,
		Right:      right,
	}, nil
}

// Params returns the domain parameters this CipherText was encrypted
// with.
func (ct *CipherText) Params() Params {
	return ct.params
}

// HasLeft reports whether this CipherText carries a left half and can
// therefore be used as the left-hand operand of Compare.
func (ct *CipherText) HasLeft() bool {
	return ct.Left != nil
}

// Compare evaluates this CipherText (as the left-hand operand)
// against other's right half, returning a value in [0, M) per the
// comparator's Compare contract: 0 means equal for both ERE and ORE,
// while for ORE 1 means this CipherText's plaintext is less than
// other's and 2 means greater (spec §4.11). It fails if this
// CipherText has no left half, or if the two CipherTexts were
// encrypted under different parameters.
func (ct *CipherText) Compare(other *CipherText) (uint8, error) {
	if ct.Left == nil {
		return 0, &ComparisonError{Message: "no left half in this ciphertext"}
	}
	if ct.params != other.params {
		return 0, &ComparisonError{Message: "ciphertexts were encrypted under different parameters"}
	}

	m := int16(ct.comparator.Arity())

	var result *uint8
	for n := 0; n < ct.params.N; n++ {
		px, err := ct.Left.Px(n)
		if err != nil {
			return 0, err
		}
		v, err := other.Right.Value(n, px)
		if err != nil {
			return 0, err
		}
		f, err := ct.Left.F(n)
		if err != nil {
			return 0, err
		}
		nonce, err := other.Right.Nonce(n)
		if err != nil {
			return 0, err
		}

		h, err := hashForCompare(f, nonce, ct.comparator.Arity())
		if err != nil {
			return 0, err
		}

		res := uint8(((int16(v)-int16(h))%m + m) % m)
		if res != 0 && result == nil {
			rr := res
			result = &rr
		}
	}

	if result == nil {
		return 0, nil
	}
	return *result, nil
}

func hashForCompare(f, nonce []byte, m int) (uint8, error) {
	h, err := newHashFunction(f, m)
	if err != nil {
		return 0, err
	}
	return h.hash(nonce)
}

// MarshalBinary renders the full wire format of this CipherText (spec
// §6): a type byte (0 for right-only, 1 for left+right), followed by
// the big-endian u16 length and bytes of the left half if present,
// followed by the big-endian u16 length and bytes of the right half.
func (ct *CipherText) MarshalBinary() ([]byte, error) {
	rightBytes, err := ct.Right.marshalBinary()
	if err != nil {
		return nil, err
	}
	if len(rightBytes) > 0xffff {
		return nil, &OverflowError{Message: "right ciphertext too long to frame with a 16-bit length"}
	}

	out := make([]byte, 0, 5+len(rightBytes)+ct.params.N*18)

	if ct.Left != nil {
		leftBytes := ct.Left.marshalBinary()
		if len(leftBytes) > 0xffff {
			return nil, &OverflowError{Message: "left ciphertext too long to frame with a 16-bit length"}
		}
		out = append(out, 1)
		out = appendUint16(out, uint16(len(leftBytes)))
		out = append(out, leftBytes...)
	} else {
		out = append(out, 0)
	}

	out = appendUint16(out, uint16(len(rightBytes)))
	out = append(out, rightBytes...)

	return out, nil
}

func appendUint16(out []byte, v uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return append(out, buf[:]...)
}

// UnmarshalCipherText parses bytes produced by MarshalBinary under
// the given params and comparator. Unlike encoding.BinaryUnmarshaler,
// this is a free function rather than a method, since a CipherText
// must know its domain parameters and comparator before it can make
// sense of the bytes. The right length must exactly equal the
// remaining buffer after the left half (if any) is consumed, and the
// packed value table must exactly fill its declared length with no
// trailing data beyond the final byte's padding bits (spec §6.3-6.4);
// any surplus is a ParseError, not silently ignored.
func UnmarshalCipherText(params Params, comparator Comparator, data []byte) (*CipherText, error) {
	if comparator == nil {
		return nil, ErrNilComparator
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateComparatorArity(comparator.Arity()); err != nil {
		return nil, err
	}

	if len(data) < 1 {
		return nil, &ParseError{Field: "type", Message: "end of data while looking for ciphertext type marker"}
	}
	typeByte := data[0]
	rest := data[1:]

	var left *LeftCipherText
	switch typeByte {
	case 0:
		// right-only, nothing to do
	case 1:
		leftLen, remAfterLen, err := readUint16Prefix(rest, "left ciphertext length")
		if err != nil {
			return nil, err
		}
		if len(remAfterLen) < int(leftLen) {
			return nil, &ParseError{Field: "left", Message: "end of data while looking for left ciphertext"}
		}
		left, err = unmarshalLeftCipherText(params, remAfterLen[:leftLen])
		if err != nil {
			return nil, err
		}
		rest = remAfterLen[leftLen:]
	default:
		return nil, &ParseError{Field: "type", Message: "unrecognised ciphertext type byte"}
	}

	rightLen, remAfterLen, err := readUint16Prefix(rest, "right ciphertext length")
	if err != nil {
		return nil, err
	}
	if len(remAfterLen) != int(rightLen) {
		return nil, &ParseError{Field: "right", Message: "right ciphertext length does not exactly match the remaining buffer"}
	}
	right, err := unmarshalRightCipherText(params, comparator, remAfterLen[:rightLen])
	if err != nil {
		return nil, err
	}

	return &CipherText{
		params:     params,
		comparator: comparator,
		Left:       left,
		Right:      right,
	}, nil
}

func readUint16Prefix(data []byte, field string) (uint16, []byte, error) {
	if len(data) < 2 {
		return 0, nil, &ParseError{Field: field, Message: "end of data while looking for " + field}
	}
	return binary.BigEndian.Uint16(data[:2]), data[2:], nil
}
