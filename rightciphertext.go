package cretrit

// RightCipherText is the randomised half of a CipherText: for every
// block it carries a nonce and a table of W masked comparator values,
// one per possible permuted digit, and is what a Compare call uses as
// the right-hand operand (spec §4.7).
//
// Like LeftCipherText, a RightCipherText produced by encryption keeps
// a reference to its owning Cipher so setBlock can be called; one
// produced by deserialisation does not and is read-only.
type RightCipherText struct {
	params     Params
	comparator Comparator

	nonceBase  []byte
	nonceCache [][]byte
	values     [][]uint8

	cipher *Cipher
}

func newRightCipherText(c *Cipher) (*RightCipherText, error) {
	r := &RightCipherText{
		params:     c.params,
		comparator: c.comparator,
		nonceBase:  make([]byte, 16),
		nonceCache: make([][]byte, c.params.N),
		values:     make([][]uint8, c.params.N),
		cipher:     c,
	}
	for n := range r.values {
		r.values[n] = make([]uint8, c.params.W)
	}

	if err := c.fillNonce(r.nonceBase); err != nil {
		return nil, err
	}
	if err := r.cacheNonces(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *RightCipherText) cacheNonces() error {
	for n := 0; n < r.params.N; n++ {
		label := string([]byte{'R', 'C', 'T', 'n', 'o', 'n', 'c', 'e', '.', byte(n >> 8), byte(n)})
		nonce, err := kbkdf(r.nonceBase, label, 16)
		if err != nil {
			return err
		}
		r.nonceCache[n] = nonce
	}
	return nil
}

// setBlock populates the value table for block n from the plaintext
// digit value: for every candidate permuted position i in [0, W), it
// combines CMP(P^-1(i), value) with HF(F(i), nonce(n)) modulo the
// comparator's arity (spec §4.7).
func (r *RightCipherText) setBlock(n int, value uint16) error {
	if err := validateBlockIndex(n, r.params.N, "RightCipherText.setBlock"); err != nil {
		return err
	}
	if err := validateBlockValue(value, uint16(r.params.W), "RightCipherText.setBlock"); err != nil {
		return err
	}
	if r.cipher == nil {
		return &InternalError{Message: "setBlock called on a read-only right ciphertext"}
	}

	m := uint8(r.comparator.Arity())
	nonce := r.nonceCache[n]

	for i := 0; i < r.params.W; i++ {
		b := r.cipher.pseudorandomise(uint16(i))

		cmp := r.cipher.compareValues(r.cipher.inversePermutedValue(uint16(i)), value)
		h, err := r.cipher.hashedValue(b, nonce)
		if err != nil {
			return err
		}

		r.values[n][i] = (cmp + h) % m
	}

	return nil
}

// Value returns the masked comparator value stored at block n,
// permuted position px.
func (r *RightCipherText) Value(n int, px uint16) (uint8, error) {
	if err := validateBlockIndex(n, r.params.N, "RightCipherText.Value"); err != nil {
		return 0, err
	}
	if int(px) >= r.params.W {
		return 0, &RangeError{Field: "px", Value: px, Message: "permuted index out of range"}
	}
	return r.values[n][px], nil
}

// Nonce returns the per-block nonce for block n.
func (r *RightCipherText) Nonce(n int) ([]byte, error) {
	if err := validateBlockIndex(n, r.params.N, "RightCipherText.Nonce"); err != nil {
		return nil, err
	}
	return r.nonceCache[n], nil
}

// marshalBinary renders the right half as the 16-byte nonce base
// followed by the packed value table (spec §6.3): 1 bit per value for
// an equality (M=2) comparator, or a 2-bit prefix code (0 -> "0",
// 1 -> "10", 2 -> "11") per value for an ordering (M=3) comparator,
// block-major, zero-padded to a byte boundary.
func (r *RightCipherText) marshalBinary() ([]byte, error) {
	out := make([]byte, 0, 16+r.params.N*r.params.W/4)
	out = append(out, r.nonceBase...)

	switch r.comparator.Arity() {
	case 2:
		out = append(out, r.packBinaryValues()...)
	case 3:
		out = append(out, r.packTrinaryValues()...)
	default:
		return nil, &InternalError{Message: "don't know how to pack values for this comparator arity"}
	}

	return out, nil
}

func (r *RightCipherText) packBinaryValues() []byte {
	bits := newBitList(r.params.N * r.params.W)
	for n := 0; n < r.params.N; n++ {
		for w := 0; w < r.params.W; w++ {
			bits.push(r.values[n][w] > 0)
		}
	}
	return bits.bytes()
}

func (r *RightCipherText) packTrinaryValues() []byte {
	bits := newBitList(r.params.N * r.params.W * 2)
	for n := 0; n < r.params.N; n++ {
		for w := 0; w < r.params.W; w++ {
			val := r.values[n][w]
			if val == 0 {
				bits.push(false)
				continue
			}
			bits.push(true)
			bits.push(val > 1)
		}
	}
	return bits.bytes()
}

// unmarshalRightCipherText parses bytes produced by marshalBinary.
// The resulting RightCipherText has no owning Cipher and cannot have
// further blocks set on it.
func unmarshalRightCipherText(params Params, comparator Comparator, data []byte) (*RightCipherText, error) {
	if len(data) < 16 {
		return nil, &ParseError{Field: "right", Message: "end of data while looking for nonce base"}
	}

	r := &RightCipherText{
		params:     params,
		comparator: comparator,
		nonceBase:  append([]byte(nil), data[:16]...),
		nonceCache: make([][]byte, params.N),
	}

	var err error
	switch comparator.Arity() {
	case 2:
		r.values, err = unpackBinaryValues(params, data[16:])
	case 3:
		r.values, err = unpackTrinaryValues(params, data[16:])
	default:
		return nil, &InternalError{Message: "don't know how to unpack values for this comparator arity"}
	}
	if err != nil {
		return nil, err
	}

	if err := r.cacheNonces(); err != nil {
		return nil, err
	}

	return r, nil
}

func unpackBinaryValues(params Params, data []byte) ([][]uint8, error) {
	bits := bitListFromSlice(data)
	values := make([][]uint8, params.N)
	for n := 0; n < params.N; n++ {
		values[n] = make([]uint8, params.W)
		for w := 0; w < params.W; w++ {
			bit, ok := bits.shift()
			if !ok {
				return nil, &ParseError{Field: "right", Message: "end of data while unpacking binary values"}
			}
			if bit {
				values[n][w] = 1
			}
		}
	}
	if !bits.fullyConsumed() {
		return nil, &ParseError{Field: "right", Message: "trailing data after binary value table"}
	}
	return values, nil
}

func unpackTrinaryValues(params Params, data []byte) ([][]uint8, error) {
	bits := bitListFromSlice(data)
	values := make([][]uint8, params.N)
	for n := 0; n < params.N; n++ {
		values[n] = make([]uint8, params.W)
		for w := 0; w < params.W; w++ {
			first, ok := bits.shift()
			if !ok {
				return nil, &ParseError{Field: "right", Message: "end of data while unpacking trinary values"}
			}
			if !first {
				values[n][w] = 0
				continue
			}
			second, ok := bits.shift()
			if !ok {
				return nil, &ParseError{Field: "right", Message: "end of data while unpacking trinary values"}
			}
			if second {
				values[n][w] = 2
			} else {
				values[n][w] = 1
			}
		}
	}
	if !bits.fullyConsumed() {
		return nil, &ParseError{Field: "right", Message: "trailing data after trinary value table"}
	}
	return values, nil
}
