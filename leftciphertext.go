package cretrit

// LeftCipherText is the deterministic half of a CipherText: it carries
// a pseudorandom tag f(n) and permuted digit px(n) for each block,
// with no randomness of its own, and is what a Compare call uses as
// the left-hand operand (spec §4.6).
//
// A LeftCipherText produced by encryption keeps a reference to the
// Cipher that built it and can answer px/f queries for any block
// already set; one produced by deserialisation has no such
// reference and is read-only.
type LeftCipherText struct {
	params Params

	f  [][]byte
	px []uint16

	cipher *Cipher
}

func newLeftCipherText(c *Cipher) *LeftCipherText {
	return &LeftCipherText{
		params: c.params,
		f:      make([][]byte, c.params.N),
		px:     make([]uint16, c.params.N),
		cipher: c,
	}
}

// setBlock computes and stores f(n) and px(n) for the given block
// index and plaintext digit. It fails if called on a LeftCipherText
// that was produced by deserialisation, since that has no Cipher to
// draw the PRF and PRP from.
func (l *LeftCipherText) setBlock(n int, value uint16) error {
	if err := validateBlockIndex(n, l.params.N, "LeftCipherText.setBlock"); err != nil {
		return err
	}
	if err := validateBlockValue(value, uint16(l.params.W), "LeftCipherText.setBlock"); err != nil {
		return err
	}
	if l.cipher == nil {
		return &InternalError{Message: "setBlock called on a read-only left ciphertext"}
	}

	px := l.cipher.permutedValue(value)
	l.px[n] = px
	l.f[n] = l.cipher.pseudorandomise(px)

	return nil
}

// F returns f(n), the pseudorandom tag for block n.
func (l *LeftCipherText) F(n int) ([]byte, error) {
	if err := validateBlockIndex(n, l.params.N, "LeftCipherText.F"); err != nil {
		return nil, err
	}
	return l.f[n], nil
}

// Px returns px(n), the permuted plaintext digit for block n.
func (l *LeftCipherText) Px(n int) (uint16, error) {
	if err := validateBlockIndex(n, l.params.N, "LeftCipherText.Px"); err != nil {
		return 0, err
	}
	return l.px[n], nil
}

func (l *LeftCipherText) prfBlockSize() int {
	return 16
}

// marshalBinary renders the left half as f(0)..f(N-1) followed by
// px(0)..px(N-1), each px packed as one byte if W <= 256 and two
// big-endian bytes otherwise (spec §6.1).
func (l *LeftCipherText) marshalBinary() []byte {
	fSize := l.prfBlockSize()
	pxWidth := 1
	if l.params.W > 256 {
		pxWidth = 2
	}

	out := make([]byte, 0, l.params.N*(fSize+pxWidth))
	for n := 0; n < l.params.N; n++ {
		out = append(out, l.f[n]...)
	}
	for n := 0; n < l.params.N; n++ {
		if pxWidth == 1 {
			out = append(out, byte(l.px[n]))
		} else {
			out = append(out, byte(l.px[n]>>8), byte(l.px[n]))
		}
	}
	return out
}

// unmarshalLeftCipherText parses bytes produced by marshalBinary. The
// resulting LeftCipherText has no owning Cipher and therefore cannot
// have further blocks set on it.
func unmarshalLeftCipherText(params Params, data []byte) (*LeftCipherText, error) {
	fSize := 16
	pxWidth := 1
	if params.W > 256 {
		pxWidth = 2
	}

	pxStart := params.N * fSize
	need := pxStart + params.N*pxWidth
	if len(data) < need {
		return nil, &ParseError{Field: "left", Message: "end of data while parsing left ciphertext"}
	}

	l := &LeftCipherText{
		params: params,
		f:      make([][]byte, params.N),
		px:     make([]uint16, params.N),
	}

	for n := 0; n < params.N; n++ {
		f := make([]byte, fSize)
		copy(f, data[n*fSize:(n+1)*fSize])
		l.f[n] = f
	}

	for n := 0; n < params.N; n++ {
		if pxWidth == 1 {
			l.px[n] = uint16(data[pxStart+n])
		} else {
			off := pxStart + 2*n
			l.px[n] = uint16(data[off])<<8 | uint16(data[off+1])
		}
	}

	return l, nil
}
