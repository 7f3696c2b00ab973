package cretrit

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// prp is the pseudo-random permutation used to scramble the order in
// which plaintext block values appear in the right-half value table
// (spec §4.5). It is a Knuth (Fisher-Yates) shuffle of [0, W) driven
// by a ChaCha20 keystream seeded from the Cipher's root key via
// KBKDF, with value and inverse giving the forward and reverse
// mapping.
type prp struct {
	p    []uint16
	pInv []uint16
}

func newPRP(seed []byte, w int) (*prp, error) {
	if err := validateKeyLength(seed, 32, "PRP seed"); err != nil {
		return nil, err
	}
	if w < 2 || w > 65535 {
		return nil, &RangeError{Field: "W", Value: w, Message: "PRP width must be in [2, 65535]"}
	}

	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed, nonce[:])
	if err != nil {
		return nil, &CryptoError{Operation: "prp", Message: "constructing ChaCha20 keystream", Err: err}
	}

	p := make([]uint16, w)
	for i := range p {
		p[i] = uint16(i)
	}

	for idx := 0; idx < w; idx++ {
		j := uniformUint16(stream, w)
		p[idx], p[j] = p[j], p[idx]
	}

	pInv := make([]uint16, w)
	for idx, val := range p {
		pInv[val] = uint16(idx)
	}

	return &prp{p: p, pInv: pInv}, nil
}

// uniformUint16 draws an unbiased value in [0, bound) from stream
// using rejection sampling over 16-bit keystream words.
func uniformUint16(stream *chacha20.Cipher, bound int) int {
	limit := uint32(1<<16) - uint32(1<<16)%uint32(bound)

	var buf [2]byte
	var zero [2]byte
	for {
		stream.XORKeyStream(buf[:], zero[:])
		v := uint32(binary.BigEndian.Uint16(buf[:]))
		if v < limit {
			return int(v % uint32(bound))
		}
	}
}

// value returns P(data), the forward permutation.
func (pp *prp) value(data uint16) uint16 {
	return pp.p[data]
}

// inverse returns P^-1(data), the reverse permutation.
func (pp *prp) inverse(data uint16) uint16 {
	return pp.pInv[data]
}
