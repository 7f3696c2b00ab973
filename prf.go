package cretrit

import "crypto/aes"

// prf is the pseudo-random function F used to build the left-half tag
// f(n) and the right-half block key b (spec §4.3): a single AES-128
// block encryption of a 16-bit value placed in the first two bytes of
// an otherwise zero block, under a subkey derived from the Cipher's
// root key via KBKDF.
type prf struct {
	block cipherBlock
}

// cipherBlock is the subset of cipher.Block the PRF relies on; kept
// as an interface purely so tests can swap in a fake if ever needed.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
}

func newPRF(subkey []byte) (*prf, error) {
	if err := validateKeyLength(subkey, 16, "PRF subkey"); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(subkey)
	if err != nil {
		return nil, &KeyError{Message: "constructing AES cipher for PRF", Err: err}
	}
	return &prf{block: block}, nil
}

// randomise returns F(value): value is packed big-endian into the
// first two bytes of a 16-byte zero-padded input block, then
// encrypted as a single AES block.
func (p *prf) randomise(value uint16) []byte {
	var input [16]byte
	input[0] = byte(value >> 8)
	input[1] = byte(value)

	output := make([]byte, 16)
	p.block.Encrypt(output, input[:])
	return output
}
