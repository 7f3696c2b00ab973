package cretrit

import (
	"crypto/aes"

	"github.com/aead/cmac"
)

// hashFunction computes HF(key, nonce), a keyed hash reduced to a
// single element of Z_M (spec §4.4): a CMAC-AES128 tag of nonce under
// key, truncated to its first byte and taken modulo m.
type hashFunction struct {
	key []byte
	m   uint8
}

func newHashFunction(key []byte, m int) (*hashFunction, error) {
	if err := validateKeyLength(key, 16, "HF key"); err != nil {
		return nil, err
	}
	if err := validateComparatorArity(m); err != nil {
		return nil, err
	}
	return &hashFunction{key: key, m: uint8(m)}, nil
}

func (h *hashFunction) hash(nonce []byte) (uint8, error) {
	block, err := aes.NewCipher(h.key)
	if err != nil {
		return 0, &KeyError{Message: "constructing AES cipher for HF", Err: err}
	}
	mac, err := cmac.New(block)
	if err != nil {
		return 0, &CryptoError{Operation: "hf", Message: "constructing CMAC instance", Err: err}
	}
	mac.Write(nonce)
	tag := mac.Sum(nil)
	return tag[0] % h.m, nil
}
