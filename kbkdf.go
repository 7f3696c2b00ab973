package cretrit

import (
	"crypto/aes"
	"encoding/binary"

	"github.com/aead/cmac"
)

// kbkdf derives outputLen bytes of key material from key and label
// using the NIST SP 800-108 counter-mode KDF with CMAC-AES as the PRF
// (spec §4.2). label identifies the purpose of the derived key, e.g.
// "AES128PRF.subkey", or "RCTnonce." followed by a block index as two
// big-endian bytes.
//
// The counter is a 16-bit big-endian value placed before the fixed
// input data (counter || 0x00 || label), matching the reference
// implementation; outputLen must therefore fit in 65535 CMAC blocks,
// far more than this scheme ever requests.
func kbkdf(key []byte, label string, outputLen int) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, &KeyError{Message: "constructing AES cipher for KBKDF", Err: err}
	}
	mac, err := cmac.New(block)
	if err != nil {
		return nil, &CryptoError{Operation: "kbkdf", Message: "constructing CMAC instance", Err: err}
	}

	blockSize := mac.Size()
	numBlocks := (outputLen + blockSize - 1) / blockSize
	if numBlocks > 65535 {
		return nil, &OverflowError{Message: "kbkdf: requested output too long for a 16-bit counter"}
	}

	out := make([]byte, 0, numBlocks*blockSize)
	remaining := outputLen
	var counter [2]byte
	for i := 0; i < numBlocks; i++ {
		binary.BigEndian.PutUint16(counter[:], uint16(i))

		mac.Reset()
		mac.Write(counter[:])
		mac.Write([]byte{0x00})
		mac.Write([]byte(label))

		segmentLen := blockSize
		if remaining < segmentLen {
			segmentLen = remaining
		}
		block := mac.Sum(nil)
		out = append(out, block[:segmentLen]...)
		remaining -= segmentLen
	}

	return out, nil
}
