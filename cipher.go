package cretrit

import (
	"crypto/rand"
	"io"
	"sync"
)

// Cipher is the keyed object that encrypts PlainText values into
// CipherText (spec §4). It holds the derived PRF and PRP sub-keys,
// plus a CSPRNG used to generate each RightCipherText's nonce base.
// The hash function HF is keyed per call rather than held as a
// subkey; see hashedValue. A Cipher is safe for concurrent use.
type Cipher struct {
	params     Params
	comparator Comparator

	prf *prf
	prp *prp

	randMu sync.Mutex
	rand   io.Reader
}

// NewCipher derives a Cipher from a 32-byte root key and the given
// domain parameters and comparator, reading randomness from
// crypto/rand. Use NewCipherWithRand to supply a different source,
// e.g. a deterministic reader in tests.
func NewCipher(params Params, comparator Comparator, rootKey []byte) (*Cipher, error) {
	return NewCipherWithRand(params, comparator, rootKey, rand.Reader)
}

// NewCipherWithRand is NewCipher with an explicit randomness source
// for the per-ciphertext nonce base. It exists so tests (and callers
// who keep their own audited CSPRNG) need not depend on the process
// default.
func NewCipherWithRand(params Params, comparator Comparator, rootKey []byte, randSource io.Reader) (*Cipher, error) {
	if comparator == nil {
		return nil, ErrNilComparator
	}
	if randSource == nil {
		return nil, &CryptoError{Operation: "NewCipherWithRand", Message: "a randomness source is required"}
	}
	if err := validateKeyLength(rootKey, 32, "root key"); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateComparatorArity(comparator.Arity()); err != nil {
		return nil, err
	}

	prfSubkey, err := kbkdf(rootKey, "AES128PRF.subkey", 16)
	if err != nil {
		return nil, err
	}
	p, err := newPRF(prfSubkey)
	if err != nil {
		return nil, err
	}

	prpSeed, err := kbkdf(rootKey, "KnuthShufflePRP.rngseed", 32)
	if err != nil {
		return nil, err
	}
	perm, err := newPRP(prpSeed, params.W)
	if err != nil {
		return nil, err
	}

	return &Cipher{
		params:     params,
		comparator: comparator,
		prf:        p,
		prp:        perm,
		rand:       randSource,
	}, nil
}

// Params returns the domain parameters this Cipher was constructed
// with.
func (c *Cipher) Params() Params {
	return c.params
}

// Comparator returns the comparator this Cipher was constructed with.
func (c *Cipher) Comparator() Comparator {
	return c.comparator
}

// FullEncrypt produces a CipherText carrying both the left and right
// halves: the result supports both Compare (as the left-hand operand)
// and being compared against (as the right-hand operand).
func (c *Cipher) FullEncrypt(value *PlainText) (*CipherText, error) {
	return newCipherText(c, value, true)
}

// RightEncrypt produces a CipherText carrying only the right half: it
// can be compared against (as the right-hand operand of Compare) but
// cannot itself issue a comparison, since that requires the left
// half's trapdoor information.
func (c *Cipher) RightEncrypt(value *PlainText) (*CipherText, error) {
	return newCipherText(c, value, false)
}

func (c *Cipher) fillNonce(buf []byte) error {
	c.randMu.Lock()
	defer c.randMu.Unlock()
	if _, err := io.ReadFull(c.rand, buf); err != nil {
		return &CryptoError{Operation: "fillNonce", Message: "reading from the randomness source", Err: err}
	}
	return nil
}

func (c *Cipher) pseudorandomise(value uint16) []byte {
	return c.prf.randomise(value)
}

// hashedValue evaluates HF(key, nonce): unlike the PRF and PRP, the
// hash function is keyed afresh on every call with the per-block
// pseudorandom value produced by pseudorandomise, not with a subkey
// held by the Cipher itself.
func (c *Cipher) hashedValue(key, nonce []byte) (uint8, error) {
	h, err := newHashFunction(key, c.comparator.Arity())
	if err != nil {
		return 0, err
	}
	return h.hash(nonce)
}

func (c *Cipher) permutedValue(value uint16) uint16 {
	return c.prp.value(value)
}

func (c *Cipher) inversePermutedValue(value uint16) uint16 {
	return c.prp.inverse(value)
}

func (c *Cipher) compareValues(a, b uint16) uint8 {
	return c.comparator.Compare(a, b)
}
