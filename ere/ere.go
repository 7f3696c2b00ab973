// Package ere fixes the generic cretrit.Cipher to the equality
// comparator (M=2), giving a convenience API for the common case of
// comparing for equality only.
package ere

import "github.com/enquo/cretrit"

// Cipher is a cretrit.Cipher fixed to cretrit.EqualityComparator.
type Cipher struct {
	inner *cretrit.Cipher
}

// NewCipher derives an equality Cipher from a 32-byte root key for N
// blocks of base W.
func NewCipher(n, w int, rootKey []byte) (*Cipher, error) {
	inner, err := cretrit.NewCipher(cretrit.Params{N: n, W: w}, cretrit.EqualityComparator{}, rootKey)
	if err != nil {
		return nil, err
	}
	return &Cipher{inner: inner}, nil
}

// FullEncrypt encrypts value into a CipherText usable as either
// operand of Equal.
func (c *Cipher) FullEncrypt(value uint64) (*CipherText, error) {
	pt, err := cretrit.NewPlainText(c.inner.Params(), value)
	if err != nil {
		return nil, err
	}
	ct, err := c.inner.FullEncrypt(pt)
	if err != nil {
		return nil, err
	}
	return &CipherText{inner: ct}, nil
}

// RightEncrypt encrypts value into a CipherText usable only as the
// right-hand operand of Equal.
func (c *Cipher) RightEncrypt(value uint64) (*CipherText, error) {
	pt, err := cretrit.NewPlainText(c.inner.Params(), value)
	if err != nil {
		return nil, err
	}
	ct, err := c.inner.RightEncrypt(pt)
	if err != nil {
		return nil, err
	}
	return &CipherText{inner: ct}, nil
}

// CipherText wraps a cretrit.CipherText produced under the equality
// comparator.
type CipherText struct {
	inner *cretrit.CipherText
}

// MarshalBinary renders the wire format of this CipherText.
func (ct *CipherText) MarshalBinary() ([]byte, error) {
	return ct.inner.MarshalBinary()
}

// NewCipherTextFromBytes parses bytes produced by MarshalBinary for N
// blocks of base W.
func NewCipherTextFromBytes(n, w int, data []byte) (*CipherText, error) {
	inner, err := cretrit.UnmarshalCipherText(cretrit.Params{N: n, W: w}, cretrit.EqualityComparator{}, data)
	if err != nil {
		return nil, err
	}
	return &CipherText{inner: inner}, nil
}

// HasLeft reports whether this CipherText carries a left half.
func (ct *CipherText) HasLeft() bool {
	return ct.inner.HasLeft()
}

// Equal reports whether this CipherText and other were encrypted from
// the same plaintext. At least one of the two must carry a left half;
// if neither does, Equal panics, since no comparison is possible
// between two right-only ciphertexts.
func (ct *CipherText) Equal(other *CipherText) bool {
	if ct.inner.HasLeft() {
		code, err := ct.inner.Compare(other.inner)
		if err != nil {
			panic(err)
		}
		eq, err := cretrit.EqualityComparator{}.Invert(code)
		if err != nil {
			panic(err)
		}
		return eq
	}
	if other.inner.HasLeft() {
		return other.Equal(ct)
	}
	panic("ere: neither ciphertext in the comparison has a left half")
}
