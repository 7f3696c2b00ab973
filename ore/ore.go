// Package ore fixes the generic cretrit.Cipher to the ordering
// comparator (M=3), giving a convenience API for the common case of
// comparing for order as well as equality.
package ore

import "github.com/enquo/cretrit"

// Cipher is a cretrit.Cipher fixed to cretrit.OrderingComparator.
type Cipher struct {
	inner *cretrit.Cipher
}

// NewCipher derives an ordering Cipher from a 32-byte root key for N
// blocks of base W.
func NewCipher(n, w int, rootKey []byte) (*Cipher, error) {
	inner, err := cretrit.NewCipher(cretrit.Params{N: n, W: w}, cretrit.OrderingComparator{}, rootKey)
	if err != nil {
		return nil, err
	}
	return &Cipher{inner: inner}, nil
}

// FullEncrypt encrypts value into a CipherText usable as either
// operand of Equal, Less, or Greater.
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
// right-hand operand of Equal, Less, or Greater.
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

// CipherText wraps a cretrit.CipherText produced under the ordering
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
	inner, err := cretrit.UnmarshalCipherText(cretrit.Params{N: n, W: w}, cretrit.OrderingComparator{}, data)
	if err != nil {
		return nil, err
	}
	return &CipherText{inner: inner}, nil
}

// HasLeft reports whether this CipherText carries a left half.
func (ct *CipherText) HasLeft() bool {
	return ct.inner.HasLeft()
}

// threeWay evaluates the ordering of ct against other, from ct's
// point of view, flipping the operands (and negating the result) when
// ct itself has no left half. It panics if neither side has a left
// half.
func (ct *CipherText) threeWay(other *CipherText) int {
	if ct.inner.HasLeft() {
		code, err := ct.inner.Compare(other.inner)
		if err != nil {
			panic(err)
		}
		result, err := cretrit.OrderingComparator{}.Invert(code)
		if err != nil {
			panic(err)
		}
		return result
	}
	if other.inner.HasLeft() {
		return -other.threeWay(ct)
	}
	panic("ore: neither ciphertext in the comparison has a left half")
}

// Equal reports whether this CipherText and other were encrypted from
// the same plaintext.
func (ct *CipherText) Equal(other *CipherText) bool {
	return ct.threeWay(other) == 0
}

// Less reports whether this CipherText's plaintext is strictly less
// than other's.
func (ct *CipherText) Less(other *CipherText) bool {
	return ct.threeWay(other) < 0
}

// Greater reports whether this CipherText's plaintext is strictly
// greater than other's.
func (ct *CipherText) Greater(other *CipherText) bool {
	return ct.threeWay(other) > 0
}
