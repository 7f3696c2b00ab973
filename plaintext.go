package cretrit

import "fmt"

// PlainText is an unsigned integer decomposed into N base-W digits,
// most significant first, ready to be encrypted under a matching
// Params (spec §3). Construct one with NewPlainText or
// NewPlainTextFromBlocks.
type PlainText struct {
	params Params
	blocks []uint16
}

// NewPlainText decomposes value into Params.N base-Params.W digits,
// most significant first. It fails if value does not fit in N digits
// of base W.
func NewPlainText(params Params, value uint64) (*PlainText, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	blocks := make([]uint16, params.N)
	w := uint64(params.W)
	v := value
	for i := params.N - 1; i >= 0; i-- {
		blocks[i] = uint16(v % w)
		v /= w
	}

	if v != 0 {
		return nil, &RangeError{
			Field:   "value",
			Value:   value,
			Message: fmt.Sprintf("%d does not fit in %d base-%d digits", value, params.N, params.W),
		}
	}

	return &PlainText{params: params, blocks: blocks}, nil
}

// NewPlainTextFromBlocks builds a PlainText directly from its
// pre-decomposed digits, most significant first. Each digit must be
// less than Params.W.
func NewPlainTextFromBlocks(params Params, blocks []uint16) (*PlainText, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(blocks) != params.N {
		return nil, &RangeError{
			Field:   "blocks",
			Value:   len(blocks),
			Message: fmt.Sprintf("expected %d blocks, got %d", params.N, len(blocks)),
		}
	}
	for i, b := range blocks {
		if err := validateBlockValue(b, uint16(params.W), fmt.Sprintf("block %d", i)); err != nil {
			return nil, err
		}
	}

	cp := make([]uint16, len(blocks))
	copy(cp, blocks)
	return &PlainText{params: params, blocks: cp}, nil
}

// Block returns the nth digit, most significant first. It panics if n
// is out of range, mirroring the reference implementation's bounds
// assertion: callers are expected to loop over [0, Params.N).
func (p *PlainText) Block(n int) uint16 {
	if n < 0 || n >= len(p.blocks) {
		panic(fmt.Sprintf("cretrit: block index %d out of range [0, %d)", n, len(p.blocks)))
	}
	return p.blocks[n]
}

// Params returns the domain parameters this PlainText was built with.
func (p *PlainText) Params() Params {
	return p.params
}

// Uint64 reconstitutes the integer value this PlainText represents.
// It fails if the value overflows uint64.
func (p *PlainText) Uint64() (uint64, error) {
	var v uint64
	w := uint64(p.params.W)
	const maxUint64 = ^uint64(0)
	for _, b := range p.blocks {
		if v > maxUint64/w {
			return 0, &OverflowError{Message: "plaintext value overflows uint64"}
		}
		v *= w
		if v > maxUint64-uint64(b) {
			return 0, &OverflowError{Message: "plaintext value overflows uint64"}
		}
		v += uint64(b)
	}
	return v, nil
}
