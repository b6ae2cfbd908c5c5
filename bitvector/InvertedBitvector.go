package bitvector

import "github.com/sgssgene-go/fmseek"

// InvertedBitvector complements every bit of an underlying bitvector without
// rebuilding storage: Symbol is negated and Rank is derived from the
// identity rank(i) == i - innerRank(i). Useful when the inner encoding is
// optimized for sparse ones but the caller's data is sparse in zeros, or
// vice-versa.
type InvertedBitvector struct {
	inner fmseek.Bitvector
}

var _ fmseek.Bitvector = (*InvertedBitvector)(nil)

// NewInvertedBitvector wraps an existing bitvector, complementing its bits.
func NewInvertedBitvector(inner fmseek.Bitvector) *InvertedBitvector {
	return &InvertedBitvector{inner: inner}
}

// Size returns the number of bits.
func (this *InvertedBitvector) Size() int {
	return this.inner.Size()
}

// Symbol returns the complement of the inner bit at position i.
func (this *InvertedBitvector) Symbol(i int) bool {
	return !this.inner.Symbol(i)
}

// Rank returns the number of set bits in [0, i) of the complemented vector.
func (this *InvertedBitvector) Rank(i int) int {
	return i - this.inner.Rank(i)
}
