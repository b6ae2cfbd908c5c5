package bitvector

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
)

// blockLenBits is the block size (2^blockLenBits bits) that RunBlockBitvector
// groups bits into before deciding whether a block is all-zero.
const blockLenBits = 3 // 8-bit blocks

// RunBlockBitvector is a sparse encoding: the input is split into blocks of
// 8 bits, and a control bitvector marks which blocks are entirely zero. Only
// the non-zero blocks are stored in full, in a second bitvector. Favorable
// when set bits are rare, since most blocks collapse to a single control bit.
type RunBlockBitvector struct {
	control  *Bitvector // one bit per block: true means "block is all zero"
	detail   *Bitvector // raw bits of every non-zero block, concatenated
	trailing []bool     // bits not yet forming a complete block
	length   int
}

var _ fmseek.Bitvector = (*RunBlockBitvector)(nil)

// NewRunBlockBitvector creates an empty, growable run-block bitvector.
func NewRunBlockBitvector() *RunBlockBitvector {
	return &RunBlockBitvector{control: NewBitvector(), detail: NewBitvector()}
}

// NewRunBlockBitvectorFromBits builds an already-finalized run-block
// bitvector.
func NewRunBlockBitvectorFromBits(values []bool) *RunBlockBitvector {
	this := NewRunBlockBitvector()

	for _, v := range values {
		this.PushBack(v)
	}

	this.finalize()
	return this
}

const blockLen = 1 << blockLenBits

// PushBack appends one bit, flushing a block to the control/detail
// bitvectors every 8 bits.
func (this *RunBlockBitvector) PushBack(value bool) {
	this.trailing = append(this.trailing, value)
	this.length++

	if len(this.trailing) == blockLen {
		allZero := true

		for _, v := range this.trailing {
			if v {
				allZero = false
				break
			}
		}

		this.control.PushBack(allZero)

		if !allZero {
			for _, v := range this.trailing {
				this.detail.PushBack(v)
			}
		}

		this.trailing = this.trailing[:0]
	}
}

// Size returns the number of bits.
func (this *RunBlockBitvector) Size() int {
	return this.length
}

// Symbol returns the bit at position i.
func (this *RunBlockBitvector) Symbol(i int) bool {
	completeLen := this.length - len(this.trailing)

	if i >= completeLen {
		return this.trailing[i-completeLen]
	}

	blockID := i >> blockLenBits

	if this.control.Symbol(blockID) {
		return false
	}

	nonZeroBlocksBefore := blockID - this.control.Rank(blockID)
	return this.detail.Symbol(nonZeroBlocksBefore*blockLen + (i % blockLen))
}

// Rank returns the number of set bits in [0, i).
func (this *RunBlockBitvector) Rank(i int) int {
	if i < 0 || i > this.length {
		panic(fmt.Errorf("Index out of bounds: %d", i))
	}

	completeLen := this.length - len(this.trailing)

	if i >= completeLen {
		r := this.detail.Rank(this.detail.Size())

		for j := 0; j < i-completeLen; j++ {
			if this.trailing[j] {
				r++
			}
		}

		return r
	}

	blockID := i >> blockLenBits
	nonZeroBlocksBefore := blockID - this.control.Rank(blockID)

	if this.control.Symbol(blockID) {
		return this.detail.Rank(nonZeroBlocksBefore * blockLen)
	}

	return this.detail.Rank(nonZeroBlocksBefore*blockLen + (i % blockLen))
}

func (this *RunBlockBitvector) finalize() {
	this.control.Rank(this.control.Size())
	this.detail.Rank(this.detail.Size())
}
