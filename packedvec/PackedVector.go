// Package packedvec implements fixed-width integer vectors packed across
// 64-bit word boundaries, the storage primitive every bitvector and String
// implementation in this module builds on.
package packedvec

import (
	"errors"
	"fmt"
	"math/bits"
)

// PackedVector is a dense vector of fixed-width unsigned integers, each
// entry using exactly `width` bits and straddling 64-bit word boundaries
// freely (no padding between entries). Width is fixed at construction and
// derived from the largest value the caller declares up front.
type PackedVector struct {
	data     []uint64
	bitCount int // number of bits actually used
	width    uint8
}

// NewPackedVector creates an empty vector whose entry width is just large
// enough to hold values up to maxValue. A maxValue of 0 still reserves one
// bit per entry, matching DenseVector's std::bit_width semantics.
func NewPackedVector(maxValue uint64) (*PackedVector, error) {
	return NewPackedVectorWithCapacity(maxValue, 0)
}

// NewPackedVectorWithCapacity is like NewPackedVector but preallocates room
// for `capacity` entries.
func NewPackedVectorWithCapacity(maxValue uint64, capacity int) (*PackedVector, error) {
	if capacity < 0 {
		return nil, errors.New("Invalid capacity parameter (must be at least 0)")
	}

	width := bits.Len64(maxValue)

	if width == 0 {
		width = 1
	}

	this := &PackedVector{width: uint8(width)}

	if capacity > 0 {
		words := (capacity*width + 63) / 64
		this.data = make([]uint64, 0, words+1)
	}

	return this, nil
}

// Width returns the number of bits used to store each entry.
func (this *PackedVector) Width() uint {
	return uint(this.width)
}

// Len returns the number of entries currently stored.
func (this *PackedVector) Len() int {
	return this.bitCount / int(this.width)
}

// BitSize returns the number of bits actually used across all entries.
func (this *PackedVector) BitSize() int {
	return this.bitCount
}

// PushBack appends value to the vector. Panics if value does not fit in the
// configured width, mirroring DenseVector::push_back's assertion.
func (this *PackedVector) PushBack(value uint64) {
	w := uint(this.width)

	if w < 64 && value>>w != 0 {
		panic(fmt.Errorf("Value %d does not fit in %d bits", value, w))
	}

	empty := uint(len(this.data))*64 - uint(this.bitCount)

	if empty == 0 {
		this.data = append(this.data, value)
		this.bitCount += int(w)
		return
	}

	this.data[len(this.data)-1] |= value << (64 - empty)

	if empty < w {
		this.data = append(this.data, value>>empty)
	}

	this.bitCount += int(w)
}

// At returns the entry at position i. Panics if i is out of range.
func (this *PackedVector) At(i int) uint64 {
	w := uint(this.width)
	begin := uint(i) * w
	end := begin + w - 1

	if int(end) >= this.bitCount {
		panic(fmt.Errorf("Index out of bounds: %d", i))
	}

	startI := begin / 64
	endI := end / 64
	startOffset := begin % 64

	var mask uint64
	if w == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << w) - 1
	}

	if startI == endI {
		return (this.data[startI] >> startOffset) & mask
	}

	p1 := this.data[startI] >> startOffset
	p2 := this.data[endI] << (64 - startOffset)

	return (p1 | p2) & mask
}

// Set overwrites the entry at position i in place. Panics if value does not
// fit in the configured width or i is out of range.
func (this *PackedVector) Set(i int, value uint64) {
	w := uint(this.width)

	if w < 64 && value>>w != 0 {
		panic(fmt.Errorf("Value %d does not fit in %d bits", value, w))
	}

	begin := uint(i) * w
	end := begin + w - 1

	if int(end) >= this.bitCount {
		panic(fmt.Errorf("Index out of bounds: %d", i))
	}

	startI := begin / 64
	endI := end / 64
	startOffset := begin % 64

	var mask uint64
	if w == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << w) - 1
	}

	if startI == endI {
		this.data[startI] = (this.data[startI] &^ (mask << startOffset)) | (value << startOffset)
		return
	}

	lowBits := 64 - startOffset
	this.data[startI] = (this.data[startI] &^ (mask << startOffset)) | (value << startOffset)
	this.data[endI] = (this.data[endI] &^ (mask >> lowBits)) | (value >> lowBits)
}

// Data exposes the underlying packed words for serialization. Callers must
// not mutate the returned slice.
func (this *PackedVector) Data() []uint64 {
	return this.data
}

// FromWords rebuilds a PackedVector from raw packed words, as produced by a
// prior Data() call, with `count` entries of `width` bits each.
func FromWords(words []uint64, width uint, count int) (*PackedVector, error) {
	if width == 0 || width > 64 {
		return nil, errors.New("Invalid width parameter (must be in [1..64])")
	}

	if count < 0 {
		return nil, errors.New("Invalid count parameter (must be at least 0)")
	}

	needed := (count*int(width) + 63) / 64

	if needed > len(words) {
		return nil, errors.New("Invalid words slice: too short for count*width bits")
	}

	this := &PackedVector{
		data:     words,
		bitCount: count * int(width),
		width:    uint8(width),
	}

	return this, nil
}
