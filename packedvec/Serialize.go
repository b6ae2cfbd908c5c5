package packedvec

import (
	"github.com/sgssgene-go/fmseek/bitstream"
)

// Save persists the vector as width (8 bits), bit count (64 bits) and the
// packed words themselves.
func (this *PackedVector) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.width), 8)
	w.WriteBits(uint64(this.bitCount), 64)
	w.WriteUint64Array(this.data)
	return nil
}

// Load rebuilds a PackedVector written by Save.
func Load(r *bitstream.DefaultInputBitStream) (*PackedVector, error) {
	width := uint8(r.ReadBits(8))
	bitCount := int(r.ReadBits(64))
	nWords := (bitCount + 63) / 64

	return &PackedVector{
		data:     r.ReadUint64Array(nWords),
		bitCount: bitCount,
		width:    width,
	}, nil
}
