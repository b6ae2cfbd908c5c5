package bitvector

import (
	"github.com/pkg/errors"

	"github.com/sgssgene-go/fmseek/bitstream"
)

// Save persists the vector as its bit length (64 bits) followed by the raw
// words. l0/l1 counters are not persisted, they are cheap to recompute and
// rebuilding them on Load keeps the wire format independent of the
// superblock granularity constants.
func (this *Bitvector) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.length), 64)
	w.WriteUint64Array(this.words)
	return nil
}

// LoadBitvector rebuilds a Bitvector written by Save, finalized and ready
// to answer Rank queries.
func LoadBitvector(r *bitstream.DefaultInputBitStream) (*Bitvector, error) {
	length := int(r.ReadBits(64))
	nWords := (length + 63) / 64

	this := &Bitvector{
		words:  r.ReadUint64Array(nWords),
		length: length,
	}

	this.finalize()
	return this, nil
}

// Save persists the vector the same way Bitvector.Save does: l0/l1 counters
// are recomputed on Load rather than carried across the wire.
func (this *PairedBitvector) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.length), 64)
	w.WriteUint64Array(this.words)
	return nil
}

// LoadPairedBitvector rebuilds a PairedBitvector written by Save.
func LoadPairedBitvector(r *bitstream.DefaultInputBitStream) (*PairedBitvector, error) {
	length := int(r.ReadBits(64))
	nWords := (length + 63) / 64

	this := &PairedBitvector{
		words:  r.ReadUint64Array(nWords),
		length: length,
	}

	this.finalize()
	return this, nil
}

// Save persists control and detail as two nested Bitvector streams, plus
// any bits still pending in trailing.
func (this *RunBlockBitvector) Save(w *bitstream.DefaultOutputBitStream) error {
	if err := this.control.Save(w); err != nil {
		return errors.Wrap(err, "save run-block control vector")
	}

	if err := this.detail.Save(w); err != nil {
		return errors.Wrap(err, "save run-block detail vector")
	}

	w.WriteBits(uint64(len(this.trailing)), 8)

	for _, v := range this.trailing {
		bit := 0

		if v {
			bit = 1
		}

		w.WriteBits(uint64(bit), 1)
	}

	w.WriteBits(uint64(this.length), 64)
	return nil
}

// LoadRunBlockBitvector rebuilds a RunBlockBitvector written by Save.
func LoadRunBlockBitvector(r *bitstream.DefaultInputBitStream) (*RunBlockBitvector, error) {
	control, err := LoadBitvector(r)

	if err != nil {
		return nil, errors.Wrap(err, "load run-block control vector")
	}

	detail, err := LoadBitvector(r)

	if err != nil {
		return nil, errors.Wrap(err, "load run-block detail vector")
	}

	nTrailing := int(r.ReadBits(8))
	trailing := make([]bool, nTrailing)

	for i := range trailing {
		trailing[i] = r.ReadBits(1) == 1
	}

	length := int(r.ReadBits(64))

	return &RunBlockBitvector{
		control:  control,
		detail:   detail,
		trailing: trailing,
		length:   length,
	}, nil
}

// Save persists the wrapped RunBlockBitvector. InvertedBitvector is only
// ever constructed over a *RunBlockBitvector in this module (see
// AutoSelectBitvector), so Save refuses any other inner type rather than
// silently dropping it.
func (this *InvertedBitvector) Save(w *bitstream.DefaultOutputBitStream) error {
	inner, ok := this.inner.(*RunBlockBitvector)

	if !ok {
		return errors.Errorf("cannot serialize InvertedBitvector wrapping %T", this.inner)
	}

	return inner.Save(w)
}

// LoadInvertedBitvector rebuilds an InvertedBitvector written by Save.
func LoadInvertedBitvector(r *bitstream.DefaultInputBitStream) (*InvertedBitvector, error) {
	inner, err := LoadRunBlockBitvector(r)

	if err != nil {
		return nil, errors.Wrap(err, "load inverted bitvector")
	}

	return NewInvertedBitvector(inner), nil
}

// Bitvector encoding tags persisted by AutoSelectBitvector.Save, matching
// spec.md's "compressed-block bitvector" version prefix: 0 selects the
// portable per-block (run-block) encoding, 1 selects the bulk binary blob
// (dense two-level) encoding, and 2 selects the complemented run-block
// encoding.
const (
	encodingRunBlock         = 0
	encodingRunBlockInverted = 2
	encodingDense            = 1
)

// Save writes a u32 encoding tag followed by whichever concrete encoding
// was selected.
func (this *AutoSelectBitvector) Save(w *bitstream.DefaultOutputBitStream) error {
	this.selectIfNeeded()

	switch chosen := this.chosen.(type) {
	case *RunBlockBitvector:
		w.WriteBits(encodingRunBlock, 32)
		return chosen.Save(w)
	case *InvertedBitvector:
		w.WriteBits(encodingRunBlockInverted, 32)
		return chosen.Save(w)
	case *Bitvector:
		w.WriteBits(encodingDense, 32)
		return chosen.Save(w)
	default:
		return errors.Errorf("cannot serialize AutoSelectBitvector wrapping %T", this.chosen)
	}
}

// LoadAutoSelectBitvector rebuilds an AutoSelectBitvector written by Save,
// already resolved to its chosen encoding.
func LoadAutoSelectBitvector(r *bitstream.DefaultInputBitStream) (*AutoSelectBitvector, error) {
	tag := r.ReadBits(32)

	switch tag {
	case encodingRunBlock:
		chosen, err := LoadRunBlockBitvector(r)

		if err != nil {
			return nil, errors.Wrap(err, "load auto-select run-block encoding")
		}

		return &AutoSelectBitvector{chosen: chosen}, nil
	case encodingRunBlockInverted:
		chosen, err := LoadInvertedBitvector(r)

		if err != nil {
			return nil, errors.Wrap(err, "load auto-select inverted run-block encoding")
		}

		return &AutoSelectBitvector{chosen: chosen}, nil
	case encodingDense:
		chosen, err := LoadBitvector(r)

		if err != nil {
			return nil, errors.Wrap(err, "load auto-select dense encoding")
		}

		return &AutoSelectBitvector{chosen: chosen}, nil
	default:
		return nil, errors.Errorf("unknown auto-select bitvector encoding tag: %d", tag)
	}
}
