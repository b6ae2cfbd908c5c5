package strvec

import (
	"github.com/pkg/errors"

	"github.com/sgssgene-go/fmseek/bitstream"
	"github.com/sgssgene-go/fmseek/bitvector"
)

// Save persists sigma, length and every bit plane. bitWidth is not written
// separately, it is recomputed from sigma on Load exactly as NewEPRString
// derives it at construction time.
func (this *EPRString) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.sigma), 32)
	w.WriteBits(uint64(this.length), 64)
	nWords := (this.length + 63) / 64

	for p := 0; p < this.bitWidth; p++ {
		w.WriteUint64Array(this.planes[p][:nWords])
	}

	return nil
}

// LoadEPRString rebuilds an EPRString written by Save.
func LoadEPRString(r *bitstream.DefaultInputBitStream) (*EPRString, error) {
	sigma := int(r.ReadBits(32))
	length := int(r.ReadBits(64))
	nWords := (length + 63) / 64
	bw := bitWidthFor(sigma)

	planes := make([][]uint64, bw)

	for p := 0; p < bw; p++ {
		planes[p] = r.ReadUint64Array(nWords)
	}

	this := &EPRString{
		sigma:     sigma,
		bitWidth:  bw,
		planes:    planes,
		blockBits: eprBlockWords * 64,
		length:    length,
	}

	this.finalize()
	return this, nil
}

// Save persists sigma, length and every node bitvector in level order.
// bitWidth is recomputed from sigma on Load.
func (this *WaveletTreeString) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.sigma), 32)
	w.WriteBits(uint64(this.length), 64)

	for i, bv := range this.bitvectors {
		if err := bv.Save(w); err != nil {
			return errors.Wrapf(err, "save wavelet tree node %d", i)
		}
	}

	return nil
}

// LoadWaveletTreeString rebuilds a WaveletTreeString written by Save.
func LoadWaveletTreeString(r *bitstream.DefaultInputBitStream) (*WaveletTreeString, error) {
	sigma := int(r.ReadBits(32))
	length := int(r.ReadBits(64))
	bw := bitWidthFor(sigma)
	nodes := (1 << bw) - 1

	bvs := make([]*bitvector.Bitvector, nodes)

	for i := range bvs {
		bv, err := bitvector.LoadBitvector(r)

		if err != nil {
			return nil, errors.Wrapf(err, "load wavelet tree node %d", i)
		}

		bvs[i] = bv
	}

	return &WaveletTreeString{
		sigma:      sigma,
		bitWidth:   bw,
		bitvectors: bvs,
		length:     length,
		finalized:  true,
	}, nil
}

// Save persists sigma, the bucket split (l0Sigma and l1Sigma), the length
// and the l0/l1 wavelet trees. Load reads the split back rather than
// recomputing it, so a split chosen explicitly at construction survives.
func (this *MultiaryWaveletString) Save(w *bitstream.DefaultOutputBitStream) error {
	this.ensureBuilt()

	w.WriteBits(uint64(this.sigma), 32)
	w.WriteBits(uint64(this.l0Sigma), 32)
	w.WriteBits(uint64(this.l1Sigma), 32)
	w.WriteBits(uint64(this.length), 64)

	if err := this.l0.Save(w); err != nil {
		return errors.Wrap(err, "save multiary wavelet l0 tree")
	}

	for i, t := range this.l1 {
		if err := t.Save(w); err != nil {
			return errors.Wrapf(err, "save multiary wavelet l1 tree %d", i)
		}
	}

	return nil
}

// LoadMultiaryWaveletString rebuilds a MultiaryWaveletString written by Save.
func LoadMultiaryWaveletString(r *bitstream.DefaultInputBitStream) (*MultiaryWaveletString, error) {
	sigma := int(r.ReadBits(32))
	l0Sigma := int(r.ReadBits(32))
	l1Sigma := int(r.ReadBits(32))
	length := int(r.ReadBits(64))

	l0, err := LoadWaveletTreeString(r)

	if err != nil {
		return nil, errors.Wrap(err, "load multiary wavelet l0 tree")
	}

	l1 := make([]*WaveletTreeString, l0Sigma)

	for i := range l1 {
		t, err := LoadWaveletTreeString(r)

		if err != nil {
			return nil, errors.Wrapf(err, "load multiary wavelet l1 tree %d", i)
		}

		l1[i] = t
	}

	return &MultiaryWaveletString{
		sigma:   sigma,
		l0Sigma: l0Sigma,
		l1Sigma: l1Sigma,
		l0:      l0,
		l1:      l1,
		built:   true,
		length:  length,
	}, nil
}

// Save persists sigma, length and one nested Bitvector per symbol value.
func (this *MultiBitvectorString) Save(w *bitstream.DefaultOutputBitStream) error {
	if !this.finalized {
		this.finalize()
	}

	w.WriteBits(uint64(this.sigma), 32)
	w.WriteBits(uint64(this.length), 64)

	for c, bv := range this.bitvectors {
		if err := bv.Save(w); err != nil {
			return errors.Wrapf(err, "save multi-bitvector string symbol %d", c)
		}
	}

	return nil
}

// LoadMultiBitvectorString rebuilds a MultiBitvectorString written by Save.
func LoadMultiBitvectorString(r *bitstream.DefaultInputBitStream) (*MultiBitvectorString, error) {
	sigma := int(r.ReadBits(32))
	length := int(r.ReadBits(64))

	bvs := make([]*bitvector.Bitvector, sigma)

	for c := range bvs {
		bv, err := bitvector.LoadBitvector(r)

		if err != nil {
			return nil, errors.Wrapf(err, "load multi-bitvector string symbol %d", c)
		}

		bvs[c] = bv
	}

	return &MultiBitvectorString{
		sigma:      sigma,
		bitvectors: bvs,
		length:     length,
		finalized:  true,
	}, nil
}
