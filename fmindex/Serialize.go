package fmindex

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/sgssgene-go/fmseek/bitstream"
	"github.com/sgssgene-go/fmseek/hash"
)

// footerChecksum hashes the handful of values every archive already carries
// in its header, not the full body: its job is to catch truncated or
// bit-flipped archives on Load, not to authenticate content.
func footerChecksum(fields ...int) (uint64, error) {
	hasher, err := hash.NewXXHash64(0)

	if err != nil {
		return 0, err
	}

	buf := make([]byte, 8*len(fields))

	for i, f := range fields {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], uint64(f))
	}

	return hasher.Hash(buf), nil
}

func writeFooter(w *bitstream.DefaultOutputBitStream, fields ...int) error {
	checksum, err := footerChecksum(fields...)

	if err != nil {
		return err
	}

	w.WriteBits(checksum, 64)
	return nil
}

func checkFooter(r *bitstream.DefaultInputBitStream, fields ...int) error {
	got := r.ReadBits(64)
	want, err := footerChecksum(fields...)

	if err != nil {
		return err
	}

	if got != want {
		return errors.New("archive footer checksum mismatch: truncated or corrupt archive")
	}

	return nil
}

// Save persists the index: alphabet size, BWT string and sampled suffix
// array. The C-table itself is not written, it is cheaper to rederive from
// the loaded BWT than to persist. A footer checksum over the header fields
// follows, catching a truncated or corrupt archive on Load.
func (this *FMIndex) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.sigma), 32)

	if err := saveBWTString(this.bwt, w); err != nil {
		return errors.Wrap(err, "save FMIndex BWT")
	}

	if err := this.csa.Save(w); err != nil {
		return errors.Wrap(err, "save FMIndex CSA")
	}

	return writeFooter(w, this.sigma, this.bwt.Size(), this.csa.seqCount)
}

// LoadFMIndex rebuilds an FMIndex written by Save.
func LoadFMIndex(r *bitstream.DefaultInputBitStream) (*FMIndex, error) {
	sigma := int(r.ReadBits(32))

	bwt, err := loadBWTString(sigma, r)

	if err != nil {
		return nil, errors.Wrap(err, "load FMIndex BWT")
	}

	csa, err := loadDenseCSA(r)

	if err != nil {
		return nil, errors.Wrap(err, "load FMIndex CSA")
	}

	if err := checkFooter(r, sigma, bwt.Size(), csa.seqCount); err != nil {
		return nil, err
	}

	c := computeC(bwt, sigma)

	return &FMIndex{bwt: bwt, c: c, csa: csa, sigma: sigma}, nil
}

// Save persists a ReverseFMIndex exactly like FMIndex.Save.
func (this *ReverseFMIndex) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.sigma), 32)

	if err := saveBWTString(this.bwt, w); err != nil {
		return errors.Wrap(err, "save ReverseFMIndex BWT")
	}

	if err := this.csa.Save(w); err != nil {
		return errors.Wrap(err, "save ReverseFMIndex CSA")
	}

	return writeFooter(w, this.sigma, this.bwt.Size(), this.csa.seqCount)
}

// LoadReverseFMIndex rebuilds a ReverseFMIndex written by Save.
func LoadReverseFMIndex(r *bitstream.DefaultInputBitStream) (*ReverseFMIndex, error) {
	sigma := int(r.ReadBits(32))

	bwt, err := loadBWTString(sigma, r)

	if err != nil {
		return nil, errors.Wrap(err, "load ReverseFMIndex BWT")
	}

	csa, err := loadDenseCSA(r)

	if err != nil {
		return nil, errors.Wrap(err, "load ReverseFMIndex CSA")
	}

	if err := checkFooter(r, sigma, bwt.Size(), csa.seqCount); err != nil {
		return nil, err
	}

	c := computeC(bwt, sigma)

	return &ReverseFMIndex{bwt: bwt, c: c, csa: csa, sigma: sigma}, nil
}

// Save persists a BiFMIndex: alphabet size, both the forward and reverse BWT
// strings and the shared forward CSA.
func (this *BiFMIndex) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.sigma), 32)

	if err := saveBWTString(this.bwt, w); err != nil {
		return errors.Wrap(err, "save BiFMIndex forward BWT")
	}

	if err := saveBWTString(this.bwtRev, w); err != nil {
		return errors.Wrap(err, "save BiFMIndex reverse BWT")
	}

	if err := this.csa.Save(w); err != nil {
		return errors.Wrap(err, "save BiFMIndex CSA")
	}

	return writeFooter(w, this.sigma, this.bwt.Size(), this.bwtRev.Size(), this.csa.seqCount)
}

// LoadBiFMIndex rebuilds a BiFMIndex written by Save.
func LoadBiFMIndex(r *bitstream.DefaultInputBitStream) (*BiFMIndex, error) {
	sigma := int(r.ReadBits(32))

	bwt, err := loadBWTString(sigma, r)

	if err != nil {
		return nil, errors.Wrap(err, "load BiFMIndex forward BWT")
	}

	bwtRev, err := loadBWTString(sigma, r)

	if err != nil {
		return nil, errors.Wrap(err, "load BiFMIndex reverse BWT")
	}

	csa, err := loadDenseCSA(r)

	if err != nil {
		return nil, errors.Wrap(err, "load BiFMIndex CSA")
	}

	if err := checkFooter(r, sigma, bwt.Size(), bwtRev.Size(), csa.seqCount); err != nil {
		return nil, err
	}

	c := computeC(bwt, sigma)

	return &BiFMIndex{bwt: bwt, bwtRev: bwtRev, c: c, csa: csa, sigma: sigma}, nil
}
