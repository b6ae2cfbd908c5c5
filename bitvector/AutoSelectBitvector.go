package bitvector

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
)

// sparseDensityThreshold is the fraction of set bits below which the
// run-block encoding, not the two-level baseline, wins on size. A bitvector
// that is all-zero in 8-bit blocks more often than this is cheaper to store
// as one control bit per block than as 16 raw bits per block.
const sparseDensityThreshold = 0.15

// AutoSelectBitvector defers the choice between Bitvector and
// RunBlockBitvector until the input is fully known, picking whichever
// encoding the observed bit density favors. It behaves exactly like whatever
// it picked: all queries are forwarded, after a check that the choice has
// been made.
type AutoSelectBitvector struct {
	pending []bool
	chosen  fmseek.Bitvector
}

var _ fmseek.Bitvector = (*AutoSelectBitvector)(nil)

// NewAutoSelectBitvector creates an empty, growable selecting bitvector.
func NewAutoSelectBitvector() *AutoSelectBitvector {
	return &AutoSelectBitvector{}
}

// PushBack appends one bit. Panics once the encoding has been chosen.
func (this *AutoSelectBitvector) PushBack(value bool) {
	if this.chosen != nil {
		panic(fmseek.ErrFinalized)
	}

	this.pending = append(this.pending, value)
}

// Size returns the number of bits.
func (this *AutoSelectBitvector) Size() int {
	if this.chosen != nil {
		return this.chosen.Size()
	}

	return len(this.pending)
}

// Symbol returns the bit at position i, selecting the encoding on first use.
func (this *AutoSelectBitvector) Symbol(i int) bool {
	this.selectIfNeeded()
	return this.chosen.Symbol(i)
}

// Rank returns the number of set bits in [0, i), selecting the encoding on
// first use.
func (this *AutoSelectBitvector) Rank(i int) int {
	this.selectIfNeeded()
	return this.chosen.Rank(i)
}

// Underlying returns the chosen implementation, forcing selection if it has
// not happened yet. Useful for tests and for callers that want to inspect
// which encoding won.
func (this *AutoSelectBitvector) Underlying() fmseek.Bitvector {
	this.selectIfNeeded()
	return this.chosen
}

func (this *AutoSelectBitvector) selectIfNeeded() {
	if this.chosen != nil {
		return
	}

	ones := 0

	for _, v := range this.pending {
		if v {
			ones++
		}
	}

	density := 0.0

	if len(this.pending) > 0 {
		density = float64(ones) / float64(len(this.pending))
	}

	if density <= sparseDensityThreshold || (1-density) <= sparseDensityThreshold {
		rb := NewRunBlockBitvector()

		values := this.pending

		if density > 1-density {
			// majority-ones bitvectors are cheaper to store inverted.
			inv := make([]bool, len(values))

			for i, v := range values {
				inv[i] = !v
			}

			for _, v := range inv {
				rb.PushBack(v)
			}

			rb.finalize()
			this.chosen = NewInvertedBitvector(rb)
			this.pending = nil
			return
		}

		for _, v := range values {
			rb.PushBack(v)
		}

		rb.finalize()
		this.chosen = rb
		this.pending = nil
		return
	}

	bv := NewBitvector()

	for _, v := range this.pending {
		bv.PushBack(v)
	}

	bv.Rank(bv.Size()) // forces finalize()
	this.chosen = bv
	this.pending = nil
}

// String renders the chosen encoding's name, for diagnostics.
func (this *AutoSelectBitvector) String() string {
	this.selectIfNeeded()

	switch this.chosen.(type) {
	case *Bitvector:
		return "AutoSelectBitvector(dense)"
	case *RunBlockBitvector, *InvertedBitvector:
		return "AutoSelectBitvector(sparse)"
	default:
		return fmt.Sprintf("AutoSelectBitvector(%T)", this.chosen)
	}
}
