package bitvector

import (
	"math/rand"
	"testing"

	"github.com/sgssgene-go/fmseek"
)

func referenceRank(values []bool, i int) int {
	r := 0

	for j := 0; j < i; j++ {
		if values[j] {
			r++
		}
	}

	return r
}

func checkBitvector(t *testing.T, name string, bv fmseek.Bitvector, values []bool) {
	if bv.Size() != len(values) {
		t.Errorf("%s: expected size %d, got %d", name, len(values), bv.Size())
	}

	for i := 0; i < len(values); i++ {
		if bv.Symbol(i) != values[i] {
			t.Errorf("%s: Symbol(%d): expected %v, got %v", name, i, values[i], bv.Symbol(i))
		}
	}

	for i := 0; i <= len(values); i++ {
		want := referenceRank(values, i)

		if got := bv.Rank(i); got != want {
			t.Errorf("%s: Rank(%d): expected %d, got %d", name, i, want, got)
		}
	}
}

func randomBits(n int, seed int64, density float64) []bool {
	r := rand.New(rand.NewSource(seed))
	values := make([]bool, n)

	for i := range values {
		values[i] = r.Float64() < density
	}

	return values
}

func TestBitvectorRankSymbol(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 4095, 4096, 4097, 20000} {
		values := randomBits(n, int64(n)+1, 0.5)
		bv := NewBitvectorFromBits(values)
		checkBitvector(t, "Bitvector", bv, values)
	}
}

func TestPairedBitvectorRankSymbol(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 127, 128, 4095, 4096, 20000} {
		values := randomBits(n, int64(n)+2, 0.5)
		bv := NewPairedBitvectorFromBits(values)
		checkBitvector(t, "PairedBitvector", bv, values)
	}
}

func TestRunBlockBitvectorRankSymbol(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 100, 10000} {
		values := randomBits(n, int64(n)+3, 0.05)
		bv := NewRunBlockBitvectorFromBits(values)
		checkBitvector(t, "RunBlockBitvector", bv, values)
	}
}

func TestInvertedBitvector(t *testing.T) {
	values := randomBits(5000, 7, 0.5)
	inner := NewBitvectorFromBits(values)
	inv := NewInvertedBitvector(inner)

	complemented := make([]bool, len(values))

	for i, v := range values {
		complemented[i] = !v
	}

	checkBitvector(t, "InvertedBitvector", inv, complemented)
}

func TestAutoSelectBitvectorPicksSparse(t *testing.T) {
	values := randomBits(10000, 11, 0.02)

	as := NewAutoSelectBitvector()

	for _, v := range values {
		as.PushBack(v)
	}

	checkBitvector(t, "AutoSelectBitvector(sparse)", as, values)

	switch as.Underlying().(type) {
	case *RunBlockBitvector:
	default:
		t.Errorf("Expected sparse bitvector to select RunBlockBitvector, got %T", as.Underlying())
	}
}

func TestAutoSelectBitvectorPicksDense(t *testing.T) {
	values := randomBits(10000, 13, 0.5)

	as := NewAutoSelectBitvector()

	for _, v := range values {
		as.PushBack(v)
	}

	checkBitvector(t, "AutoSelectBitvector(dense)", as, values)

	if _, ok := as.Underlying().(*Bitvector); !ok {
		t.Errorf("Expected dense bitvector to select Bitvector, got %T", as.Underlying())
	}
}

func TestPushBackAfterFinalizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic pushing to a finalized bitvector")
		}
	}()

	bv := NewBitvector()
	bv.PushBack(true)
	bv.Rank(1)
	bv.PushBack(false)
}
