package packedvec

import (
	"math/rand"
	"testing"
)

func TestPackedVectorWidths(t *testing.T) {
	for _, maxValue := range []uint64{0, 1, 2, 7, 255, 1 << 20, 1<<40 - 1} {
		pv, err := NewPackedVector(maxValue)

		if err != nil {
			t.Errorf("Unexpected error: %v", err)
			continue
		}

		n := 500
		values := make([]uint64, n)
		r := rand.New(rand.NewSource(int64(maxValue) + 1))

		for i := 0; i < n; i++ {
			values[i] = uint64(r.Int63()) & ((uint64(1) << pv.Width()) - 1)

			if pv.Width() == 64 {
				values[i] = uint64(r.Int63())
			}

			pv.PushBack(values[i])
		}

		if pv.Len() != n {
			t.Errorf("Expected %d entries, got %d", n, pv.Len())
		}

		for i := 0; i < n; i++ {
			if got := pv.At(i); got != values[i] {
				t.Errorf("At(%d): expected %d, got %d", i, values[i], got)
			}
		}
	}
}

func TestPackedVectorCrossesWordBoundary(t *testing.T) {
	pv, err := NewPackedVector(31) // 5 bits per entry, does not divide 64 evenly

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
		return
	}

	const n = 1000
	values := make([]uint64, n)
	r := rand.New(rand.NewSource(42))

	for i := 0; i < n; i++ {
		values[i] = uint64(r.Intn(32))
		pv.PushBack(values[i])
	}

	for i := 0; i < n; i++ {
		if got := pv.At(i); got != values[i] {
			t.Errorf("At(%d): expected %d, got %d", i, values[i], got)
		}
	}

	if pv.BitSize() != n*5 {
		t.Errorf("Expected bit size %d, got %d", n*5, pv.BitSize())
	}
}

func TestPackedVectorSet(t *testing.T) {
	pv, err := NewPackedVector(1000)

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
		return
	}

	for i := 0; i < 200; i++ {
		pv.PushBack(uint64(i))
	}

	for i := 0; i < 200; i++ {
		pv.Set(i, uint64(999-i))
	}

	for i := 0; i < 200; i++ {
		if got := pv.At(i); got != uint64(999-i) {
			t.Errorf("At(%d): expected %d, got %d", i, 999-i, got)
		}
	}
}

func TestPackedVectorOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic on oversized value")
		}
	}()

	pv, err := NewPackedVector(7) // 3 bits per entry

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
		return
	}

	pv.PushBack(8)
}

func TestFromWordsRoundTrip(t *testing.T) {
	pv, err := NewPackedVector(63)

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
		return
	}

	for i := 0; i < 100; i++ {
		pv.PushBack(uint64(i) & 63)
	}

	rebuilt, err := FromWords(pv.Data(), pv.Width(), pv.Len())

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
		return
	}

	for i := 0; i < 100; i++ {
		if got := rebuilt.At(i); got != pv.At(i) {
			t.Errorf("At(%d): expected %d, got %d", i, pv.At(i), got)
		}
	}
}
