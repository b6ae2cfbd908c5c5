package fmindex

import "testing"

func TestComputeCFromBytesMatchesRankBased(t *testing.T) {
	bwtBytes := []byte{2, 1, 3, 1, 2, 0, 1, 3, 2, 1, 0, 2, 3, 1, 2, 0, 3, 1, 2}
	sigma := 4

	bwt, err := newBWTString(sigma, bwtBytes)

	if err != nil {
		t.Fatalf("newBWTString failed: %v", err)
	}

	want := computeC(bwt, sigma)

	for _, threadHint := range []int{1, 2, 3, 7, 32} {
		got, err := computeCFromBytes(bwtBytes, sigma, threadHint)

		if err != nil {
			t.Fatalf("computeCFromBytes(threadHint=%d) failed: %v", threadHint, err)
		}

		if len(got) != len(want) {
			t.Fatalf("threadHint=%d: got %d entries, want %d", threadHint, len(got), len(want))
		}

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("threadHint=%d: C[%d] = %d, want %d", threadHint, i, got[i], want[i])
			}
		}
	}
}

func TestComputeCFromBytesEmpty(t *testing.T) {
	got, err := computeCFromBytes(nil, 4, 3)

	if err != nil {
		t.Fatalf("computeCFromBytes(empty) failed: %v", err)
	}

	for i, v := range got {
		if v != 0 {
			t.Fatalf("C[%d] = %d, want 0", i, v)
		}
	}
}
