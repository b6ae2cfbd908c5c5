package strvec

import (
	"math/rand"
	"testing"

	"github.com/sgssgene-go/fmseek"
)

func referenceSymbolRank(symbols []int, i, c int) int {
	r := 0

	for j := 0; j < i; j++ {
		if symbols[j] == c {
			r++
		}
	}

	return r
}

func randomSymbols(n, sigma int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	symbols := make([]int, n)

	for i := range symbols {
		symbols[i] = r.Intn(sigma)
	}

	return symbols
}

func checkString(t *testing.T, name string, s fmseek.String, symbols []int, sigma int) {
	if s.Size() != len(symbols) {
		t.Errorf("%s: expected size %d, got %d", name, len(symbols), s.Size())
	}

	if s.Sigma() != sigma {
		t.Errorf("%s: expected sigma %d, got %d", name, sigma, s.Sigma())
	}

	for i := 0; i < len(symbols); i++ {
		if got := s.Symbol(i); got != symbols[i] {
			t.Errorf("%s: Symbol(%d): expected %d, got %d", name, i, symbols[i], got)
		}
	}

	for i := 0; i <= len(symbols); i += 7 {
		for c := 0; c < sigma; c++ {
			want := referenceSymbolRank(symbols, i, c)

			if got := s.Rank(i, c); got != want {
				t.Errorf("%s: Rank(%d, %d): expected %d, got %d", name, i, c, want, got)
			}
		}

		wantPrefix := 0

		for c := 0; c <= sigma; c++ {
			if got := s.PrefixRank(i, c); got != wantPrefix {
				t.Errorf("%s: PrefixRank(%d, %d): expected %d, got %d", name, i, c, wantPrefix, got)
			}

			if c < sigma {
				wantPrefix += referenceSymbolRank(symbols, i, c)
			}
		}

		ranks, prefixRanks := s.AllRanksAndPrefixRanks(i)

		for c := 0; c < sigma; c++ {
			if want := referenceSymbolRank(symbols, i, c); ranks[c] != want {
				t.Errorf("%s: AllRanks(%d)[%d]: expected %d, got %d", name, i, c, want, ranks[c])
			}
		}

		acc := 0

		for c := 0; c < sigma; c++ {
			if prefixRanks[c] != acc {
				t.Errorf("%s: AllRanksAndPrefixRanks(%d) prefix[%d]: expected %d, got %d", name, i, c, acc, prefixRanks[c])
			}

			acc += ranks[c]
		}
	}
}

func TestMultiBitvectorString(t *testing.T) {
	for _, sigma := range []int{2, 5, 16} {
		symbols := randomSymbols(1500, sigma, int64(sigma)+1)
		s, err := NewMultiBitvectorStringFromSymbols(sigma, symbols)

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		checkString(t, "MultiBitvectorString", s, symbols, sigma)
	}
}

func TestWaveletTreeString(t *testing.T) {
	for _, sigma := range []int{2, 5, 16, 17} {
		symbols := randomSymbols(1500, sigma, int64(sigma)+2)
		s, err := NewWaveletTreeStringFromSymbols(sigma, symbols)

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		checkString(t, "WaveletTreeString", s, symbols, sigma)
	}
}

func TestEPRString(t *testing.T) {
	for _, sigma := range []int{2, 5, 16, 17} {
		symbols := randomSymbols(1500, sigma, int64(sigma)+3)
		s, err := NewEPRStringFromSymbols(sigma, symbols)

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		checkString(t, "EPRString", s, symbols, sigma)
	}
}

func TestMultiaryWaveletString(t *testing.T) {
	for _, sigma := range []int{5, 20, 64} {
		symbols := randomSymbols(2000, sigma, int64(sigma)+4)
		s, err := NewMultiaryWaveletStringFromSymbols(sigma, 0, symbols)

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		checkString(t, "MultiaryWaveletString", s, symbols, sigma)
	}
}

func TestStringPushBackAfterFinalizePanics(t *testing.T) {
	s, err := NewMultiBitvectorString(4)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := s.PushBack(1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s.finalize()

	if err := s.PushBack(2); err != fmseek.ErrFinalized {
		t.Errorf("Expected ErrFinalized, got %v", err)
	}
}

func TestStringAlphabetOverflow(t *testing.T) {
	s, err := NewWaveletTreeString(4)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := s.PushBack(4); err != fmseek.ErrAlphabetOverflow {
		t.Errorf("Expected ErrAlphabetOverflow, got %v", err)
	}
}
