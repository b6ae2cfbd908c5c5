/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package suffixarray

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/sgssgene-go/fmseek"
)

func referenceSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)

	for i := range sa {
		sa[i] = i
	}

	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(text[sa[a]:], text[sa[b]:]) < 0
	})

	return sa
}

func randomText(n, sigma int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	text := make([]byte, n)

	for i := range text {
		text[i] = byte(r.Intn(sigma))
	}

	return text
}

func checkSuffixArray(t *testing.T, name string, text []byte) {
	want := referenceSuffixArray(text)
	sigma := 0

	for _, b := range text {
		if int(b)+1 > sigma {
			sigma = int(b) + 1
		}
	}

	if sigma == 0 {
		sigma = 1
	}

	sa, err := Build(text, sigma, 1)

	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}

	if sa.Len() != len(want) {
		t.Fatalf("%s: expected length %d, got %d", name, len(want), sa.Len())
	}

	for i, w := range want {
		if got := sa.At(i); got != int64(w) {
			t.Errorf("%s: sa[%d]: expected %d, got %d", name, i, w, got)
		}
	}
}

func TestBuildSuffixArraySmallTexts(t *testing.T) {
	cases := []string{
		"banana",
		"mississippi",
		"aaaaaaaaaa",
		"abcabcabcabc",
		"a",
		"ab",
		"ba",
		"abracadabra",
	}

	for _, c := range cases {
		checkSuffixArray(t, c, []byte(c))
	}
}

func TestBuildSuffixArrayRandom(t *testing.T) {
	for _, sigma := range []int{1, 2, 4, 5, 256} {
		text := randomText(600, sigma, int64(sigma)+7)
		checkSuffixArray(t, "random", text)
	}
}

func TestBuildSuffixArrayEmpty(t *testing.T) {
	sa, err := Build(nil, 4, 1)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sa.Len() != 0 {
		t.Errorf("Expected empty suffix array, got length %d", sa.Len())
	}
}

func TestBuildSuffixArrayAlphabetOverflow(t *testing.T) {
	_, err := Build([]byte{0, 1, 5}, 4, 1)

	if err != fmseek.ErrAlphabetOverflow {
		t.Errorf("Expected ErrAlphabetOverflow, got %v", err)
	}
}

func TestBuildSuffixArrayInvalidSigma(t *testing.T) {
	if _, err := Build([]byte{0}, 0, 1); err == nil {
		t.Error("Expected error for sigma=0")
	}

	if _, err := Build([]byte{0}, 300, 1); err == nil {
		t.Error("Expected error for sigma > MaxAlphabetSize")
	}
}

func referenceBWT(text []byte) ([]byte, int) {
	sa := referenceSuffixArray(text)
	n := len(text)
	bwt := make([]byte, n)
	pidx := 0

	for i, p := range sa {
		if p == 0 {
			bwt[i] = text[n-1]
			pidx = i
		} else {
			bwt[i] = text[p-1]
		}
	}

	return bwt, pidx
}

func checkBWT(t *testing.T, name string, text []byte, sigma int) {
	wantBWT, wantPidx := referenceBWT(text)
	bwt, pidx, err := BuildBWT(text, sigma)

	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}

	if pidx != wantPidx {
		t.Errorf("%s: primary index: expected %d, got %d", name, wantPidx, pidx)
	}

	if !bytes.Equal(bwt, wantBWT) {
		t.Errorf("%s: bwt: expected %v, got %v", name, wantBWT, bwt)
	}
}

func TestBuildBWT(t *testing.T) {
	cases := []struct {
		text  string
		sigma int
	}{
		{"banana", 256},
		{"mississippi", 256},
		{"abracadabra", 256},
		{"aaaaaaaaaa", 256},
	}

	for _, c := range cases {
		checkBWT(t, c.text, []byte(c.text), c.sigma)
	}

	for _, sigma := range []int{2, 4, 5, 256} {
		text := randomText(500, sigma, int64(sigma)+11)
		checkBWT(t, "random", text, sigma)
	}
}

func TestBuildBWTEmpty(t *testing.T) {
	bwt, pidx, err := BuildBWT(nil, 4)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if bwt != nil || pidx != 0 {
		t.Errorf("Expected empty BWT, got %v, %d", bwt, pidx)
	}
}
