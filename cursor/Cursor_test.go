package cursor

import (
	"bytes"
	"testing"

	"github.com/sgssgene-go/fmseek/fmindex"
)

func bruteForce(texts [][]byte, pattern []byte) map[Hit]bool {
	out := map[Hit]bool{}

	for seqID, t := range texts {
		for pos := 0; pos+len(pattern) <= len(t); pos++ {
			if bytes.Equal(t[pos:pos+len(pattern)], pattern) {
				out[Hit{SequenceID: seqID, Position: pos}] = true
			}
		}
	}

	return out
}

func hitSet(hits []Hit) map[Hit]bool {
	out := map[Hit]bool{}

	for _, h := range hits {
		out[h] = true
	}

	return out
}

func TestFMIndexCursorExtendLeftFindsPattern(t *testing.T) {
	texts := [][]byte{
		{1, 2, 1, 2, 1, 3},
		{2, 2, 1, 3, 1},
	}

	idx, err := fmindex.NewFMIndex(texts, 4, 4, 1, true)

	if err != nil {
		t.Fatalf("NewFMIndex failed: %v", err)
	}

	pattern := []byte{2, 1}

	cur := NewFMIndexCursor(idx)

	for i := len(pattern) - 1; i >= 0; i-- {
		cur = cur.ExtendLeft(int(pattern[i]))

		if cur.Empty() {
			t.Fatalf("cursor unexpectedly empty after extending with symbol %d", pattern[i])
		}
	}

	got := hitSet(cur.Locate())
	want := bruteForce(texts, pattern)

	if len(got) != len(want) {
		t.Fatalf("got %d hits, want %d (got=%v want=%v)", len(got), len(want), got, want)
	}

	for h := range want {
		if !got[h] {
			t.Fatalf("missing expected hit %v", h)
		}
	}
}

func TestFMIndexCursorExtendLeftAllPartitionsByFirstSymbol(t *testing.T) {
	texts := [][]byte{{1, 2, 3, 1, 2, 3, 1}}

	idx, err := fmindex.NewFMIndex(texts, 4, 2, 1, true)

	if err != nil {
		t.Fatalf("NewFMIndex failed: %v", err)
	}

	cur := NewFMIndexCursor(idx)
	children := cur.ExtendLeftAll()

	total := 0

	for _, c := range children {
		total += c.Count()
	}

	if total != cur.Count() {
		t.Fatalf("children counts sum to %d, want %d", total, cur.Count())
	}
}

func TestReverseFMIndexCursorExtendRightFindsPattern(t *testing.T) {
	texts := [][]byte{{1, 2, 3, 1, 2, 1}}

	idx, err := fmindex.NewReverseFMIndex(texts, 4, 2, 1, true)

	if err != nil {
		t.Fatalf("NewReverseFMIndex failed: %v", err)
	}

	pattern := []byte{1, 2}
	cur := NewReverseFMIndexCursor(idx)

	for _, symb := range pattern {
		cur = cur.ExtendRight(int(symb))

		if cur.Empty() {
			t.Fatalf("cursor unexpectedly empty after extending with symbol %d", symb)
		}
	}

	if cur.QueryLength() != len(pattern) {
		t.Fatalf("query length = %d, want %d", cur.QueryLength(), len(pattern))
	}

	got := hitSet(cur.Locate())
	want := bruteForce(texts, pattern)

	if len(got) != len(want) {
		t.Fatalf("got %d hits, want %d (got=%v want=%v)", len(got), len(want), got, want)
	}
}

func TestBiCursorExtendsBothDirections(t *testing.T) {
	texts := [][]byte{{1, 2, 3, 1, 2, 1, 3}}

	idx, err := fmindex.NewBiFMIndex(texts, 4, 2, 1, true)

	if err != nil {
		t.Fatalf("NewBiFMIndex failed: %v", err)
	}

	cur := NewBiCursor(idx)
	cur = cur.ExtendRight(1)
	cur = cur.ExtendRight(2)
	cur = cur.ExtendLeft(1)

	if cur.Empty() {
		t.Fatalf("cursor unexpectedly empty")
	}

	pattern := []byte{1, 1, 2}
	got := hitSet(cur.Locate())
	want := bruteForce(texts, pattern)

	if len(got) != len(want) {
		t.Fatalf("got %d hits, want %d (got=%v want=%v)", len(got), len(want), got, want)
	}
}

func TestLeftCursorMatchesBiCursorLeftExtension(t *testing.T) {
	texts := [][]byte{{1, 2, 3, 1, 2, 1, 3}}

	idx, err := fmindex.NewBiFMIndex(texts, 4, 2, 1, true)

	if err != nil {
		t.Fatalf("NewBiFMIndex failed: %v", err)
	}

	bi := NewBiCursor(idx)
	bi = bi.ExtendLeft(1)
	bi = bi.ExtendLeft(2)

	left := NewLeftCursor(idx)
	left = left.ExtendLeft(1)
	left = left.ExtendLeft(2)

	if bi.Count() != left.Count() {
		t.Fatalf("BiCursor count %d != LeftCursor count %d", bi.Count(), left.Count())
	}

	asLeft := NewBiCursor(idx).ExtendLeft(1).ExtendLeft(2).AsLeftCursor()

	if asLeft.Count() != left.Count() {
		t.Fatalf("AsLeftCursor count %d != LeftCursor count %d", asLeft.Count(), left.Count())
	}
}

func TestMirroredCursorExtendsBothDirectionsOnBinaryAlphabet(t *testing.T) {
	texts := [][]byte{{1, 2, 1, 2, 1, 2, 1}}

	idx, err := fmindex.NewFMIndex(texts, 3, 2, 1, true)

	if err != nil {
		t.Fatalf("NewFMIndex failed: %v", err)
	}

	cur := NewMirroredCursor(idx)
	cur = cur.ExtendRight(1)
	cur = cur.ExtendRight(2)
	cur = cur.ExtendLeft(1)

	if cur.Empty() {
		t.Fatalf("cursor unexpectedly empty")
	}

	pattern := []byte{1, 1, 2}
	got := hitSet(cur.Locate())
	want := bruteForce(texts, pattern)

	if len(got) != len(want) {
		t.Fatalf("got %d hits, want %d (got=%v want=%v)", len(got), len(want), got, want)
	}
}
