package fmindex

import (
	"bytes"
	"testing"

	"github.com/sgssgene-go/fmseek/bitstream"
)

// closeableBuffer adapts a bytes.Buffer to io.WriteCloser/io.ReadCloser so it
// can back a bit stream in tests without touching the filesystem.
type closeableBuffer struct {
	*bytes.Buffer
}

func (closeableBuffer) Close() error { return nil }

func roundTripBuffer(t *testing.T, write func(*bitstream.DefaultOutputBitStream) error) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	out, err := bitstream.NewDefaultOutputBitStream(closeableBuffer{buf}, 1024)

	if err != nil {
		t.Fatalf("NewDefaultOutputBitStream failed: %v", err)
	}

	if err := write(out); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := out.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	return buf
}

func newReader(t *testing.T, buf *bytes.Buffer) *bitstream.DefaultInputBitStream {
	t.Helper()

	in, err := bitstream.NewDefaultInputBitStream(closeableBuffer{buf}, 1024)

	if err != nil {
		t.Fatalf("NewDefaultInputBitStream failed: %v", err)
	}

	return in
}

func TestFMIndexSaveLoadRoundTrip(t *testing.T) {
	texts := [][]byte{
		{1, 2, 1, 2, 1, 3},
		{2, 2, 1, 3, 1},
	}

	idx, err := NewFMIndex(texts, 4, 4, 1, true)

	if err != nil {
		t.Fatalf("NewFMIndex failed: %v", err)
	}

	buf := roundTripBuffer(t, idx.Save)

	loaded, err := LoadFMIndex(newReader(t, buf))

	if err != nil {
		t.Fatalf("LoadFMIndex failed: %v", err)
	}

	if loaded.Size() != idx.Size() {
		t.Fatalf("loaded size %d, want %d", loaded.Size(), idx.Size())
	}

	for row := 0; row < idx.Size(); row++ {
		wantSeq, wantPos := idx.Locate(row)
		gotSeq, gotPos := loaded.Locate(row)

		if gotSeq != wantSeq || gotPos != wantPos {
			t.Fatalf("row %d: got (%d, %d), want (%d, %d)", row, gotSeq, gotPos, wantSeq, wantPos)
		}
	}
}

func TestReverseFMIndexSaveLoadRoundTrip(t *testing.T) {
	texts := [][]byte{{1, 2, 3, 1, 2}}

	idx, err := NewReverseFMIndex(texts, 4, 2, 1, true)

	if err != nil {
		t.Fatalf("NewReverseFMIndex failed: %v", err)
	}

	buf := roundTripBuffer(t, idx.Save)

	loaded, err := LoadReverseFMIndex(newReader(t, buf))

	if err != nil {
		t.Fatalf("LoadReverseFMIndex failed: %v", err)
	}

	if loaded.Size() != idx.Size() {
		t.Fatalf("loaded size %d, want %d", loaded.Size(), idx.Size())
	}

	for row := 0; row < idx.Size(); row++ {
		wantSeq, wantPos := idx.Locate(row)
		gotSeq, gotPos := loaded.Locate(row)

		if gotSeq != wantSeq || gotPos != wantPos {
			t.Fatalf("row %d: got (%d, %d), want (%d, %d)", row, gotSeq, gotPos, wantSeq, wantPos)
		}
	}
}

func TestBiFMIndexSaveLoadRoundTrip(t *testing.T) {
	texts := [][]byte{{1, 2, 3, 1, 2, 1}}

	idx, err := NewBiFMIndex(texts, 4, 3, 1, true)

	if err != nil {
		t.Fatalf("NewBiFMIndex failed: %v", err)
	}

	buf := roundTripBuffer(t, idx.Save)

	loaded, err := LoadBiFMIndex(newReader(t, buf))

	if err != nil {
		t.Fatalf("LoadBiFMIndex failed: %v", err)
	}

	if loaded.BWT().Size() != idx.BWT().Size() || loaded.BWTRev().Size() != idx.BWTRev().Size() {
		t.Fatalf("loaded BWT sizes (%d, %d), want (%d, %d)",
			loaded.BWT().Size(), loaded.BWTRev().Size(), idx.BWT().Size(), idx.BWTRev().Size())
	}

	for row := 0; row < idx.Size(); row++ {
		wantSeq, wantPos := idx.Locate(row)
		gotSeq, gotPos := loaded.Locate(row)

		if gotSeq != wantSeq || gotPos != wantPos {
			t.Fatalf("row %d: got (%d, %d), want (%d, %d)", row, gotSeq, gotPos, wantSeq, wantPos)
		}
	}
}

func TestFMIndexLoadDetectsCorruptArchive(t *testing.T) {
	idx, err := NewFMIndex([][]byte{{1, 2, 1, 3}}, 4, 2, 1, true)

	if err != nil {
		t.Fatalf("NewFMIndex failed: %v", err)
	}

	buf := roundTripBuffer(t, idx.Save)
	corrupted := append([]byte(nil), buf.Bytes()...)
	corrupted[len(corrupted)-1] ^= 0xFF

	if _, err := LoadFMIndex(newReader(t, bytes.NewBuffer(corrupted))); err == nil {
		t.Fatalf("LoadFMIndex on corrupted archive unexpectedly succeeded")
	}
}
