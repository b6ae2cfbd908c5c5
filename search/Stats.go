package search

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Run identifies one Engine.Search/SearchN invocation for log correlation
// and reports how many leaf cursors and matched occurrences it produced.
// Multiple goroutines running independent queries against the same index
// each get their own Run, so log lines from concurrent searches can be
// told apart without threading a request ID through every callback.
type Run struct {
	ID      uuid.UUID
	Leaves  int
	Matches int
}

// NewRun starts a fresh, uniquely identified Run.
func NewRun() *Run {
	return &Run{ID: uuid.New()}
}

// Observe records one callback invocation: one leaf cursor carrying count
// matched occurrences.
func (this *Run) Observe(count int) {
	this.Leaves++
	this.Matches += count
}

// String renders a human-readable progress line, e.g.
// "search 3f29...: 12 leaves, 1,024 matches".
func (this *Run) String() string {
	return fmt.Sprintf("search %s: %s leaves, %s matches", this.ID, humanize.Comma(int64(this.Leaves)), humanize.Comma(int64(this.Matches)))
}
