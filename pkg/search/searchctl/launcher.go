package searchctl

import (
	"context"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/search"
)

// Launcher manages searches running against forked boards.
type Launcher interface {
	// Launch starts a new search from b's current position. It expects an
	// exclusive (forked) board and returns a PV channel fed with each
	// iteratively deeper depth's result. The channel closes when the search
	// is exhausted or halted.
	Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, ev eval.Evaluator, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the owner of a launched search manage it. The caller is
// expected to spin off searches against forked boards and halt/abandon them
// once no longer needed; that keeps stopping conditions and
// re-synchronization trivial.
type Handle interface {
	// Halt stops the search, if still running, and returns the last
	// principal variation found. Idempotent.
	Halt() search.PV
}
