// Package search implements alpha-beta game tree search over pkg/board
// positions, scored by pkg/eval.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"go.uber.org/atomic"
)

// ErrHalted is returned by Search when it was asked to stop mid-search via
// Context's stop signal, rather than completing normally.
var ErrHalted = errors.New("search halted")

// PV is the principal variation found at a given depth, reported on each
// iterative-deepening step.
type PV struct {
	Depth int
	Nodes uint64
	Score eval.Score
	Moves []board.Move
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%d score=%v nodes=%d time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Moves)
}

// Limit bounds a single Search call.
type Limit struct {
	// Depth is not consulted by AlphaBeta, which takes its depth as a
	// Search argument.
	Depth int
	// Nodes, if > 0, stops the search after roughly this many nodes.
	Nodes uint64
}

// Context carries per-search mutable state threaded through the whole
// recursion: the transposition table, move-ordering heuristics, the node
// counter and the cooperative stop signal. Not safe for concurrent use by
// more than one goroutine at a time (one Context per search worker).
type Context struct {
	TT       TranspositionTable
	Eval     eval.Evaluator
	Killers  *KillerTable
	History  *HistoryTable
	Limit    Limit
	Nodes    uint64
	stopped  *atomic.Bool
}

// NewContext constructs a search Context. stopped, if non-nil, is polled
// cooperatively between nodes (set from a separate control goroutine); once
// true the search unwinds with ErrHalted.
func NewContext(tt TranspositionTable, ev eval.Evaluator, limit Limit, stopped *atomic.Bool) *Context {
	if stopped == nil {
		stopped = atomic.NewBool(false)
	}
	return &Context{
		TT:      tt,
		Eval:    ev,
		Killers: NewKillerTable(),
		History: NewHistoryTable(),
		Limit:   limit,
		stopped: stopped,
	}
}

func (c *Context) isStopped() bool {
	return c.stopped != nil && c.stopped.Load()
}

func (c *Context) nodeLimitReached() bool {
	return c.Limit.Nodes > 0 && c.Nodes >= c.Limit.Nodes
}

// Search is the interface a search root algorithm implements; AlphaBeta is
// the engine's only implementation, but the interface lets searchctl drive
// it without depending on its internals.
type Search interface {
	// Search returns the best line found by searching to the given depth
	// from b's current position.
	Search(sctx *Context, b *board.Board, depth int) (nodes uint64, score eval.Score, pv []board.Move, err error)
}
