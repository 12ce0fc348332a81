// Package engine is the facade tying together pkg/board, pkg/eval and
// pkg/search/searchctl into a single game-playing instance: one position,
// one active search at a time, driven by the UCI-style option set.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

var version = build.NewVersion(0, 1, 0)

// Options are the engine-wide, UCI-style tunables. Not every field affects
// search behavior: Threads, Contempt, Skill, MultiPV and Tablebase are
// accepted and stored but otherwise no-ops, matching a single-threaded
// core that does not implement those features.
type Options struct {
	// Depth is the default search depth limit. Zero means no limit; a
	// per-Analyze call may still override it.
	Depth uint
	// Hash is the transposition table size in megabytes. Zero is clamped
	// up to 1.
	Hash uint
	// Threads is stored but always enforced as 1.
	Threads uint
	// Contempt, in centipawns, is accepted but unused by this core.
	Contempt int
	// Skill, if set, is accepted but unused by this core.
	Skill uint
	// MultiPV is accepted; values above 1 are stored but the search still
	// returns a single principal variation.
	MultiPV uint
	// Tablebase is accepted but unused: no tablebase probing is implemented.
	Tablebase bool
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%d, hash=%dMB, threads=%d, contempt=%d, skill=%d, multipv=%d, tb=%v}",
		o.Depth, o.Hash, o.Threads, o.Contempt, o.Skill, o.MultiPV, o.Tablebase)
}

// clamp enforces the valid minimums spec'd for out-of-range options: a
// zero hash size is clamped up to 1MB and a zero thread count to 1,
// rather than rejected.
func (o Options) clamp() Options {
	if o.Hash == 0 {
		o.Hash = 1
	}
	if o.Threads == 0 {
		o.Threads = 1
	}
	return o
}

// Engine encapsulates one game: its current position, move history, and at
// most one active search.
type Engine struct {
	name, author string

	launcher searchctl.Launcher
	factory  search.TranspositionTableFactory
	opts     Options

	b         *board.Board
	tt        search.TranspositionTable
	ev        eval.Evaluator
	active    searchctl.Handle
	analyzing atomic.Bool
	mu        sync.Mutex
}

// IsAnalyzing reports whether a search is active, without taking the
// engine's lock: callers polling from a UI loop can check this cheaply.
func (e *Engine) IsAnalyzing() bool {
	return e.analyzing.Load()
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithTable overrides the transposition table factory used when Hash > 0.
func WithTable(factory search.TranspositionTableFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithOptions sets the engine's initial runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New constructs an Engine at the standard starting position.
func New(ctx context.Context, name, author string, root search.Search, opts ...Option) *Engine {
	e := &Engine{
		name:     name,
		author:   author,
		launcher: &searchctl.Iterative{Root: root},
		factory:  search.NewTranspositionTable,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.opts = e.opts.clamp()

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "initialized engine %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine's name and version, UCI "id name" style.
func (e *Engine) Name() string {
	return fmt.Sprintf("%s %s", e.name, version)
}

// Author returns the engine's author, UCI "id author" style.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetOptions(ctx context.Context, opts Options) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts = opts.clamp()
	if e.opts.Hash > 0 {
		e.tt = e.factory(uint64(e.opts.Hash) << 20)
	} else {
		e.tt = search.NoTranspositionTable{}
	}
	logw.Infof(ctx, "set options %v", e.opts)
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position())
}

// Reset resets the engine to the position described by the given FEN string.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "reset %v, depth=%d, hash=%dMB", position, e.opts.Depth, e.opts.Hash)

	e.haltSearchIfActive(ctx)

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.b = board.NewBoard(pos)

	e.tt = search.NoTranspositionTable{}
	if e.opts.Hash > 0 {
		e.tt = e.factory(uint64(e.opts.Hash) << 20)
	}
	e.ev = eval.NewStandard()

	logw.Infof(ctx, "new board: %v", e.b.Position())
	return nil
}

// Move plays the given algebraic move (e.g. "e2e4", "e7e8q") as the side to
// move, typically the opponent's reply.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActive(ctx)

	from, to, promo, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", move, err)
	}

	m, err := board.ResolveMove(e.b.Position(), from, to, promo)
	if err != nil {
		return fmt.Errorf("illegal move %q: %w", move, err)
	}

	e.b.Push(m)
	logw.Infof(ctx, "move %v: %v", m, e.b.Position())
	return nil
}

// TakeBack undoes the most recently played move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActive(ctx)

	if e.b.Len() == 0 {
		return fmt.Errorf("no move to take back")
	}
	m := e.b.Pop()
	logw.Infof(ctx, "takeback %v", m)
	return nil
}

// Analyze starts a new search on a forked copy of the current position.
// Only one search may be active at a time; callers must Halt a prior
// search before starting another.
func (e *Engine) Analyze(ctx context.Context, opt searchctl.Options) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	if _, ok := opt.DepthLimit.V(); !ok && e.opts.Depth > 0 {
		opt.DepthLimit = lang.Some(e.opts.Depth)
	}

	logw.Infof(ctx, "analyze %v, opt=%v", e.b.Position(), opt)

	handle, out := e.launcher.Launch(ctx, e.b.Fork(), e.tt, e.ev, opt)
	e.active = handle
	e.analyzing.Store(true)
	return out, nil
}

// Halt stops the active search and returns its last principal variation.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (search.PV, bool) {
	if e.active == nil {
		return search.PV{}, false
	}
	pv := e.active.Halt()
	logw.Infof(ctx, "search halted: %v", pv)
	e.active = nil
	e.analyzing.Store(false)
	return pv, true
}
