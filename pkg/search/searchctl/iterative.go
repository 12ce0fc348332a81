package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

// Iterative is a Launcher that repeatedly searches deeper, one ply at a
// time, reporting each completed depth's PV before starting the next.
type Iterative struct {
	Root search.Search
}

func (it *Iterative) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, ev eval.Evaluator, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, it.Root, b, tt, ev, opt, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	mu sync.Mutex
	pv search.PV
}

func (h *handle) process(ctx context.Context, root search.Search, b *board.Board, tt search.TranspositionTable, ev eval.Evaluator, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	turn := b.Position().Turn()
	soft, useSoft := enforceTimeControl(ctx, h, opt.TimeControl, turn)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	stopped := atomic.NewBool(false)
	go func() {
		<-wctx.Done()
		stopped.Store(true)
	}()

	limit := search.Limit{}
	if n, ok := opt.NodeLimit.V(); ok {
		limit.Nodes = n
	}

	began := time.Now()
	depth := 1
	for !h.quit.IsClosed() {
		start := time.Now()

		sctx := search.NewContext(tt, ev, limit, stopped)
		nodes, score, moves, err := root.Search(sctx, b, depth)
		if err != nil {
			if err == search.ErrHalted {
				return
			}
			logw.Errorf(ctx, "search failed on %v at depth=%d: %v", b.Position(), depth, err)
			return
		}

		pv := search.PV{
			Depth: depth,
			Nodes: nodes,
			Score: score,
			Moves: moves,
			Time:  time.Since(start),
		}

		logw.Debugf(ctx, "searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()

		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return // reached the requested max depth
		}
		if n, ok := opt.NodeLimit.V(); ok && nodes >= n {
			return // node budget used up within this depth
		}
		if eval.IsMateScore(score) && eval.PliesToMate(score) <= depth {
			return // forced mate found within a full-width search; exact
		}
		if useSoft && soft < time.Since(began) {
			return // exceeded the soft time budget; do not start a deeper iteration
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
