package search

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

// quiescence extends the search at leaf nodes through captures and
// promotions only, to
// avoid the horizon effect of evaluating a position mid-exchange. Returns
// a score from the side-to-move's point of view.
func quiescence(sctx *Context, b *board.Board, alpha, beta eval.Score, ply int) eval.Score {
	sctx.Nodes++

	standPat := eval.Relative(b.Position(), sctx.Eval.Evaluate(b.Position()))
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	pos := b.Position()
	all := board.GenerateMoves(pos)
	var captures board.MoveList
	for i := 0; i < all.Len(); i++ {
		if m := all.At(i); m.IsCapture() || m.IsPromotion() {
			captures.Add(m)
		}
	}
	orderMoves(pos, &captures, board.NoMove, ply, sctx.Killers, sctx.History)

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		if m.IsCapture() && StaticExchangeEvaluation(pos, m) < 0 {
			continue // losing capture: not worth exploring in quiescence
		}

		b.Push(m)
		score := -quiescence(sctx, b, -beta, -alpha, ply+1)
		b.Pop()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
