package search

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

// AlphaBeta is a negamax alpha-beta search with transposition table
// probing, null-move pruning, late-move reductions, and a principal
// variation search re-search window. It is the engine's only Search
// implementation; searchctl drives it iteratively deeper.
type AlphaBeta struct{}

func (AlphaBeta) Search(sctx *Context, b *board.Board, depth int) (nodes uint64, score eval.Score, pv []board.Move, err error) {
	s := negamax(sctx, b, depth, -eval.Inf, eval.Inf, 0)
	if sctx.isStopped() {
		return sctx.Nodes, 0, nil, ErrHalted
	}
	return sctx.Nodes, s, extractPV(sctx, b, depth), nil
}

func hasNonPawnMaterial(pos *board.Position, c board.Color) bool {
	for pt := board.Knight; pt <= board.Queen; pt++ {
		if pos.Piece(c, pt) != 0 {
			return true
		}
	}
	return false
}

func negamax(sctx *Context, b *board.Board, depth int, alpha, beta eval.Score, ply int) eval.Score {
	if sctx.isStopped() || sctx.nodeLimitReached() {
		return eval.Draw
	}

	pos := b.Position()

	if ply > 0 {
		if result := b.Result(); result.Outcome != board.Undecided {
			if result.Outcome == board.Draw {
				return eval.Draw
			}
			return eval.MatedIn(ply)
		}
	}

	origAlpha := alpha
	var ttMove board.Move
	if entry, ok := sctx.TT.Read(pos.Hash()); ok {
		ttMove = entry.Move
		if entry.Depth >= depth {
			ttScore := scoreFromTT(entry.Score, ply)
			switch entry.Bound {
			case ExactBound:
				return ttScore
			case LowerBound:
				alpha = eval.Max(alpha, ttScore)
			case UpperBound:
				beta = eval.Min(beta, ttScore)
			}
			if alpha >= beta {
				return ttScore
			}
		}
	}

	if depth <= 0 {
		return quiescence(sctx, b, alpha, beta, ply)
	}

	sctx.Nodes++

	us := pos.Turn()
	inCheck := pos.IsChecked(us)

	// Null-move pruning: if passing the turn still leaves us comfortably
	// ahead, the real move is likely to as well, so skip deep search here.
	// Disabled in check (passing while in check is nonsensical) and in
	// pawn-only endgames (prone to zugzwang, where passing is actually
	// better than any real move).
	if !inCheck && depth >= 3 && ply > 0 && hasNonPawnMaterial(pos, us) {
		ep, hash := pos.MakeNullMove()
		score := -negamax(sctx, b, depth-1-2, -beta, -beta+1, ply+1)
		pos.UnmakeNullMove(ep, hash)

		if score >= beta && !eval.IsMateScore(score) {
			return beta
		}
	}

	moves := board.GenerateMoves(pos)
	if moves.Len() == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}
	orderMoves(pos, &moves, ttMove, ply, sctx.Killers, sctx.History)

	bestScore := -eval.Inf
	var bestMove board.Move

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		b.Push(m)

		childDepth := depth - 1
		var score eval.Score
		if i == 0 {
			score = -negamax(sctx, b, childDepth, -beta, -alpha, ply+1)
		} else {
			reduction := lateMoveReduction(i, depth, m, inCheck)
			score = -negamax(sctx, b, childDepth-reduction, -alpha-1, -alpha, ply+1)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -negamax(sctx, b, childDepth, -beta, -alpha, ply+1)
			}
		}

		b.Pop()

		if sctx.isStopped() {
			return eval.Draw
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			sctx.Killers.Add(ply, m)
			sctx.History.Add(us, m, depth)
			break
		}
	}

	bound := ExactBound
	switch {
	case bestScore <= origAlpha:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	}
	sctx.TT.Write(pos.Hash(), Entry{Bound: bound, Depth: depth, Score: scoreToTT(bestScore, ply), Move: bestMove})

	return bestScore
}

// scoreToTT adjusts a mate score from "plies from root" (how search scores
// count mate distance) to "plies from here" before storing it, so that a
// reused entry does not report a mate distance relative to the wrong node.
// Non-mate scores pass through unchanged.
func scoreToTT(s eval.Score, ply int) eval.Score {
	if !eval.IsMateScore(s) {
		return s
	}
	if s > 0 {
		return s + eval.Score(ply)
	}
	return s - eval.Score(ply)
}

// scoreFromTT reverses scoreToTT when a stored entry is read back at ply,
// converting its node-relative mate distance back to one counted from the
// root through the probing node.
func scoreFromTT(s eval.Score, ply int) eval.Score {
	if !eval.IsMateScore(s) {
		return s
	}
	if s > 0 {
		return s - eval.Score(ply)
	}
	return s + eval.Score(ply)
}

// lateMoveReduction returns how many plies less deep to search a late,
// quiet, non-critical move: the core of late move reductions (LMR).
func lateMoveReduction(moveIndex, depth int, m board.Move, inCheck bool) int {
	if moveIndex < 3 || depth < 3 || inCheck || m.IsCapture() || m.IsPromotion() {
		return 0
	}
	if moveIndex < 6 {
		return 1
	}
	return 2
}

// extractPV walks the transposition table's best-move chain from the root
// to reconstruct the principal variation found by the last search.
func extractPV(sctx *Context, b *board.Board, maxLen int) []board.Move {
	var pv []board.Move
	seen := make(map[board.ZobristHash]bool)

	for i := 0; i < maxLen; i++ {
		entry, ok := sctx.TT.Read(b.Position().Hash())
		if !ok || entry.Move.IsZero() || seen[b.Position().Hash()] {
			break
		}
		seen[b.Position().Hash()] = true

		legal := board.GenerateMoves(b.Position())
		found := false
		for j := 0; j < legal.Len(); j++ {
			if legal.At(j) == entry.Move {
				found = true
				break
			}
		}
		if !found {
			break
		}

		pv = append(pv, entry.Move)
		b.Push(entry.Move)
	}

	for range pv {
		b.Pop()
	}
	return pv
}
