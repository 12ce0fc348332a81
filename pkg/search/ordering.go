package search

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

const maxPly = 128

// KillerTable remembers up to two quiet moves per ply that caused a beta
// cutoff elsewhere in the tree, on the heuristic that a move refuting one
// line often refutes a sibling line too.
type KillerTable struct {
	killers [maxPly][2]board.Move
}

func NewKillerTable() *KillerTable {
	return &KillerTable{}
}

// Add records m as a killer at ply, unless it is already the top killer.
func (k *KillerTable) Add(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly || m.IsCapture() {
		return
	}
	if k.killers[ply][0] == m {
		return
	}
	k.killers[ply][1] = k.killers[ply][0]
	k.killers[ply][0] = m
}

// IsKiller reports whether m is a recorded killer at ply, and its rank
// (0 = most recent).
func (k *KillerTable) IsKiller(ply int, m board.Move) (int, bool) {
	if ply < 0 || ply >= maxPly {
		return 0, false
	}
	for i, km := range k.killers[ply] {
		if km == m && !m.IsZero() {
			return i, true
		}
	}
	return 0, false
}

// HistoryTable scores quiet moves by how often they have caused a cutoff
// across the whole search, indexed by (color, from, to) regardless of ply.
type HistoryTable struct {
	scores [board.NumColors][64][64]int32
}

func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

// Add rewards a quiet move that caused a beta cutoff, weighted by depth so
// cutoffs deeper in the tree count for more.
func (h *HistoryTable) Add(c board.Color, m board.Move, depth int) {
	if m.IsCapture() {
		return
	}
	h.scores[c][m.From][m.To] += int32(depth * depth)
}

func (h *HistoryTable) Score(c board.Color, m board.Move) int32 {
	return h.scores[c][m.From][m.To]
}

// orderMoves assigns each move a search priority: TT/PV move first, then
// captures by MVV-LVA, then non-capturing promotions, killers, and the
// remaining quiet moves by history score. Captures are not split by SEE: a
// losing capture still sorts ahead of every non-capture.
func orderMoves(pos *board.Position, moves *board.MoveList, ttMove board.Move, ply int, killers *KillerTable, history *HistoryTable) {
	priority := func(m board.Move) board.Priority {
		switch {
		case m.IsCapture():
			_, captured, ok := pos.At(m.To)
			if m.IsEnPassant() {
				captured, ok = board.Pawn, true
			}
			if !ok {
				return 0
			}
			gain := eval.NominalGain(m, captured)
			_, attacker, _ := pos.At(m.From)
			return board.Priority(100000 + 10*int32(gain) - int32(attacker))
		case m.IsPromotion():
			return board.Priority(50000 + int32(eval.NominalValue(m.PromotionPiece())))
		default:
			if rank, ok := killers.IsKiller(ply, m); ok {
				return board.Priority(40000 - int32(rank))
			}
			return board.Priority(history.Score(pos.Turn(), m))
		}
	}
	moves.SortByPriority(board.First(ttMove, priority))
}
