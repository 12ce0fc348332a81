package search

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

// StaticExchangeEvaluation estimates the material outcome of a capture
// sequence on m.To, without actually making any moves: it replays the
// exchange of captures on that square, always recapturing with the least
// valuable attacker, alternating sides, and returns the net material gain
// for the side playing m. Used to prune clearly losing captures in
// quiescence search.
func StaticExchangeEvaluation(pos *board.Position, m board.Move) eval.Score {
	if !m.IsCapture() {
		return 0
	}

	captureSq := m.To
	if m.IsEnPassant() {
		if pos.Turn() == board.White {
			captureSq = m.To - 8
		} else {
			captureSq = m.To + 8
		}
	}

	_, target, ok := pos.At(captureSq)
	if !ok {
		return 0
	}

	_, attackerType, _ := pos.At(m.From)
	if m.IsPromotion() {
		attackerType = m.PromotionPiece()
	}

	occ := pos.All() &^ board.BitMask(m.From)
	if m.IsEnPassant() {
		occ &^= board.BitMask(captureSq)
	}
	occ |= board.BitMask(m.To)

	gains := make([]eval.Score, 0, 32)
	gains = append(gains, eval.NominalValue(target))

	side := pos.Turn().Opponent()
	value := eval.NominalValue(attackerType)

	for {
		attackers := eval.AttackersTo(pos, m.To, occ) & occ
		sq, pt, ok := eval.LeastValuableAttacker(pos, attackers, side)
		if !ok {
			break
		}

		gains = append(gains, value-gains[len(gains)-1])
		value = eval.NominalValue(pt)

		occ &^= board.BitMask(sq)
		side = side.Opponent()
	}

	for i := len(gains) - 2; i >= 0; i-- {
		if -gains[i+1] < gains[i] {
			gains[i] = -gains[i+1]
		}
	}
	return gains[0]
}
