package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// NominalValue is the conventional centipawn value of a piece type. The king
// has no material value: it is never captured.
func NominalValue(pt board.PieceType) Score {
	switch pt {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// NominalGain is the nominal material gain realized by playing m, ignoring
// recapture: the value of whatever is captured, plus the value gained by a
// promotion (the promoted piece minus the pawn it replaces).
func NominalGain(m board.Move, captured board.PieceType) Score {
	var gain Score
	if m.IsCapture() {
		if m.IsEnPassant() {
			gain += NominalValue(board.Pawn)
		} else {
			gain += NominalValue(captured)
		}
	}
	if m.IsPromotion() {
		gain += NominalValue(m.PromotionPiece()) - NominalValue(board.Pawn)
	}
	return gain
}

// Material evaluates the raw material balance, White minus Black.
type Material struct{}

func (Material) Evaluate(pos *board.Position) Score {
	var s Score
	for pt := board.Pawn; pt <= board.Queen; pt++ {
		diff := pos.Piece(board.White, pt).PopCount() - pos.Piece(board.Black, pt).PopCount()
		s += Score(diff) * NominalValue(pt)
	}
	return s
}
