package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// mobilityWeight scales how much one legal destination square is worth per
// piece type; knights and bishops benefit most from open lines early.
var mobilityWeight = [...]Score{
	board.Knight: 4,
	board.Bishop: 3,
	board.Rook:   2,
	board.Queen:  1,
}

// Mobility rewards the number of squares a side's pieces attack (occupied
// by neither the mover itself nor, for pawns/king, excluded entirely), a
// cheap proxy for piece activity.
type Mobility struct{}

func (Mobility) Evaluate(pos *board.Position) Score {
	return mobilitySide(pos, board.White) - mobilitySide(pos, board.Black)
}

func mobilitySide(pos *board.Position, c board.Color) Score {
	own := pos.Occupancy(c)
	all := pos.All()

	var s Score
	for _, pt := range [...]board.PieceType{board.Knight, board.Bishop, board.Rook, board.Queen} {
		bb := pos.Piece(c, pt)
		for bb != 0 {
			var sq board.Square
			sq, bb = bb.PopLSB()
			targets := board.Attackboard(all, sq, pt) &^ own
			s += Score(targets.PopCount()) * mobilityWeight[pt]
		}
	}
	return s
}
