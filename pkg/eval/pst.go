package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// Piece-square tables, White's perspective, indexed a1..h8 (matching
// board.Square numbering directly: index = rank*8+file). Black's value for
// a square is read from the vertically mirrored square. Values are in
// centipawns and added on top of NominalValue. Adapted from the commonly
// published "simplified evaluation" tables.
var (
	pawnPST = [64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = [64]Score{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPST = [64]Score{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPST = [64]Score{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenPST = [64]Score{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMidgamePST = [64]Score{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	kingEndgamePST = [64]Score{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	}
)

func mirror(sq board.Square) board.Square {
	return board.NewSquare(sq.File(), board.Rank(7-int(sq.Rank())))
}

func pstValue(table *[64]Score, c board.Color, sq board.Square) Score {
	if c == board.Black {
		sq = mirror(sq)
	}
	return table[sq]
}

// PieceSquare scores piece placement, White minus Black, blended between
// the midgame and endgame king tables by the current game phase.
type PieceSquare struct{}

func (PieceSquare) Evaluate(pos *board.Position) Score {
	phase := Phase(pos)
	var s Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		sign := Score(1)
		if c == board.Black {
			sign = -1
		}
		s += sign * pieceSquareSide(pos, c, phase)
	}
	return s
}

func pieceSquareSide(pos *board.Position, c board.Color, phase int) Score {
	var s Score
	s += sumPST(pos, c, board.Pawn, &pawnPST)
	s += sumPST(pos, c, board.Knight, &knightPST)
	s += sumPST(pos, c, board.Bishop, &bishopPST)
	s += sumPST(pos, c, board.Rook, &rookPST)
	s += sumPST(pos, c, board.Queen, &queenPST)

	king := pos.Piece(c, board.King)
	if king != 0 {
		sq := king.LSB()
		mid := pstValue(&kingMidgamePST, c, sq)
		end := pstValue(&kingEndgamePST, c, sq)
		s += Interpolate(phase, mid, end)
	}
	return s
}

func sumPST(pos *board.Position, c board.Color, pt board.PieceType, table *[64]Score) Score {
	var s Score
	bb := pos.Piece(c, pt)
	for bb != 0 {
		var sq board.Square
		sq, bb = bb.PopLSB()
		s += pstValue(table, c, sq)
	}
	return s
}
