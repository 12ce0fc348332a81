package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// phaseWeight is each piece type's contribution to the game-phase count,
// used to interpolate between opening/middlegame and endgame evaluation
// terms (PSTs notably score very differently once the board empties out).
var phaseWeight = [...]int{
	board.Pawn:   0,
	board.Knight: 1,
	board.Bishop: 1,
	board.Rook:   2,
	board.Queen:  4,
}

// MaxPhase is the phase value of a full starting set of minor/major pieces:
// 4 knights + 4 bishops + 4 rooks + 2 queens = 4+4+8+8 = 24.
const MaxPhase = 4*1 + 4*1 + 4*2 + 2*4

// Phase returns the current game phase in [0, MaxPhase]: MaxPhase is the
// opening/middlegame (all minor/major pieces on the board), 0 is a bare
// pawn-and-king endgame.
func Phase(pos *board.Position) int {
	phase := 0
	for pt := board.Knight; pt <= board.Queen; pt++ {
		count := pos.Piece(board.White, pt).PopCount() + pos.Piece(board.Black, pt).PopCount()
		phase += count * phaseWeight[pt]
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

// Interpolate blends an opening-phase score and an endgame-phase score
// according to phase (MaxPhase = pure opening term, 0 = pure endgame term).
func Interpolate(phase int, opening, endgame Score) Score {
	return (opening*Score(phase) + endgame*Score(MaxPhase-phase)) / Score(MaxPhase)
}
