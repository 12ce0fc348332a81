package eval

import "github.com/kestrelchess/kestrel/pkg/board"

const (
	missingShieldPenalty Score = -12
	openFilePenalty      Score = -18
)

// KingSafety penalizes a king with a broken pawn shield or an open file
// next to it, scaled down as the game phase approaches the endgame (where
// king activity matters more than shelter).
type KingSafety struct{}

func (KingSafety) Evaluate(pos *board.Position) Score {
	phase := Phase(pos)
	white := kingSafetySide(pos, board.White)
	black := kingSafetySide(pos, board.Black)
	return Interpolate(phase, white-black, 0)
}

func kingSafetySide(pos *board.Position, c board.Color) Score {
	king := pos.Piece(c, board.King)
	if king == 0 {
		return 0
	}
	sq := king.LSB()
	own := pos.Piece(c, board.Pawn)

	var s Score
	shieldRank := sq.Rank() + 1
	if c == board.Black {
		shieldRank = sq.Rank() - 1
	}
	if shieldRank.IsValid() {
		for _, f := range shieldFiles(sq.File()) {
			if own&board.BitFile(f)&board.BitRank(shieldRank) == 0 {
				s += missingShieldPenalty
			}
		}
	}

	for _, f := range shieldFiles(sq.File()) {
		if pos.Piece(board.White, board.Pawn)&board.BitFile(f) == 0 &&
			pos.Piece(board.Black, board.Pawn)&board.BitFile(f) == 0 {
			s += openFilePenalty
		}
	}
	return s
}

func shieldFiles(f board.File) []board.File {
	files := []board.File{f}
	if f > board.FileA {
		files = append(files, f-1)
	}
	if f < board.FileH {
		files = append(files, f+1)
	}
	return files
}
