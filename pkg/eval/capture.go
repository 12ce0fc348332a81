package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// AttackersTo returns every piece, of either color, that attacks sq given
// occ as the board occupancy. occ need not equal pos.All(): static exchange
// evaluation (pkg/search) recomputes this after hypothetically removing
// pieces from the exchange, to reveal X-ray attackers behind them.
func AttackersTo(pos *board.Position, sq board.Square, occ board.Bitboard) board.Bitboard {
	var attackers board.Bitboard

	attackers |= board.KnightAttackboard(sq) & (pos.Piece(board.White, board.Knight) | pos.Piece(board.Black, board.Knight))
	attackers |= board.KingAttackboard(sq) & (pos.Piece(board.White, board.King) | pos.Piece(board.Black, board.King))

	bishops := board.BishopAttackboard(sq, occ)
	attackers |= bishops & (pos.Piece(board.White, board.Bishop) | pos.Piece(board.Black, board.Bishop) |
		pos.Piece(board.White, board.Queen) | pos.Piece(board.Black, board.Queen))

	rooks := board.RookAttackboard(sq, occ)
	attackers |= rooks & (pos.Piece(board.White, board.Rook) | pos.Piece(board.Black, board.Rook) |
		pos.Piece(board.White, board.Queen) | pos.Piece(board.Black, board.Queen))

	// A white pawn attacks sq from the south-east/south-west of sq, which is
	// exactly the set PawnAttackboard(Black, sq) describes; symmetrically
	// for black pawns attacking from the north.
	attackers |= board.PawnAttackboard(board.Black, board.BitMask(sq)) & pos.Piece(board.White, board.Pawn)
	attackers |= board.PawnAttackboard(board.White, board.BitMask(sq)) & pos.Piece(board.Black, board.Pawn)

	return attackers & occ
}

// LeastValuableAttacker returns the attacker (of the given color) in the
// attackers set with the smallest nominal value, and its piece type. Used
// by static exchange evaluation to pick the next capturer in an exchange.
func LeastValuableAttacker(pos *board.Position, attackers board.Bitboard, side board.Color) (board.Square, board.PieceType, bool) {
	own := attackers & pos.Occupancy(side)
	if own == 0 {
		return board.NoSquare, board.NoPieceType, false
	}
	for pt := board.Pawn; pt <= board.King; pt++ {
		if bb := own & pos.Piece(side, pt); bb != 0 {
			return bb.LSB(), pt, true
		}
	}
	panic("LeastValuableAttacker: occupied but no piece type matched")
}
