package board

// UndoRecord carries everything MakeMove destroys irreversibly, so that
// UnmakeMove can restore the exact prior Position without recomputation.
// The caller owns the UndoRecord's lifetime; it is typically kept on a
// stack alongside the search's ply-indexed move stack.
type UndoRecord struct {
	Move      Move
	Mover     Color
	Captured  PieceType // NoPieceType if the move was not a capture
	CaptureSq Square     // NoSquare if not a capture; differs from Move.To only for en-passant captures

	Castling  Castling // rights before the move
	EnPassant Square   // en-passant target before the move
	Halfmove  int      // halfmove clock before the move
	Hash      ZobristHash
}

// rookCastlingRight returns the single castling right forfeited when a rook
// departs (or is captured on) the given corner square, or NoCastling for any
// other square.
func rookCastlingRight(sq Square) Castling {
	switch sq {
	case A1:
		return WhiteQueenSide
	case H1:
		return WhiteKingSide
	case A8:
		return BlackQueenSide
	case H8:
		return BlackKingSide
	default:
		return NoCastling
	}
}

// MakeMove applies m to the position in place and returns an UndoRecord that
// UnmakeMove can later use to reverse it. The move is assumed to be legal;
// callers must generate it via the move generator (movegen.go) or otherwise
// validate it first. Maintains the Zobrist hash incrementally.
func (p *Position) MakeMove(m Move) UndoRecord {
	us, them := p.turn, p.turn.Opponent()

	_, pt, ok := p.At(m.From)
	if !ok {
		panic("MakeMove: no piece on from-square")
	}

	undo := UndoRecord{
		Move:      m,
		Mover:     us,
		Captured:  NoPieceType,
		CaptureSq: NoSquare,
		Castling:  p.castling,
		EnPassant: p.enpassant,
		Halfmove:  p.halfmove,
		Hash:      p.hash,
	}

	p.hash ^= enpassantKey(p.enpassant)

	captureSq := m.To
	if m.IsEnPassant() {
		if us == White {
			captureSq = m.To - 8
		} else {
			captureSq = m.To + 8
		}
	}
	if m.IsCapture() {
		_, capt, ok := p.At(captureSq)
		if !ok {
			panic("MakeMove: capture flag set but capture square is empty")
		}
		undo.Captured = capt
		undo.CaptureSq = captureSq
		p.remove(captureSq, them, capt)
		p.hash ^= pieceKey(them, capt, captureSq)
	}

	p.remove(m.From, us, pt)
	p.hash ^= pieceKey(us, pt, m.From)

	destPt := pt
	if m.IsPromotion() {
		destPt = m.PromotionPiece()
	}
	p.place(m.To, us, destPt)
	p.hash ^= pieceKey(us, destPt, m.To)

	if m.IsCastle() {
		rookFrom, rookTo := castlingRookSquares(us, m.Flags)
		p.remove(rookFrom, us, Rook)
		p.hash ^= pieceKey(us, Rook, rookFrom)
		p.place(rookTo, us, Rook)
		p.hash ^= pieceKey(us, Rook, rookTo)
	}

	p.hash ^= castlingKey(p.castling)
	if pt == King {
		p.castling &^= KingSide(us) | QueenSide(us)
	}
	if pt == Rook {
		p.castling &^= rookCastlingRight(m.From)
	}
	if m.IsCapture() {
		p.castling &^= rookCastlingRight(captureSq)
	}
	p.hash ^= castlingKey(p.castling)

	if m.IsDoublePawnPush() {
		if us == White {
			p.enpassant = m.From + 8
		} else {
			p.enpassant = m.From - 8
		}
	} else {
		p.enpassant = NoSquare
	}
	p.hash ^= enpassantKey(p.enpassant)

	if pt == Pawn || m.IsCapture() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == Black {
		p.fullmove++
	}

	p.hash ^= turnKey(p.turn)
	p.turn = them
	p.hash ^= turnKey(p.turn)

	return undo
}

// UnmakeMove reverses the effect of MakeMove, restoring the Position to
// exactly the state it was in before the move (including the Zobrist hash,
// restored verbatim rather than re-derived).
func (p *Position) UnmakeMove(u UndoRecord) {
	m := u.Move
	us, them := u.Mover, u.Mover.Opponent()

	p.turn = us
	p.castling = u.Castling
	p.enpassant = u.EnPassant
	p.halfmove = u.Halfmove
	p.hash = u.Hash
	if us == Black {
		p.fullmove--
	}

	_, destPt, ok := p.At(m.To)
	if !ok {
		panic("UnmakeMove: no piece on to-square")
	}
	p.remove(m.To, us, destPt)

	srcPt := destPt
	if m.IsPromotion() {
		srcPt = Pawn
	}
	p.place(m.From, us, srcPt)

	if m.IsCastle() {
		rookFrom, rookTo := castlingRookSquares(us, m.Flags)
		p.remove(rookTo, us, Rook)
		p.place(rookFrom, us, Rook)
	}

	if u.Captured != NoPieceType {
		p.place(u.CaptureSq, them, u.Captured)
	}
}

// MakeNullMove passes the turn without moving a piece, used by search's
// null-move pruning heuristic. Returns the state needed to reverse it via
// UnmakeNullMove; never legal as an actual game move (a side may not pass
// while in check, which callers must verify before invoking this).
func (p *Position) MakeNullMove() (prevEnPassant Square, prevHash ZobristHash) {
	prevEnPassant = p.enpassant
	prevHash = p.hash

	p.hash ^= enpassantKey(p.enpassant)
	p.enpassant = NoSquare
	p.hash ^= enpassantKey(p.enpassant)

	p.hash ^= turnKey(p.turn)
	p.turn = p.turn.Opponent()
	p.hash ^= turnKey(p.turn)

	return prevEnPassant, prevHash
}

// UnmakeNullMove reverses MakeNullMove.
func (p *Position) UnmakeNullMove(prevEnPassant Square, prevHash ZobristHash) {
	p.turn = p.turn.Opponent()
	p.enpassant = prevEnPassant
	p.hash = prevHash
}

// castlingRookSquares returns the rook's from/to squares for a castling move.
func castlingRookSquares(us Color, flag MoveFlag) (from, to Square) {
	switch flag {
	case KingSideCastle:
		if us == White {
			return H1, F1
		}
		return H8, F8
	case QueenSideCastle:
		if us == White {
			return A1, D1
		}
		return A8, D8
	default:
		panic("castlingRookSquares: not a castling move")
	}
}
