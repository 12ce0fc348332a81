package board

import "fmt"

// GenerateMoves returns all strictly legal moves available to the side to
// move: pseudo-legal moves are generated first, then filtered by playing
// each one and rejecting it if it leaves the mover's own king in check.
// Castling's additional requirement (the king may not pass through or land
// on an attacked square) is checked at generation time, since make/unmake
// alone only verifies the king's final square.
func GenerateMoves(p *Position) MoveList {
	var pseudo MoveList
	generatePseudoLegal(p, &pseudo)

	us := p.turn
	var legal MoveList
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		undo := p.MakeMove(m)
		if !p.IsChecked(us) {
			legal.Add(m)
		}
		p.UnmakeMove(undo)
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without materializing the full list. Used for fast checkmate/
// stalemate detection.
func HasLegalMove(p *Position) bool {
	var pseudo MoveList
	generatePseudoLegal(p, &pseudo)

	us := p.turn
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		undo := p.MakeMove(m)
		ok := !p.IsChecked(us)
		p.UnmakeMove(undo)
		if ok {
			return true
		}
	}
	return false
}

func generatePseudoLegal(p *Position, list *MoveList) {
	generatePawnMoves(p, list)
	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen, King} {
		generatePieceMoves(p, list, pt)
	}
	generateCastlingMoves(p, list)
}

func generatePieceMoves(p *Position, list *MoveList, pt PieceType) {
	us := p.turn
	own := p.Occupancy(us)
	opp := p.Occupancy(us.Opponent())
	all := p.All()

	pieces := p.Piece(us, pt)
	for pieces != 0 {
		var sq Square
		sq, pieces = pieces.PopLSB()

		targets := Attackboard(all, sq, pt) &^ own
		quiets := targets &^ opp
		captures := targets & opp

		for quiets != 0 {
			var to Square
			to, quiets = quiets.PopLSB()
			list.Add(Move{From: sq, To: to, Flags: Quiet})
		}
		for captures != 0 {
			var to Square
			to, captures = captures.PopLSB()
			list.Add(Move{From: sq, To: to, Flags: Capture})
		}
	}
}

func generatePawnMoves(p *Position, list *MoveList) {
	us := p.turn
	them := us.Opponent()
	pawns := p.Piece(us, Pawn)
	empty := ^p.All()
	opp := p.Occupancy(them)
	promoRank := PawnPromotionRank(us)

	single := PawnPushboard(us, pawns, empty)
	addPawnTargets(list, single, pushDelta(us), false, promoRank)

	startRank := pawns & PawnStartRank(us)
	afterOne := PawnPushboard(us, startRank, empty)
	double := PawnPushboard(us, afterOne, empty) & PawnJumpRank(us)
	for double != 0 {
		var to Square
		to, double = double.PopLSB()
		from := Square(int(to) - 2*pushDelta(us))
		list.Add(Move{From: from, To: to, Flags: DoublePawnPush})
	}

	var eastTargets, westTargets Bitboard
	var eastDelta, westDelta int
	if us == White {
		eastTargets, eastDelta = pawns.NorthEast()&opp, 9
		westTargets, westDelta = pawns.NorthWest()&opp, 7
	} else {
		eastTargets, eastDelta = pawns.SouthEast()&opp, -7
		westTargets, westDelta = pawns.SouthWest()&opp, -9
	}
	addPawnTargets(list, eastTargets, eastDelta, true, promoRank)
	addPawnTargets(list, westTargets, westDelta, true, promoRank)

	if ep, ok := p.EnPassant(); ok {
		attackers := PawnAttackboard(them, BitMask(ep)) & pawns
		for attackers != 0 {
			var from Square
			from, attackers = attackers.PopLSB()
			list.Add(Move{From: from, To: ep, Flags: EnPassantCapture})
		}
	}
}

func pushDelta(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

// addPawnTargets expands a bitboard of pawn-move destination squares into
// moves, splitting into the four promotion variants when the destination
// lies on the promotion rank.
func addPawnTargets(list *MoveList, targets Bitboard, delta int, capture bool, promoRank Bitboard) {
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		from := Square(int(to) - delta)

		if promoRank.IsSet(to) {
			for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
				list.Add(Move{From: from, To: to, Flags: promotionFlag(pt, capture)})
			}
			continue
		}
		flag := Quiet
		if capture {
			flag = Capture
		}
		list.Add(Move{From: from, To: to, Flags: flag})
	}
}

func generateCastlingMoves(p *Position, list *MoveList) {
	us := p.turn
	if p.IsChecked(us) {
		return
	}
	them := us.Opponent()

	if us == White {
		if p.castling.IsAllowed(WhiteKingSide) && p.IsEmpty(F1) && p.IsEmpty(G1) &&
			!p.IsAttacked(them, F1) && !p.IsAttacked(them, G1) {
			list.Add(Move{From: E1, To: G1, Flags: KingSideCastle})
		}
		if p.castling.IsAllowed(WhiteQueenSide) && p.IsEmpty(D1) && p.IsEmpty(C1) && p.IsEmpty(B1) &&
			!p.IsAttacked(them, D1) && !p.IsAttacked(them, C1) {
			list.Add(Move{From: E1, To: C1, Flags: QueenSideCastle})
		}
		return
	}

	if p.castling.IsAllowed(BlackKingSide) && p.IsEmpty(F8) && p.IsEmpty(G8) &&
		!p.IsAttacked(them, F8) && !p.IsAttacked(them, G8) {
		list.Add(Move{From: E8, To: G8, Flags: KingSideCastle})
	}
	if p.castling.IsAllowed(BlackQueenSide) && p.IsEmpty(D8) && p.IsEmpty(C8) && p.IsEmpty(B8) &&
		!p.IsAttacked(them, D8) && !p.IsAttacked(them, C8) {
		list.Add(Move{From: E8, To: C8, Flags: QueenSideCastle})
	}
}

// ResolveMove turns the raw (from, to, promotion) components parsed by
// ParseMove into a fully flagged, legality-checked Move, by matching it
// against the position's current legal move list. Returns an error if no
// legal move matches.
func ResolveMove(p *Position, from, to Square, promo PieceType) (Move, error) {
	legal := GenerateMoves(p)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.PromotionPiece() != promo {
			continue
		}
		if !m.IsPromotion() && promo != NoPieceType {
			continue
		}
		return m, nil
	}
	return NoMove, fmt.Errorf("illegal move %v%v", from, to)
}
