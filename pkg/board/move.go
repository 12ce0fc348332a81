package board

import "fmt"

// MoveFlag enumerates the kind of a move. 4 bits are sufficient (values 0..13).
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	DoublePawnPush
	KingSideCastle
	QueenSideCastle
	Capture
	EnPassantCapture
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
	PromotionCaptureKnight
	PromotionCaptureBishop
	PromotionCaptureRook
	PromotionCaptureQueen
)

// Move is a packed move encoding: from, to, and a 4-bit flag. 3 bytes total,
// well under the spec's 4-byte-per-entry ceiling for a tagged-variant layout.
type Move struct {
	From, To Square
	Flags    MoveFlag
}

// NoMove is the zero value, used as a sentinel (e.g. "no best move yet").
var NoMove = Move{}

func (m Move) IsZero() bool {
	return m == Move{}
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	switch m.Flags {
	case Capture, EnPassantCapture,
		PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	switch m.Flags {
	case PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen,
		PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen:
		return true
	default:
		return false
	}
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags == KingSideCastle || m.Flags == QueenSideCastle
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags == EnPassantCapture
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flags == DoublePawnPush
}

// PromotionPiece returns the piece type a pawn promotes into. Only valid if IsPromotion.
func (m Move) PromotionPiece() PieceType {
	switch m.Flags {
	case PromotionKnight, PromotionCaptureKnight:
		return Knight
	case PromotionBishop, PromotionCaptureBishop:
		return Bishop
	case PromotionRook, PromotionCaptureRook:
		return Rook
	case PromotionQueen, PromotionCaptureQueen:
		return Queen
	default:
		return NoPieceType
	}
}

func promotionFlag(p PieceType, capture bool) MoveFlag {
	switch p {
	case Knight:
		if capture {
			return PromotionCaptureKnight
		}
		return PromotionKnight
	case Bishop:
		if capture {
			return PromotionCaptureBishop
		}
		return PromotionBishop
	case Rook:
		if capture {
			return PromotionCaptureRook
		}
		return PromotionRook
	case Queen:
		if capture {
			return PromotionCaptureQueen
		}
		return PromotionQueen
	default:
		panic("invalid promotion piece")
	}
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4"
// or "a7a8q". The flags are not resolved here (they depend on board context);
// use ResolveMove to turn this into a fully flagged, legality-checked Move.
func ParseMove(str string) (Square, Square, PieceType, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return 0, 0, NoPieceType, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return 0, 0, NoPieceType, fmt.Errorf("invalid from square in %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return 0, 0, NoPieceType, fmt.Errorf("invalid to square in %q: %w", str, err)
	}

	promo := NoPieceType
	if len(runes) == 5 {
		p, ok := ParsePieceType(runes[4])
		if !ok || p == Pawn || p == King {
			return 0, 0, NoPieceType, fmt.Errorf("invalid promotion piece in %q", str)
		}
		promo = p
	}
	return from, to, promo, nil
}

func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.PromotionPiece())
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
