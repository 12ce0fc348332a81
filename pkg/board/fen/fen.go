// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kestrelchess/kestrel/pkg/board"
)

// Initial is the FEN of the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position.
func Decode(fen string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", fen)
	}

	pieces, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid piece placement in FEN %q: %w", fen, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling rights in FEN: %q", fen)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant target in FEN %q: %w", fen, err)
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}

	return board.NewPosition(pieces, turn, castling, ep, halfmove, fullmove)
}

func decodePlacement(placement string) ([]board.Placement, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != int(board.NumRanks) {
		return nil, fmt.Errorf("expected %d ranks, got %d", board.NumRanks, len(ranks))
	}

	var pieces []board.Placement
	for i, rankStr := range ranks {
		r := board.Rank(int(board.NumRanks) - 1 - i) // FEN lists rank 8 first
		f := board.ZeroFile

		for _, ch := range rankStr {
			switch {
			case unicode.IsDigit(ch):
				f += board.File(ch - '0')
			case unicode.IsLetter(ch):
				c, pt, ok := parsePiece(ch)
				if !ok {
					return nil, fmt.Errorf("invalid piece char %q", ch)
				}
				if f >= board.NumFiles {
					return nil, fmt.Errorf("rank %q overflows 8 files", rankStr)
				}
				pieces = append(pieces, board.Placement{Square: board.NewSquare(f, r), Color: c, Piece: pt})
				f++
			default:
				return nil, fmt.Errorf("invalid character %q in rank", ch)
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("rank %q does not cover 8 files", rankStr)
		}
	}
	return pieces, nil
}

// Encode serializes a Position to a FEN record.
func Encode(p *board.Position) string {
	var sb strings.Builder
	for i := 0; i < int(board.NumRanks); i++ {
		r := board.Rank(int(board.NumRanks) - 1 - i)
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			c, pt, ok := p.At(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(printPiece(c, pt))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if i < int(board.NumRanks)-1 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), p.Turn(), p.Castling(), ep, p.HalfmoveClock(), p.FullmoveNumber())
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return board.NoCastling, true
	}
	var c board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			c |= board.WhiteKingSide
		case 'Q':
			c |= board.WhiteQueenSide
		case 'k':
			c |= board.BlackKingSide
		case 'q':
			c |= board.BlackQueenSide
		default:
			return 0, false
		}
	}
	return c, true
}

func parsePiece(r rune) (board.Color, board.PieceType, bool) {
	pt, ok := board.ParsePieceType(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, pt, true
	}
	return board.Black, pt, true
}

func printPiece(c board.Color, pt board.PieceType) string {
	if c == board.White {
		return strings.ToUpper(pt.String())
	}
	return pt.String()
}
