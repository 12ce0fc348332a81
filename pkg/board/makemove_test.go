package board_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"4k2r/8/8/8/8/8/8/4K3 b k - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, want := range positions {
		pos, err := fen.Decode(want)
		require.NoError(t, err)

		before := fen.Encode(pos)
		beforeHash := pos.Hash()

		moves := board.GenerateMoves(pos)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			undo := pos.MakeMove(m)
			pos.UnmakeMove(undo)

			assert.Equal(t, before, fen.Encode(pos), "move %v on %v did not round-trip", m, want)
			assert.Equal(t, beforeHash, pos.Hash(), "move %v on %v left a stale hash", m, want)
		}
	}
}

func TestMakeMoveUpdatesTurnAndClocks(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	from, to, promo, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	m, err := board.ResolveMove(pos, from, to, promo)
	require.NoError(t, err)
	assert.Equal(t, board.DoublePawnPush, m.Flags)

	pos.MakeMove(m)
	assert.Equal(t, board.Black, pos.Turn())
	assert.Equal(t, 0, pos.HalfmoveClock())
	ep, ok := pos.EnPassant()
	require.True(t, ok)
	assert.Equal(t, board.E3, ep)
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m, err := board.ResolveMove(pos, board.E1, board.F1, board.NoPieceType)
	require.NoError(t, err)
	pos.MakeMove(m)

	assert.False(t, pos.Castling().IsAllowed(board.WhiteKingSide))
}

func TestCastlingMovesRook(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m, err := board.ResolveMove(pos, board.E1, board.G1, board.NoPieceType)
	require.NoError(t, err)
	assert.Equal(t, board.KingSideCastle, m.Flags)

	pos.MakeMove(m)
	_, pt, ok := pos.At(board.F1)
	require.True(t, ok)
	assert.Equal(t, board.Rook, pt)
	assert.True(t, pos.IsEmpty(board.H1))
}
