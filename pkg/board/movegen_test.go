package board_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft counts leaf nodes at a given depth, the standard move-generator
// correctness benchmark: it exercises every rule (captures, castling,
// promotion, en passant, check evasion) jointly rather than in isolation.
func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateMoves(pos)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		undo := pos.MakeMove(moves.At(i))
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(undo)
	}
	return nodes
}

func TestPerftInitialPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, test := range tests {
		assert.Equal(t, test.nodes, perft(pos, test.depth), "depth %d", test.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	}
	for _, test := range tests {
		assert.Equal(t, test.nodes, perft(pos, test.depth), "depth %d", test.depth)
	}
}

func TestPerftEnPassantPin(t *testing.T) {
	// Position where an en-passant capture would illegally expose the king
	// to a rook along the fifth rank; the move generator must exclude it.
	pos, err := fen.Decode("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
		{5, 674624},
	}
	for _, test := range tests {
		assert.Equal(t, test.nodes, perft(pos, test.depth), "depth %d", test.depth)
	}
}

func TestPerftCastlingAndPromotion(t *testing.T) {
	pos, err := fen.Decode("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 44},
		{2, 1486},
		{3, 62379},
		{4, 422333},
	}
	for _, test := range tests {
		assert.Equal(t, test.nodes, perft(pos, test.depth), "depth %d", test.depth)
	}
}

func TestMoveCountBound(t *testing.T) {
	pos, err := fen.Decode("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1")
	require.NoError(t, err)

	moves := board.GenerateMoves(pos)
	assert.LessOrEqual(t, moves.Len(), board.MaxMoves)
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate.
	pos, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	assert.False(t, board.HasLegalMove(pos))
	assert.True(t, pos.IsChecked(board.White))
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	pos, err := fen.Decode("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	assert.False(t, board.HasLegalMove(pos))
	assert.False(t, pos.IsChecked(board.Black))
}

func TestResolveMoveRejectsIllegal(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	_, err = board.ResolveMove(pos, board.E2, board.E5, board.NoPieceType)
	assert.Error(t, err)
}
