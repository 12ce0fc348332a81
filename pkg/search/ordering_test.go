package search

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillerTableAddAndIsKiller(t *testing.T) {
	k := NewKillerTable()
	m1 := board.Move{From: board.E2, To: board.E4}
	m2 := board.Move{From: board.G1, To: board.F3}

	k.Add(3, m1)
	rank, ok := k.IsKiller(3, m1)
	assert.True(t, ok)
	assert.Equal(t, 0, rank)

	k.Add(3, m2)
	rank, ok = k.IsKiller(3, m1)
	assert.True(t, ok)
	assert.Equal(t, 1, rank)

	rank, ok = k.IsKiller(3, m2)
	assert.True(t, ok)
	assert.Equal(t, 0, rank)

	_, ok = k.IsKiller(4, m1)
	assert.False(t, ok)
}

func TestKillerTableIgnoresCaptures(t *testing.T) {
	k := NewKillerTable()
	capture := board.Move{From: board.E4, To: board.D5, Flags: board.Capture}
	k.Add(0, capture)
	_, ok := k.IsKiller(0, capture)
	assert.False(t, ok)
}

func TestHistoryTableAccumulates(t *testing.T) {
	h := NewHistoryTable()
	m := board.Move{From: board.E2, To: board.E4}

	h.Add(board.White, m, 4)
	assert.Equal(t, int32(16), h.Score(board.White, m))

	h.Add(board.White, m, 3)
	assert.Equal(t, int32(16+9), h.Score(board.White, m))

	assert.Equal(t, int32(0), h.Score(board.Black, m))
}

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := board.GenerateMoves(pos)
	require.True(t, moves.Len() > 1)

	ttMove := moves.At(moves.Len() - 1)
	orderMoves(pos, &moves, ttMove, 0, NewKillerTable(), NewHistoryTable())

	assert.Equal(t, ttMove, moves.At(0))
}

func TestOrderMovesRanksCapturesByMVVLVA(t *testing.T) {
	// White rook on d3 and pawn on c4 can both capture a black queen on d5
	// (the queen on d1 is blocked by the rook). Capturing with the pawn
	// (least valuable attacker, most valuable victim) should sort before
	// the rook capture.
	pos, err := fen.Decode("4k3/8/8/3q4/2P5/3R4/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	all := board.GenerateMoves(pos)
	var captures board.MoveList
	for i := 0; i < all.Len(); i++ {
		if m := all.At(i); m.IsCapture() {
			captures.Add(m)
		}
	}
	require.True(t, captures.Len() >= 2)

	orderMoves(pos, &captures, board.NoMove, 0, NewKillerTable(), NewHistoryTable())

	best := captures.At(0)
	assert.Equal(t, board.C4, best.From)
}
