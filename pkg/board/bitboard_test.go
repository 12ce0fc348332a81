package board_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitMaskIsSet(t *testing.T) {
	bb := board.BitMask(board.E4)
	assert.True(t, bb.IsSet(board.E4))
	assert.False(t, bb.IsSet(board.E5))
	assert.Equal(t, 1, bb.PopCount())
}

func TestShiftsMaskFileWrap(t *testing.T) {
	// h4 moving East must not wrap to the a-file.
	h4 := board.BitMask(board.H4)
	assert.Equal(t, board.EmptyBitboard, h4.East())
	assert.Equal(t, board.EmptyBitboard, h4.NorthEast())
	assert.Equal(t, board.EmptyBitboard, h4.SouthEast())

	// a4 moving West must not wrap to the h-file.
	a4 := board.BitMask(board.A4)
	assert.Equal(t, board.EmptyBitboard, a4.West())
	assert.Equal(t, board.EmptyBitboard, a4.NorthWest())
	assert.Equal(t, board.EmptyBitboard, a4.SouthWest())
}

func TestPopLSB(t *testing.T) {
	bb := board.BitMask(board.A1) | board.BitMask(board.D4) | board.BitMask(board.H8)

	var got []board.Square
	for bb != 0 {
		var sq board.Square
		sq, bb = bb.PopLSB()
		got = append(got, sq)
	}
	assert.Equal(t, []board.Square{board.A1, board.D4, board.H8}, got)
}

func TestPawnAttackboard(t *testing.T) {
	pawns := board.BitMask(board.D4)
	white := board.PawnAttackboard(board.White, pawns)
	assert.True(t, white.IsSet(board.C5))
	assert.True(t, white.IsSet(board.E5))
	assert.Equal(t, 2, white.PopCount())

	black := board.PawnAttackboard(board.Black, pawns)
	assert.True(t, black.IsSet(board.C3))
	assert.True(t, black.IsSet(board.E3))
}
