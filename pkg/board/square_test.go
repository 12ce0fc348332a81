package board_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareNumbering(t *testing.T) {
	assert.Equal(t, board.Square(0), board.A1)
	assert.Equal(t, board.Square(7), board.H1)
	assert.Equal(t, board.Square(8), board.A2)
	assert.Equal(t, board.Square(63), board.H8)
}

func TestNewSquareRoundTrip(t *testing.T) {
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		for r := board.ZeroRank; r < board.NumRanks; r++ {
			sq := board.NewSquare(f, r)
			assert.Equal(t, f, sq.File())
			assert.Equal(t, r, sq.Rank())
		}
	}
}

func TestParseSquareStr(t *testing.T) {
	tests := []struct {
		str string
		sq  board.Square
	}{
		{"a1", board.A1},
		{"h1", board.H1},
		{"a8", board.A8},
		{"h8", board.H8},
		{"e4", board.E4},
	}
	for _, test := range tests {
		sq, err := board.ParseSquareStr(test.str)
		require.NoError(t, err)
		assert.Equal(t, test.sq, sq)
		assert.Equal(t, test.str, sq.String())
	}
}

func TestParseSquareStrInvalid(t *testing.T) {
	_, err := board.ParseSquareStr("i9")
	assert.Error(t, err)
	_, err = board.ParseSquareStr("a")
	assert.Error(t, err)
}
