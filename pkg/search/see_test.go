package search_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSEENonCaptureIsZero(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	m, err := board.ResolveMove(pos, board.E2, board.E4, board.NoPieceType)
	require.NoError(t, err)

	assert.Equal(t, eval.Score(0), search.StaticExchangeEvaluation(pos, m))
}

func TestSEEWinsUndefendedCapture(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m, err := board.ResolveMove(pos, board.E4, board.D5, board.NoPieceType)
	require.NoError(t, err)
	require.True(t, m.IsCapture())

	assert.Equal(t, eval.NominalValue(board.Queen), search.StaticExchangeEvaluation(pos, m))
}

func TestSEELosesDefendedCapture(t *testing.T) {
	pos, err := fen.Decode("4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	m, err := board.ResolveMove(pos, board.D1, board.D5, board.NoPieceType)
	require.NoError(t, err)
	require.True(t, m.IsCapture())

	score := search.StaticExchangeEvaluation(pos, m)
	assert.True(t, score < 0, "expected a losing trade, got %v", score)
}
