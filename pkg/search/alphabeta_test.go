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

func newSearchContext() *search.Context {
	return search.NewContext(search.NewTranspositionTable(1<<20), eval.NewStandard(), search.Limit{}, nil)
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	pos, err := fen.Decode("7k/8/6K1/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	_, score, pv, err := search.AlphaBeta{}.Search(newSearchContext(), b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	assert.True(t, eval.IsMateScore(score))
	assert.Equal(t, 1, eval.PliesToMate(score))
	assert.Equal(t, board.A1, pv[0].From)
	assert.Equal(t, board.A8, pv[0].To)
}

func TestAlphaBetaStartingPositionIsBalanced(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	b := board.NewBoard(pos)

	nodes, score, pv, err := search.AlphaBeta{}.Search(newSearchContext(), b, 3)
	require.NoError(t, err)
	assert.True(t, nodes > 0)
	assert.NotEmpty(t, pv)
	assert.True(t, score > -eval.NominalValue(board.Pawn) && score < eval.NominalValue(board.Pawn))
}

func TestAlphaBetaPrefersWinningCapture(t *testing.T) {
	// White to move, can capture a hanging queen with a pawn.
	pos, err := fen.Decode("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	_, _, pv, err := search.AlphaBeta{}.Search(newSearchContext(), b, 2)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	assert.Equal(t, board.E4, pv[0].From)
	assert.Equal(t, board.D5, pv[0].To)
}
