package eval_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackersToFindsBothColors(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/4r3/4P3/8/5N2/4K3 w - - 0 1")
	require.NoError(t, err)

	attackers := eval.AttackersTo(pos, board.E4, pos.All())
	assert.True(t, attackers.IsSet(board.E5))
	assert.True(t, attackers.IsSet(board.F2))
}

func TestLeastValuableAttackerPrefersPawnOverRook(t *testing.T) {
	pos, err := fen.Decode("7k/8/8/R7/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	attackers := eval.AttackersTo(pos, board.E5, pos.All())
	sq, pt, ok := eval.LeastValuableAttacker(pos, attackers, board.White)
	require.True(t, ok)
	assert.Equal(t, board.D4, sq)
	assert.Equal(t, board.Pawn, pt)
}
