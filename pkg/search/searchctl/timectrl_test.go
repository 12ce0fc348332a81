package searchctl_test

import (
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
)

func TestTimeControlLimitsSplitsSoftAndHard(t *testing.T) {
	tc := searchctl.TimeControl{White: 60 * time.Second, Black: 30 * time.Second}

	soft, hard := tc.Limits(board.White)
	assert.True(t, soft > 0)
	assert.Equal(t, 3*soft, hard)

	bsoft, bhard := tc.Limits(board.Black)
	assert.True(t, bsoft < soft)
	assert.Equal(t, 3*bsoft, bhard)
}

func TestTimeControlLimitsRespectsMoveCount(t *testing.T) {
	withMoves := searchctl.TimeControl{White: 60 * time.Second, Moves: 10}
	withoutMoves := searchctl.TimeControl{White: 60 * time.Second}

	softWith, _ := withMoves.Limits(board.White)
	softWithout, _ := withoutMoves.Limits(board.White)

	// Fewer assumed moves to divide the clock across means a larger per-move
	// budget.
	assert.True(t, softWith > softWithout)
}

func TestTimeControlString(t *testing.T) {
	tc := searchctl.TimeControl{White: 60 * time.Second, Black: 45 * time.Second}
	assert.Equal(t, "60.0s<>45.0s", tc.String())
}
