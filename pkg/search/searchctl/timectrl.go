package searchctl

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimeControl holds each side's remaining clock time and, optionally, the
// number of moves it must be divided across (0 means the rest of the game).
type TimeControl struct {
	White, Black time.Duration
	Moves        int
}

// Limits returns the soft and hard time budgets for the side to move. Past
// the soft limit a new iterative-deepening depth should not be started;
// past the hard limit the in-flight search is halted outright.
func (t TimeControl) Limits(c board.Color) (soft, hard time.Duration) {
	remainder := t.White
	if c == board.Black {
		remainder = t.Black
	}

	moves := time.Duration(40)
	if t.Moves > 0 {
		moves = time.Duration(t.Moves) + 1
	}

	soft = remainder / (2 * moves)
	hard = 3 * soft
	return soft, hard
}

func (t TimeControl) String() string {
	if t.Moves == 0 {
		return fmt.Sprintf("%.1fs<>%.1fs", t.White.Seconds(), t.Black.Seconds())
	}
	return fmt.Sprintf("%.1fs<>%.1fs[moves=%d]", t.White.Seconds(), t.Black.Seconds(), t.Moves)
}

// enforceTimeControl schedules a hard halt if a TimeControl is set, and
// returns the soft limit the iterative-deepening loop should respect
// itself (stop starting new depths once exceeded).
func enforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl], turn board.Color) (soft time.Duration, enabled bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	soft, hard := c.Limits(turn)
	timer := time.AfterFunc(hard, func() {
		h.Halt()
	})
	go func() {
		<-ctx.Done()
		timer.Stop()
	}()

	logw.Debugf(ctx, "time control for %v: soft=%v hard=%v (%v)", turn, soft, hard, c)
	return soft, true
}
