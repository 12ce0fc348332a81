package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines streams stdin lines onto a channel, logging each at debug
// level. The channel closes when stdin is exhausted.
func ReadStdinLines(ctx context.Context) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			out <- scanner.Text()
		}
	}()
	return out
}

// WriteStdoutLines writes each line from in to stdout, logging it at debug
// level first.
func WriteStdoutLines(ctx context.Context, in <-chan string) {
	for line := range in {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
