// Package searchctl drives iterative-deepening search: it repeatedly calls
// a search.Search implementation at increasing depth, reporting each
// completed depth's principal variation on a channel, until a depth limit,
// time control, node limit, or an explicit Halt stops it.
package searchctl

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the dynamic limits for one search: depth, node count, and/or
// time control. The zero value means "no limit", i.e. search until Halt.
type Options struct {
	// DepthLimit, if set, stops iterative deepening at this ply.
	DepthLimit lang.Optional[uint]
	// NodeLimit, if set, stops a single depth's search once roughly this
	// many nodes have been visited.
	NodeLimit lang.Optional[uint64]
	// TimeControl, if set, governs how long iterative deepening may run.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var parts []string
	if v, ok := o.DepthLimit.V(); ok {
		parts = append(parts, fmt.Sprintf("depth=%d", v))
	}
	if v, ok := o.NodeLimit.V(); ok {
		parts = append(parts, fmt.Sprintf("nodes=%d", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		parts = append(parts, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
