package eval

import (
	"sync/atomic"
	"unsafe"

	"github.com/kestrelchess/kestrel/pkg/board"
)

// pawnEntry is a single pawn-hash cache slot.
type pawnEntry struct {
	hash  board.ZobristHash
	score Score
}

// PawnCache caches PawnStructure.Evaluate results by pawn hash. Pawn
// structure changes far less often than the full position, so a small
// direct-mapped cache gets a high hit rate across a search tree. Safe for
// concurrent use by multiple search workers sharing one evaluator, using
// the same lock-free single-pointer-swap technique as the transposition
// table (see pkg/search/transposition.go).
type PawnCache struct {
	table []unsafe.Pointer // *pawnEntry
	mask  uint64
}

// NewPawnCache creates a cache with room for n entries, rounded up to the
// next power of two.
func NewPawnCache(n int) *PawnCache {
	size := 1
	for size < n {
		size <<= 1
	}
	return &PawnCache{
		table: make([]unsafe.Pointer, size),
		mask:  uint64(size - 1),
	}
}

func (c *PawnCache) slot(hash board.ZobristHash) *unsafe.Pointer {
	return &c.table[uint64(hash)&c.mask]
}

// Evaluate returns the cached pawn-structure score for pos, computing and
// storing it on a miss.
func (c *PawnCache) Evaluate(pos *board.Position) Score {
	hash := pos.PawnHash()
	addr := c.slot(hash)

	if e := (*pawnEntry)(atomic.LoadPointer(addr)); e != nil && e.hash == hash {
		return e.score
	}

	score := PawnStructure{}.Evaluate(pos)
	atomic.StorePointer(addr, unsafe.Pointer(&pawnEntry{hash: hash, score: score}))
	return score
}
