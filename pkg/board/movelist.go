package board

import "sort"

// MaxMoves bounds the fixed-capacity move buffer. The theoretical maximum
// number of legal moves in any reachable chess position is 218, well under
// this.
const MaxMoves = 256

// MoveList is a fixed-capacity, dense, ordered sequence of moves. It is the
// buffer move generation writes into, kept as a plain array to avoid heap
// allocation on the search hot path.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends a move to the list. Panics if the list is full, which would
// indicate a move-count bound violation (see spec.md §8 property 5).
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the move at index i.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Set overwrites the move at index i, used by in-place sorting/ordering.
func (l *MoveList) Set(i int, m Move) {
	l.moves[i] = m
}

// Slice returns the populated prefix as a slice, sharing the underlying array.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Priority represents a move's order priority for search move ordering: higher
// values are searched first.
type Priority int32

// PriorityFn assigns a search-order priority to a move.
type PriorityFn func(m Move) Priority

// First returns a PriorityFn that places the given move before all others
// (used to try the PV/TT move first), falling back to fn for every other move.
func First(first Move, fn PriorityFn) PriorityFn {
	return func(m Move) Priority {
		if !first.IsZero() && first == m {
			return 1<<31 - 1
		}
		return fn(m)
	}
}

// SortByPriority stably sorts the list's populated prefix by descending priority.
func (l *MoveList) SortByPriority(fn PriorityFn) {
	s := l.Slice()
	sort.SliceStable(s, func(i, j int) bool {
		return fn(s[i]) > fn(s[j])
	})
}
