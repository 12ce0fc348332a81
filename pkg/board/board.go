package board

// Board wraps a Position with the game-level bookkeeping a Position alone
// cannot track on its own: full move history (for threefold/fivefold
// repetition and takeback), and result adjudication. Search workers
// typically operate on a *Position directly via MakeMove/UnmakeMove for
// speed; Board is the outer shell used by the engine to drive a game turn
// by turn.
type Board struct {
	pos     *Position
	history []ZobristHash
	undos   []UndoRecord
}

// NewBoard wraps pos as the root of a new game (or resumed game) history.
func NewBoard(pos *Position) *Board {
	return &Board{
		pos:     pos,
		history: []ZobristHash{pos.Hash()},
	}
}

// Position returns the current, mutable position. Callers must not retain
// it across a Push/Pop.
func (b *Board) Position() *Position {
	return b.pos
}

// Push applies a legal move, recording it for later Pop and repetition
// tracking. The caller is responsible for legality (e.g. via LegalMoves or
// ResolveMove); Push does not re-validate.
func (b *Board) Push(m Move) {
	undo := b.pos.MakeMove(m)
	b.undos = append(b.undos, undo)
	b.history = append(b.history, b.pos.Hash())
}

// Pop reverses the most recently pushed move. Panics if there is no move to
// undo, i.e. the board is at its initial position.
func (b *Board) Pop() Move {
	n := len(b.undos)
	if n == 0 {
		panic("Pop: no move to undo")
	}
	undo := b.undos[n-1]
	b.undos = b.undos[:n-1]
	b.history = b.history[:len(b.history)-1]
	b.pos.UnmakeMove(undo)
	return undo.Move
}

// Len returns the number of moves played so far.
func (b *Board) Len() int {
	return len(b.undos)
}

// Fork returns an independent copy of the board, sharing no state with the
// original: search workers push and pop moves on a forked board while the
// engine's own board keeps serving the live game.
func (b *Board) Fork() *Board {
	pos := *b.pos
	history := make([]ZobristHash, len(b.history))
	copy(history, b.history)
	undos := make([]UndoRecord, len(b.undos))
	copy(undos, b.undos)
	return &Board{pos: &pos, history: history, undos: undos}
}

// LegalMoves returns the legal moves available to the side to move.
func (b *Board) LegalMoves() MoveList {
	return GenerateMoves(b.pos)
}

// RepetitionCount returns how many times the current position's hash has
// occurred previously in the game's history, including the current
// occurrence (so a brand-new position reports 1).
func (b *Board) RepetitionCount() int {
	h := b.pos.Hash()
	count := 0
	for _, past := range b.history {
		if past == h {
			count++
		}
	}
	return count
}

// Result adjudicates the current position: checkmate/stalemate (requires
// legal-move enumeration), repetition, the fifty/seventy-five-move rule,
// and insufficient material. Returns Undecided if the game continues.
func (b *Board) Result() Result {
	if !HasLegalMove(b.pos) {
		if b.pos.IsChecked(b.pos.Turn()) {
			return Result{Outcome: Loss(b.pos.Turn()), Reason: Checkmate}
		}
		return Result{Outcome: Draw, Reason: Stalemate}
	}
	if rc := b.RepetitionCount(); rc >= 5 {
		return Result{Outcome: Draw, Reason: Repetition5}
	} else if rc >= 3 {
		return Result{Outcome: Draw, Reason: Repetition3}
	}
	if b.pos.HalfmoveClock() >= 100 {
		return Result{Outcome: Draw, Reason: NoProgress}
	}
	if b.pos.HasInsufficientMaterial() {
		return Result{Outcome: Draw, Reason: InsufficientMaterial}
	}
	return Result{Outcome: Undecided}
}
