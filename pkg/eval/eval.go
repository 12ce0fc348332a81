package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// Evaluator is a static position evaluator. Evaluate returns the score from
// White's point of view; callers that need it relative to the side to move
// should negate it for Black (see Relative).
type Evaluator interface {
	Evaluate(pos *board.Position) Score
}

// Relative returns s from the point of view of the side to move, the sign
// convention negamax search expects.
func Relative(pos *board.Position, s Score) Score {
	if pos.Turn() == board.Black {
		return -s
	}
	return s
}

// Standard is the engine's default evaluator: material plus piece-square
// tables, pawn structure (cached) and king safety, plus a small mobility
// term. Terms are simple sums; none are independently weighted beyond what
// each term already bakes in, since centipawn-scale tuning is out of scope.
type Standard struct {
	Pawns *PawnCache
}

// NewStandard constructs a Standard evaluator with its own pawn cache.
func NewStandard() *Standard {
	return &Standard{Pawns: NewPawnCache(1 << 14)}
}

func (e *Standard) Evaluate(pos *board.Position) Score {
	s := Material{}.Evaluate(pos)
	s += PieceSquare{}.Evaluate(pos)
	s += KingSafety{}.Evaluate(pos)
	s += Mobility{}.Evaluate(pos)

	if e.Pawns != nil {
		s += e.Pawns.Evaluate(pos)
	} else {
		s += PawnStructure{}.Evaluate(pos)
	}
	return Crop(s)
}
