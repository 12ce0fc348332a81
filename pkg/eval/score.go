// Package eval contains static position evaluation: material, piece-square
// tables, pawn structure, king safety and mobility, blended by game phase.
package eval

import "fmt"

// Score is a signed evaluation in centipawns. Evaluator results are from
// White's point of view (positive favors White); search scores are relative
// to the side to move (see Relative). Mate scores are encoded as MateValue minus
// the distance to mate in plies, so that shorter mates compare as more
// extreme (better) than longer ones, and so the encoding survives negation
// as search unwinds the tree.
type Score int32

const (
	Draw Score = 0

	Inf       Score = 1 << 20
	MateValue Score = Inf - 1000 // comfortably above any real material score
)

// MateIn returns the score for delivering mate in the given number of plies
// from the current node, as seen by the side about to move.
func MateIn(plies int) Score {
	return MateValue - Score(plies)
}

// MatedIn returns the score for being mated in the given number of plies.
func MatedIn(plies int) Score {
	return -MateIn(plies)
}

// IsMateScore reports whether s encodes a forced mate in either direction.
func IsMateScore(s Score) bool {
	return s > MateValue-1000 || s < -(MateValue-1000)
}

// PliesToMate returns the number of plies to mate encoded in s. Only
// meaningful if IsMateScore(s).
func PliesToMate(s Score) int {
	if s > 0 {
		return int(MateValue - s)
	}
	return int(MateValue + s)
}

// Crop clamps s into [-Inf, Inf].
func Crop(s Score) Score {
	switch {
	case s > Inf:
		return Inf
	case s < -Inf:
		return -Inf
	default:
		return s
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

func (s Score) String() string {
	if IsMateScore(s) {
		plies := PliesToMate(s)
		if s < 0 {
			return fmt.Sprintf("-M%d", (plies+1)/2)
		}
		return fmt.Sprintf("M%d", (plies+1)/2)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}
