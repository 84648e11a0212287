package eval

import "fmt"

// Score is a position or term score in centipawns. Evaluator.Evaluate and the
// search report it from the side to move's perspective: positive favors the
// side to move.
type Score int

const (
	Draw Score = 0

	// Mate is the base magnitude used to encode "mate in N" scores; the
	// search layer subtracts the distance from the root before storing or
	// returning a mate score. See Score.IsMateScore.
	Mate Score = 20000

	// Inf is a sentinel outside the representable score range, used as a
	// search window bound before any real value has been computed.
	Inf Score = Mate + 1000
)

func (s Score) String() string {
	return fmt.Sprintf("%d", int(s))
}

// IsMateScore reports whether s encodes a forced mate (for either side).
func (s Score) IsMateScore() bool {
	return s > Mate-1000 || s < -Mate+1000
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
