// Package eval contains static position evaluation: material, piece-square
// bias, king safety, pawn structure, mobility and a handful of extra terms,
// combined with a middlegame/endgame phase taper.
package eval

import (
	"context"

	"github.com/arbiter-chess/engine/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns, from the side to
	// move's perspective.
	Evaluate(ctx context.Context, pos *board.Position) Score
}

// term weights for the phase taper. Index order matches the slice built in
// Evaluate: material, piece-square, king safety, pawn structure, mobility,
// extras.
var (
	mgWeight = [6]float64{1.0, 1.0, 1.0, 1.0, 1.0, 1.0}
	egWeight = [6]float64{1.1, 1.0, 0.0, 1.05, 0.7, 1.0}
)

const maxPhase = 24

// Tapered is the default Evaluator: material + piece-square + king safety +
// pawn structure + mobility + extras, tapered between middlegame and
// endgame weights by the remaining non-pawn material.
type Tapered struct{}

func (Tapered) Evaluate(ctx context.Context, pos *board.Position) Score {
	terms := [6]int{
		materialScore(pos),
		pieceSquareScore(pos),
		kingSafetyScore(pos),
		pawnStructureScore(pos),
		mobilityScore(pos),
		extrasScore(pos),
	}

	var mg, eg float64
	for i, t := range terms {
		mg += float64(t) * mgWeight[i]
		eg += float64(t) * egWeight[i]
	}

	phase := gamePhase(pos)
	white := (mg*float64(phase) + eg*float64(maxPhase-phase)) / maxPhase

	score := Score(white)
	if pos.SideToMove() == board.Black {
		score = -score
	}
	return score
}

// gamePhase sums 1 per knight/bishop, 2 per rook and 4 per queen still on
// the board, clamped to maxPhase. A higher phase means more material is
// still on the board (closer to the middlegame).
func gamePhase(pos *board.Position) int {
	phase := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		switch pos.PieceAt(sq).Type {
		case board.Knight, board.Bishop:
			phase++
		case board.Rook:
			phase += 2
		case board.Queen:
			phase += 4
		}
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}
