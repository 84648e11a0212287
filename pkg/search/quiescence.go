package search

import (
	"context"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/eval"
)

// defaultQuiescenceDepth bounds the capture-only search so a long forced
// sequence of trades cannot run away.
const defaultQuiescenceDepth = 4

// quiescence is a capture-only alpha-beta search used at the leaves of the
// main search to avoid horizon effects: a side about to recapture a hanging
// piece should not be evaluated as if the position were quiet.
func (w *worker) quiescence(ctx context.Context, pos *board.Position, alpha, beta eval.Score, depth int) eval.Score {
	w.nodes++

	standPat := w.evaluator.Evaluate(ctx, pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth <= 0 {
		return alpha
	}

	for _, m := range w.gen.GenerateCaptures(pos) {
		pos.Make(m)
		score := -w.quiescence(ctx, pos, -beta, -alpha, depth-1)
		pos.Unmake()

		if w.timeUp(ctx) {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
