package search

import (
	"context"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/eval"
)

// aspirationWindow is the half-width of the initial search window around the
// previous iteration's score.
const aspirationWindow = eval.Score(50)

// forcedMateThreshold: once a returned score's magnitude exceeds this, a
// forced mate has been found and deepening further is pointless.
const forcedMateThreshold = eval.Score(19000)

// deepen runs iterative deepening from depth 1 up to depthLimit (0 meaning
// unbounded, subject only to the time budget), returning the best move and
// score found at the last fully completed depth.
func (w *worker) deepen(ctx context.Context, pos *board.Position, depthLimit int) (board.Move, eval.Score) {
	best := board.NullMove
	var score eval.Score

	for depth := 1; depthLimit == 0 || depth <= depthLimit; depth++ {
		if w.timeUp(ctx) {
			break
		}

		m, s := w.aspirationSearch(ctx, pos, depth, score)
		if w.cancelled {
			break
		}
		if !m.IsNull() {
			best = m
			score = s
			w.depthReached = depth
		}
		if score > forcedMateThreshold || score < -forcedMateThreshold {
			break
		}
	}
	return best, score
}

// aspirationSearch searches depth with a narrow window around prevScore,
// widening to the full range on a fail-high or fail-low.
func (w *worker) aspirationSearch(ctx context.Context, pos *board.Position, depth int, prevScore eval.Score) (board.Move, eval.Score) {
	if depth <= 1 {
		return w.search(ctx, pos, depth, 0, -eval.Inf, eval.Inf, true)
	}

	alpha := prevScore - aspirationWindow
	beta := prevScore + aspirationWindow

	m, s := w.search(ctx, pos, depth, 0, alpha, beta, true)
	if w.cancelled {
		return m, s
	}
	if s <= alpha || s >= beta {
		m, s = w.search(ctx, pos, depth, 0, -eval.Inf, eval.Inf, true)
	}
	return m, s
}
