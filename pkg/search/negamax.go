package search

import (
	"context"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/eval"
)

// mateScore is the base magnitude used to encode forced mates; shorter mates
// score higher, via mateScore-ply.
const mateScore = eval.Score(20000)

// nullMoveMinDepth is the minimum remaining depth at which null-move pruning
// is attempted.
const nullMoveMinDepth = 3

// nullMoveReduction is the depth reduction applied to the null-move probe.
const nullMoveReduction = 2

// lmrMinDepth and lmrMinMoveIndex gate late-move reduction: quiet moves
// tried late in a node's move list are searched one ply shallower first.
const (
	lmrMinDepth     = 3
	lmrMinMoveIndex = 3
)

// search is the negamax alpha-beta driver with PVS, LMR, null-move pruning
// and a quiescence leaf call. One signature serves both colors: a node
// always returns the score from the perspective of the side to move there.
func (w *worker) search(ctx context.Context, pos *board.Position, depth, ply int, alpha, beta eval.Score, allowNull bool) (board.Move, eval.Score) {
	w.nodes++
	if w.timeUp(ctx) {
		return board.NullMove, 0
	}

	if ply > 0 && (pos.IsRepetition() || pos.IsDrawByNoProgress()) {
		return board.NullMove, eval.Draw
	}

	key := pos.Key()
	ttMove := board.NullMove
	if storedDepth, score, bound, move, ok := w.tt.Probe(key); ok {
		ttMove = move
		if storedDepth >= depth {
			switch {
			case bound == Exact:
				return move, score
			case bound == Lower && score >= beta:
				return move, score
			case bound == Upper && score <= alpha:
				return move, score
			}
		}
	}

	if depth <= 0 {
		return board.NullMove, w.quiescence(ctx, pos, alpha, beta, defaultQuiescenceDepth)
	}

	if ply > 0 && w.gen.IsDrawByMaterial(pos) {
		return board.NullMove, eval.Draw
	}

	moves := w.gen.GenerateLegal(pos)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return board.NullMove, -mateScore + eval.Score(ply)
		}
		return board.NullMove, eval.Draw
	}

	inCheck := pos.InCheck(pos.SideToMove())
	if allowNull && depth >= nullMoveMinDepth && !inCheck {
		pos.MakeNull()
		_, s := w.search(ctx, pos, depth-1-nullMoveReduction, ply+1, -beta, -beta+1, false)
		pos.UnmakeNull()

		if w.timeUp(ctx) {
			return board.NullMove, 0
		}
		if -s >= beta {
			w.cutoffs++
			return board.NullMove, beta
		}
	}

	moves = OrderMoves(pos, moves, ttMove, ply, w.killers, w.history)

	var bestMove board.Move
	bestScore := -eval.Inf
	originalAlpha := alpha

	for i, m := range moves {
		mover := pos.PieceAt(m.From)
		pos.Make(m)

		var s eval.Score
		if i == 0 {
			_, child := w.search(ctx, pos, depth-1, ply+1, -beta, -alpha, true)
			s = -child
		} else {
			reduction := 0
			if depth >= lmrMinDepth && !m.IsCapture() && i > lmrMinMoveIndex {
				reduction = 1
			}
			_, child := w.search(ctx, pos, depth-1-reduction, ply+1, -alpha-1, -alpha, true)
			s = -child
			if s > alpha && s < beta {
				_, child = w.search(ctx, pos, depth-1, ply+1, -beta, -alpha, true)
				s = -child
			}
		}

		pos.Unmake()

		if w.timeUp(ctx) {
			return bestMove, bestScore
		}

		if s > bestScore {
			bestScore = s
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			w.cutoffs++
			if !m.IsCapture() {
				w.killers.Record(ply, m)
				w.history.Record(pos.SideToMove(), m, mover.Type, depth)
			}
			break
		}
	}

	var bound Bound
	switch {
	case bestScore <= originalAlpha:
		bound = Upper
	case bestScore >= beta:
		bound = Lower
	default:
		bound = Exact
	}
	w.tt.Store(key, depth, bestScore, bound, bestMove)

	return bestMove, bestScore
}
