package search

import (
	"context"
	"time"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/eval"
)

// worker runs one synchronous search call, owning the mutable state shared
// across the whole negamax tree for that call: node/cutoff counters, the
// time budget, and a cooperative cancellation flag checked at every node.
// The TT, killers, history and evaluator are shared across the Engine's
// calls; worker itself is created fresh per FindBestMove invocation.
type worker struct {
	tt        *TranspositionTable
	killers   *killerTable
	history   *historyTable
	evaluator eval.Evaluator
	gen       board.MoveGenerator

	deadline  time.Time
	cancelled bool

	startTime    time.Time
	depthReached int

	nodes   uint64
	cutoffs uint64
}

// timeUp reports whether the search should unwind immediately, checked at
// every node per spec.md §5's two suspension triggers: the wall-clock
// deadline, and an external cancel of ctx (context.Context cancel/timeout).
// Once cancelled is set it stays set: either trigger aborts the whole call.
func (w *worker) timeUp(ctx context.Context) bool {
	if w.cancelled {
		return true
	}
	if ctx.Err() != nil {
		w.cancelled = true
		return true
	}
	if !w.deadline.IsZero() && !time.Now().Before(w.deadline) {
		w.cancelled = true
	}
	return w.cancelled
}
