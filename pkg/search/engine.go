package search

import (
	"context"
	"time"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/eval"
	"github.com/arbiter-chess/engine/pkg/search/searchctl"
)

// Engine is the top-level synchronous search entry point. It owns the
// resources that persist across calls -- the transposition table, killer and
// history tables -- so that move ordering benefits from the previous call's
// work. It is not safe for concurrent use: the single-threaded model gives
// each Engine instance its own TT, never shared across searches running in
// parallel.
type Engine struct {
	TT        *TranspositionTable
	Evaluator eval.Evaluator

	killers *killerTable
	history *historyTable
	lastPV  PV
}

// NewEngine constructs an Engine with a fresh TT and the tapered evaluator.
func NewEngine() *Engine {
	return &Engine{
		TT:        NewTranspositionTable(),
		Evaluator: eval.Tapered{},
		killers:   &killerTable{},
		history:   &historyTable{},
	}
}

// FindBestMove runs iterative deepening up to depthLimit plies (0 = no ply
// limit) or until timeBudgetMs elapses (0 = no time limit), whichever comes
// first, and returns the best move found at the last fully completed depth.
func (e *Engine) FindBestMove(ctx context.Context, pos *board.Position, depthLimit int, timeBudgetMs int) (board.Move, eval.Score) {
	start := time.Now()
	w := &worker{
		tt:        e.TT,
		killers:   e.killers,
		history:   e.history,
		evaluator: e.Evaluator,
		deadline:  searchctl.FromMillis(timeBudgetMs).Deadline(start),
		startTime: start,
	}
	move, score := w.deepen(ctx, pos, depthLimit)

	pvLen := depthLimit
	if pvLen <= 0 {
		pvLen = maxPVLength
	}
	e.lastPV = PV{
		Depth: w.depthReached,
		Score: score,
		Nodes: w.nodes,
		Time:  time.Since(start),
		Moves: extractPV(e.TT, pos, pvLen),
	}
	return move, score
}

// LastPV reports summary statistics for the most recently completed
// FindBestMove call.
func (e *Engine) LastPV() PV {
	return e.lastPV
}

// Reset clears the engine's cross-call state, as when starting a new game.
func (e *Engine) Reset() {
	e.TT.Clear()
	e.killers = &killerTable{}
	e.history = &historyTable{}
	e.lastPV = PV{}
}
