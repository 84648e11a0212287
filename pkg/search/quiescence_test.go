package search

import (
	"context"
	"testing"

	"github.com/arbiter-chess/engine/pkg/board/fen"
	"github.com/arbiter-chess/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker() *worker {
	return &worker{
		tt:        NewTranspositionTable(),
		killers:   &killerTable{},
		history:   &historyTable{},
		evaluator: eval.Tapered{},
	}
}

func TestQuiescenceStandPatCutsOffQuietPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	w := newTestWorker()
	score := w.quiescence(context.Background(), pos, -eval.Inf, eval.Inf, defaultQuiescenceDepth)
	assert.Equal(t, eval.Score(0), score)
}

func TestQuiescenceSeesThroughHangingQueenCapture(t *testing.T) {
	// White to move can capture a hanging queen with a pawn.
	pos, err := fen.Decode("4k3/8/8/8/3q4/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	w := newTestWorker()
	score := w.quiescence(context.Background(), pos, -eval.Inf, eval.Inf, defaultQuiescenceDepth)

	// The capture should be found and dominate the stand-pat evaluation:
	// after exd4 white is a pawn up instead of a queen down.
	assert.Greater(t, int(score), 100)
}

func TestQuiescenceRespectsBetaCutoff(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/3q4/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	w := newTestWorker()
	beta := eval.Score(10)
	score := w.quiescence(context.Background(), pos, -eval.Inf, beta, defaultQuiescenceDepth)
	assert.Equal(t, beta, score)
}
