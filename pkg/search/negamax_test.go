package search

import (
	"context"
	"testing"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/board/fen"
	"github.com/arbiter-chess/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// Back-rank mate: Rd8# for white.
	pos, err := fen.Decode("6k1/8/6K1/8/8/8/8/3R4 w - - 0 1")
	require.NoError(t, err)

	w := newTestWorker()
	move, score := w.search(context.Background(), pos, 3, 0, -eval.Inf, eval.Inf, true)

	require.False(t, move.IsNull())
	assert.Equal(t, board.D1, move.From)
	assert.Equal(t, board.D8, move.To)
	assert.Greater(t, int(score), int(mateScore)-100)
}

func TestSearchReturnsZeroOnImmediateStalemate(t *testing.T) {
	pos, err := fen.Decode("7k/8/6QK/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	var gen board.MoveGenerator
	require.True(t, gen.IsStalemate(pos))

	w := newTestWorker()
	move, score := w.search(context.Background(), pos, 2, 0, -eval.Inf, eval.Inf, true)
	assert.True(t, move.IsNull())
	assert.Equal(t, eval.Draw, score)
}

func TestSearchPrefersWinningCaptureOverQuietMove(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/3q4/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	w := newTestWorker()
	move, _ := w.search(context.Background(), pos, 2, 0, -eval.Inf, eval.Inf, true)

	require.False(t, move.IsNull())
	assert.Equal(t, board.E3, move.From)
	assert.Equal(t, board.D4, move.To)
}

func TestSearchTreatsNoProgressAsDraw(t *testing.T) {
	// One halfmove from the 50-move rule: any quiet reply trips it.
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 99 1")
	require.NoError(t, err)

	w := newTestWorker()
	move, score := w.search(context.Background(), pos, 1, 0, -eval.Inf, eval.Inf, true)

	require.False(t, move.IsNull())
	assert.Equal(t, eval.Draw, score)
}

func TestSearchTreatsThreefoldRepetitionAsDraw(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var gen board.MoveGenerator
	shuttle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		for _, uci := range shuttle {
			m, ok := gen.ResolveUCI(pos, uci)
			require.True(t, ok, uci)
			pos.Make(m)
		}
	}
	require.True(t, pos.IsRepetition())

	// ply is passed as 1, simulating a node reached one ply into a search
	// tree rather than the root, which is where the draw check applies.
	w := newTestWorker()
	_, score := w.search(context.Background(), pos, 1, 1, -eval.Inf, eval.Inf, true)
	assert.Equal(t, eval.Draw, score)
}

func TestSearchRespectsCancelledDeadline(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	w := newTestWorker()
	w.cancelled = true
	move, score := w.search(context.Background(), pos, 5, 0, -eval.Inf, eval.Inf, true)
	assert.True(t, move.IsNull())
	assert.Equal(t, eval.Score(0), score)
}
