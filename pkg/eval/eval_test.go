package eval_test

import (
	"context"
	"testing"

	"github.com/arbiter-chess/engine/pkg/board/fen"
	"github.com/arbiter-chess/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var e eval.Tapered
	assert.Equal(t, eval.Score(0), e.Evaluate(context.Background(), pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	// White is up a rook.
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	var e eval.Tapered
	score := e.Evaluate(context.Background(), pos)
	assert.Greater(t, int(score), 400)
}

func TestEvaluateIsSymmetricUnderSideToMove(t *testing.T) {
	// Mirror-image positions with the side to move swapped: the White-view
	// scores negate exactly, so the side-to-move scores are equal.
	white, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Decode("r3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	var e eval.Tapered
	ws := e.Evaluate(context.Background(), white)
	bs := e.Evaluate(context.Background(), black)
	assert.Equal(t, ws, bs)
}

func TestEvaluateRookOnOpenFileBeatsBlockedFile(t *testing.T) {
	// Same material (rook + one pawn) in both positions; only the pawn's
	// file differs, which determines whether the a-file rook is open.
	open, err := fen.Decode("4k3/8/8/8/8/8/7P/R3K3 w - - 0 1")
	require.NoError(t, err)
	blocked, err := fen.Decode("4k3/8/8/8/8/8/P7/R3K3 w - - 0 1")
	require.NoError(t, err)

	var e eval.Tapered
	openScore := e.Evaluate(context.Background(), open)
	blockedScore := e.Evaluate(context.Background(), blocked)
	assert.Greater(t, int(openScore), int(blockedScore))
}
