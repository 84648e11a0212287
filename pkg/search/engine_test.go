package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/board/fen"
	"github.com/arbiter-chess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineFindBestMoveSolvesMateInOne(t *testing.T) {
	pos, err := fen.Decode("6k1/8/6K1/8/8/8/8/3R4 w - - 0 1")
	require.NoError(t, err)

	e := search.NewEngine()
	move, score := e.FindBestMove(context.Background(), pos, 4, 0)

	require.False(t, move.IsNull())
	assert.Equal(t, board.D1, move.From)
	assert.Equal(t, board.D8, move.To)
	assert.Greater(t, int(score), 19000)
}

// TestEngineFindBestMoveSolvesLiteralMateInOne reproduces spec.md's literal
// mate-in-one scenario: a back-rank mate found at depth 2 with score >= 19998.
func TestEngineFindBestMoveSolvesLiteralMateInOne(t *testing.T) {
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	e := search.NewEngine()
	move, score := e.FindBestMove(context.Background(), pos, 2, 0)

	require.False(t, move.IsNull())
	assert.Equal(t, board.A1, move.From)
	assert.Equal(t, board.A8, move.To)
	assert.GreaterOrEqual(t, int(score), 19998)
}

// TestEngineFindBestMoveCancelViaContext verifies the external-cancel
// suspension point from spec.md §5: cancelling ctx, not just the wall-clock
// deadline, must stop an in-flight search and still return the best move
// found at the last fully completed depth. depthLimit=0 and timeBudgetMs=0
// disable both ply and time bounds, so only ctx cancellation can end this
// call.
func TestEngineFindBestMoveCancelViaContext(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	e := search.NewEngine()
	move, _ := e.FindBestMove(ctx, pos, 0, 0)

	require.False(t, move.IsNull())
	var gen board.MoveGenerator
	assert.True(t, gen.Legal(pos, move))
	assert.Greater(t, e.LastPV().Depth, 0)
}

func TestEngineFindBestMoveRespectsDepthLimitOne(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := search.NewEngine()
	move, _ := e.FindBestMove(context.Background(), pos, 1, 0)

	require.False(t, move.IsNull())
	var gen board.MoveGenerator
	assert.True(t, gen.Legal(pos, move))
}

func TestEngineFindBestMoveWithTimeBudgetStillReturnsAMove(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := search.NewEngine()
	move, _ := e.FindBestMove(context.Background(), pos, 0, 50)

	require.False(t, move.IsNull())
	var gen board.MoveGenerator
	assert.True(t, gen.Legal(pos, move))
}

func TestEngineFindBestMoveReportsPV(t *testing.T) {
	pos, err := fen.Decode("6k1/8/6K1/8/8/8/8/3R4 w - - 0 1")
	require.NoError(t, err)

	e := search.NewEngine()
	e.FindBestMove(context.Background(), pos, 4, 0)

	pv := e.LastPV()
	assert.Greater(t, pv.Depth, 0)
	assert.Greater(t, pv.Nodes, uint64(0))
	require.NotEmpty(t, pv.Moves)
	assert.Equal(t, board.D1, pv.Moves[0].From)
	assert.Equal(t, board.D8, pv.Moves[0].To)
}

func TestEngineResetClearsLastPV(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := search.NewEngine()
	e.FindBestMove(context.Background(), pos, 2, 0)
	require.Greater(t, e.LastPV().Depth, 0)

	e.Reset()
	assert.Equal(t, 0, e.LastPV().Depth)
}

func TestEngineResetClearsTranspositionTable(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := search.NewEngine()
	e.FindBestMove(context.Background(), pos, 2, 0)
	assert.Greater(t, e.TT.Used(), 0.0)

	e.Reset()
	assert.Equal(t, 0.0, e.TT.Used())
}
