package board_test

import (
	"testing"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft counts the leaf positions reachable in exactly depth plies, exercising
// Make/Unmake and the move generator together.
func perft(t *testing.T, pos *board.Position, depth int) int {
	t.Helper()
	var g board.MoveGenerator
	if depth == 0 {
		return 1
	}

	nodes := 0
	for _, m := range g.GenerateLegal(pos) {
		before := snapshot(pos)

		pos.Make(m)
		nodes += perft(t, pos, depth-1)
		pos.Unmake()

		assert.Equal(t, before, snapshot(pos), "Unmake did not restore position after %v", m)
	}
	return nodes
}

func snapshot(pos *board.Position) string {
	return fen.Encode(pos)
}

func TestPerftStartPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth    int
		expected int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, perft(t, pos, tt.depth), "depth %v", tt.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	tests := []struct {
		depth    int
		expected int
	}{
		{1, 48},
		{2, 2039},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, perft(t, pos, tt.depth), "depth %v", tt.depth)
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"}
	var g board.MoveGenerator

	var history []*board.Position
	for _, uci := range moves {
		before := fen.Encode(pos)
		m, ok := g.ResolveUCI(pos, uci)
		require.True(t, ok, "move %v should be legal", uci)

		snap, err := fen.Decode(before)
		require.NoError(t, err)
		history = append(history, snap)

		pos.Make(m)
	}

	for i := len(moves) - 1; i >= 0; i-- {
		pos.Unmake()
		assert.True(t, pos.Equals(history[i]), "position after unmaking move %v did not match", moves[i])
	}
}

func TestCastlingRightsUpdateOnRookCapture(t *testing.T) {
	// Black rook on a8 is about to be captured by a white rook; white should
	// lose nothing, but black's queen-side castling right must be revoked.
	pos, err := fen.Decode("r3k3/8/8/8/8/8/8/R3K3 w q - 0 1")
	require.NoError(t, err)

	var g board.MoveGenerator
	m, ok := g.ResolveUCI(pos, "a1a8")
	require.True(t, ok)

	pos.Make(m)
	assert.False(t, pos.Castling().IsAllowed(board.BlackQueenSideCastle))

	pos.Unmake()
	assert.True(t, pos.Castling().IsAllowed(board.BlackQueenSideCastle))
}

func TestEnPassantTargetClearedAfterOneMove(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var g board.MoveGenerator
	m, ok := g.ResolveUCI(pos, "e2e4")
	require.True(t, ok)
	pos.Make(m)

	sq, present := pos.EnPassant()
	assert.True(t, present)
	assert.Equal(t, board.E3, sq)

	// A reply that is not a further double push clears the target.
	m2, ok := g.ResolveUCI(pos, "b8c6")
	require.True(t, ok)
	pos.Make(m2)

	_, present = pos.EnPassant()
	assert.False(t, present)
}

func TestCheckmateFoolsMate(t *testing.T) {
	pos, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	var g board.MoveGenerator
	assert.True(t, g.IsCheckmate(pos))
	assert.False(t, g.IsStalemate(pos))
}

func TestStalemate(t *testing.T) {
	pos, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	var g board.MoveGenerator
	assert.False(t, g.IsCheckmate(pos))
	assert.True(t, g.IsStalemate(pos))
}

func TestIsDrawByMaterial(t *testing.T) {
	tests := []struct {
		fen      string
		expected bool
	}{
		{"8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},         // K vs K
		{"8/8/4k3/8/8/4KN2/8/8 w - - 0 1", true},         // K+N vs K
		{"8/8/4k3/8/8/4KB2/8/8 w - - 0 1", true},         // K+B vs K
		{"8/8/4kb2/8/8/4KB2/8/8 w - - 0 1", true},         // K+B vs K+B
		{"8/8/4kr2/8/8/4KB2/8/8 w - - 0 1", false},        // rook on board
		{"8/8/4kn2/8/8/4KBN1/8/8 w - - 0 1", false},       // too much material
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		var g board.MoveGenerator
		assert.Equal(t, tt.expected, g.IsDrawByMaterial(pos), tt.fen)
	}
}

func TestIsRepetitionDetectsThreefold(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var g board.MoveGenerator
	shuttle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	assert.False(t, pos.IsRepetition())

	// First cycle returns to the start position (occurrence #2).
	for _, uci := range shuttle {
		m, ok := g.ResolveUCI(pos, uci)
		require.True(t, ok, uci)
		pos.Make(m)
	}
	assert.False(t, pos.IsRepetition())

	// Second cycle returns to the start position again (occurrence #3).
	for _, uci := range shuttle {
		m, ok := g.ResolveUCI(pos, uci)
		require.True(t, ok, uci)
		pos.Make(m)
	}
	assert.True(t, pos.IsRepetition())
}

func TestIsDrawByNoProgressAtHundredHalfmoves(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 99 50")
	require.NoError(t, err)
	assert.False(t, pos.IsDrawByNoProgress())

	var g board.MoveGenerator
	m, ok := g.ResolveUCI(pos, "e1d1")
	require.True(t, ok)
	pos.Make(m)
	assert.True(t, pos.IsDrawByNoProgress())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		fen      string
		expected board.Result
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", board.Undecided},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", board.BlackWins}, // fool's mate
		{"7k/8/6QK/8/8/8/8/8 b - - 0 1", board.Draw},                                      // stalemate
		{"8/8/4k3/8/8/4K3/8/8 w - - 0 1", board.Draw},                                     // insufficient material
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		var g board.MoveGenerator
		assert.Equal(t, tt.expected, g.Outcome(pos), tt.fen)
	}
}

// TestEnPassantCaptureLiteralLine plays 1. e4 a6 2. e5 d5 and checks that
// e5d6 (en-passant) is legal and lands on the exact resulting FEN.
func TestEnPassantCaptureLiteralLine(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var g board.MoveGenerator
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, ok := g.ResolveUCI(pos, uci)
		require.True(t, ok, uci)
		pos.Make(m)
	}

	m, ok := g.ResolveUCI(pos, "e5d6")
	require.True(t, ok, "e5d6 should be the legal en-passant capture")
	assert.Equal(t, board.EnPassant, m.Flag)

	pos.Make(m)
	assert.Equal(t, "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3", fen.Encode(pos))
}

// TestCastlingBlockedByAttackOnOriginSquare: with the white king on e1 and a
// black rook on the e-file giving check, king-side castling is not in the
// legal set -- the king may not castle out of check, matching spec.md's
// "e1g1 is NOT in the legal set" scenario.
func TestCastlingBlockedByAttackOnOriginSquare(t *testing.T) {
	pos, err := fen.Decode("4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	var g board.MoveGenerator
	assert.False(t, g.Legal(pos, board.Move{From: board.E1, To: board.G1, Flag: board.KingCastle}))

	for _, m := range g.GenerateLegal(pos) {
		assert.False(t, m.Flag == board.KingCastle, "king-castle should not be generated while in check")
	}
}
