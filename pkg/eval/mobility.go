package eval

import "github.com/arbiter-chess/engine/pkg/board"

// mobilityScore is (white pseudo-legal moves − black pseudo-legal moves) × 2,
// from White's perspective.
func mobilityScore(pos *board.Position) int {
	var g board.MoveGenerator
	white := g.CountMoves(pos, board.White)
	black := g.CountMoves(pos, board.Black)
	return (white - black) * 2
}
