package eval

import "github.com/arbiter-chess/engine/pkg/board"

// materialScore is the signed sum of nominal piece values, from White's
// perspective. It uses board.PieceType.NominalValue, the same table the move
// orderer uses for MVV-LVA, so the two never disagree about what a piece is
// "worth".
func materialScore(pos *board.Position) int {
	total := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		v := pc.Type.NominalValue()
		if pc.Color == board.Black {
			v = -v
		}
		total += v
	}
	return total
}
