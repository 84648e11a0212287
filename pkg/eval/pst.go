package eval

import "github.com/arbiter-chess/engine/pkg/board"

// Piece-square tables bias material toward squares that are good for that
// piece: central knights, developed bishops, rooks on the 7th, a tucked-away
// king in the middlegame and a centralized one in the endgame. Values are
// small centipawn nudges, not a replacement for material.
//
// Each table below is written the way such tables are conventionally
// printed -- rank 8 first, rank 1 last, file a to h left to right -- and
// converted once at package init into a Square-indexed array.

var (
	pawnPST   = buildPST(pawnGrid)
	knightPST = buildPST(knightGrid)
	bishopPST = buildPST(bishopGrid)
	rookPST   = buildPST(rookGrid)
	queenPST  = buildPST(queenGrid)
	kingMgPST = buildPST(kingMgGrid)
	kingEgPST = buildPST(kingEgGrid)
)

var pawnGrid = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{30, 30, 30, 30, 30, 30, 30, 30},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightGrid = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopGrid = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookGrid = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenGrid = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingMgGrid = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var kingEgGrid = [8][8]int{
	{-50, -40, -30, -20, -20, -30, -40, -50},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-50, -30, -30, -30, -30, -30, -30, -50},
}

// buildPST converts a rank8-first visual grid into a Square-indexed table.
func buildPST(grid [8][8]int) [64]int {
	var t [64]int
	for row := 0; row < 8; row++ {
		rank := board.Rank(7 - row)
		for col := 0; col < 8; col++ {
			file := board.File(col)
			t[board.NewSquare(file, rank)] = grid[row][col]
		}
	}
	return t
}

// mirror flips a square vertically, turning White's table index into the
// corresponding index for Black (tables are authored for White and read
// upside-down for Black).
func mirror(sq board.Square) board.Square {
	return board.NewSquare(sq.File(), board.Rank(7-int8(sq.Rank())))
}

// isEndgame picks the king table: true once material is sparse enough that
// king activity (not safety) starts to matter.
func isEndgame(pos *board.Position) bool {
	nonKing := 0
	queens := false
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() || pc.Type == board.King {
			continue
		}
		nonKing++
		if pc.Type == board.Queen {
			queens = true
		}
	}
	return nonKing <= 12 || !queens
}

// pieceSquareScore returns the signed piece-square bias, from White's
// perspective. The king term uses kingMgPST or kingEgPST depending on
// isEndgame, and that single choice is shared between the middlegame and
// endgame accumulators in Evaluate -- the continuous mg/eg taper is applied
// to the combined per-term totals, not to this term individually.
func pieceSquareScore(pos *board.Position) int {
	endgame := isEndgame(pos)

	total := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}

		idx := sq
		if pc.Color == board.Black {
			idx = mirror(sq)
		}

		var v int
		switch pc.Type {
		case board.Pawn:
			v = pawnPST[idx]
		case board.Knight:
			v = knightPST[idx]
		case board.Bishop:
			v = bishopPST[idx]
		case board.Rook:
			v = rookPST[idx]
		case board.Queen:
			v = queenPST[idx]
		case board.King:
			if endgame {
				v = kingEgPST[idx]
			} else {
				v = kingMgPST[idx]
			}
		}

		if pc.Color == board.Black {
			v = -v
		}
		total += v
	}
	return total
}
