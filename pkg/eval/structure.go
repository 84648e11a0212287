package eval

import "github.com/arbiter-chess/engine/pkg/board"

const (
	doubledPawnPenalty  = 10
	isolatedPawnPenalty = 15
)

// pawnStructureScore penalizes doubled and isolated pawns, from White's
// perspective (a White penalty subtracts, a Black penalty adds).
func pawnStructureScore(pos *board.Position) int {
	var files [board.NumColors][8]int
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.Type == board.Pawn {
			files[pc.Color][sq.File()]++
		}
	}

	total := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		sign := 1
		if c == board.Black {
			sign = -1
		}

		for f := 0; f < 8; f++ {
			n := files[c][f]
			if n == 0 {
				continue
			}
			if n > 1 {
				total -= sign * doubledPawnPenalty * (n - 1)
			}

			hasLeft := f > 0 && files[c][f-1] > 0
			hasRight := f < 7 && files[c][f+1] > 0
			if !hasLeft && !hasRight {
				total -= sign * isolatedPawnPenalty * n
			}
		}
	}
	return total
}
