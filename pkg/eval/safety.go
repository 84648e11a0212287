package eval

import "github.com/arbiter-chess/engine/pkg/board"

const (
	kingAttackedPenalty = 50
	shieldPawnBonus     = 10
)

// kingSafetyScore penalizes an attacked king and rewards pawns sheltering it
// on the three squares one rank in front, from White's perspective.
func kingSafetyScore(pos *board.Position) int {
	total := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		sign := 1
		if c == board.Black {
			sign = -1
		}

		kingSq := pos.KingSquare(c)
		term := 0
		if board.Attacked(pos, kingSq, c.Opponent()) {
			term -= kingAttackedPenalty
		}
		term += shieldPawnBonus * shieldPawnCount(pos, kingSq, c)

		total += sign * term
	}
	return total
}

func shieldPawnCount(pos *board.Position, kingSq board.Square, c board.Color) int {
	dir := int8(1)
	if c == board.Black {
		dir = -1
	}
	rank := int8(kingSq.Rank()) + dir
	if rank < 0 || rank > 7 {
		return 0
	}

	count := 0
	for df := int8(-1); df <= 1; df++ {
		file := int8(kingSq.File()) + df
		if file < 0 || file > 7 {
			continue
		}
		pc := pos.PieceAt(board.NewSquare(board.File(file), board.Rank(rank)))
		if pc.Type == board.Pawn && pc.Color == c {
			count++
		}
	}
	return count
}
