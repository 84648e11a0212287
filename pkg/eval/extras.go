package eval

import "github.com/arbiter-chess/engine/pkg/board"

const (
	bishopPairBonus      = 30
	rookOpenFileBonus    = 15
	rookSemiOpenFileBonus = 7
	passedPawnBase       = 20
	passedPawnPerRank    = 2
)

// extrasScore combines the bishop pair, rook-on-open-file and passed-pawn
// bonuses, from White's perspective.
func extrasScore(pos *board.Position) int {
	return bishopPairScore(pos) + rookFileScore(pos) + passedPawnScore(pos)
}

func bishopPairScore(pos *board.Position) int {
	var light, dark [board.NumColors]int
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.Type != board.Bishop {
			continue
		}
		if squareIsLight(sq) {
			light[pc.Color]++
		} else {
			dark[pc.Color]++
		}
	}

	total := 0
	if light[board.White] > 0 && dark[board.White] > 0 {
		total += bishopPairBonus
	}
	if light[board.Black] > 0 && dark[board.Black] > 0 {
		total -= bishopPairBonus
	}
	return total
}

func squareIsLight(sq board.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}

func rookFileScore(pos *board.Position) int {
	var pawnFiles [board.NumColors][8]int
	var rookFiles [board.NumColors][8]int
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		switch pc.Type {
		case board.Pawn:
			pawnFiles[pc.Color][sq.File()]++
		case board.Rook:
			rookFiles[pc.Color][sq.File()]++
		}
	}

	total := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		sign := 1
		if c == board.Black {
			sign = -1
		}
		opp := c.Opponent()

		for f := 0; f < 8; f++ {
			if rookFiles[c][f] == 0 {
				continue
			}
			own := pawnFiles[c][f] > 0
			enemy := pawnFiles[opp][f] > 0
			switch {
			case !own && !enemy:
				total += sign * rookOpenFileBonus * rookFiles[c][f]
			case !own && enemy:
				total += sign * rookSemiOpenFileBonus * rookFiles[c][f]
			}
		}
	}
	return total
}

func passedPawnScore(pos *board.Position) int {
	var pawnFiles [board.NumColors][8][]board.Rank
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.Type == board.Pawn {
			pawnFiles[pc.Color][sq.File()] = append(pawnFiles[pc.Color][sq.File()], sq.Rank())
		}
	}

	total := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		if pc.Type != board.Pawn {
			continue
		}
		if !isPassed(pawnFiles, pc.Color, sq) {
			continue
		}

		var advanced int
		if pc.Color == board.White {
			advanced = int(sq.Rank()) - 1
		} else {
			advanced = 6 - int(sq.Rank())
		}
		if advanced < 0 {
			advanced = 0
		}

		bonus := passedPawnBase + passedPawnPerRank*advanced
		if pc.Color == board.Black {
			bonus = -bonus
		}
		total += bonus
	}
	return total
}

// isPassed reports whether the pawn at sq has no enemy pawn on its own or
// adjacent files between it and the promotion rank.
func isPassed(pawnFiles [board.NumColors][8][]board.Rank, c board.Color, sq board.Square) bool {
	opp := c.Opponent()
	file := int(sq.File())

	for df := -1; df <= 1; df++ {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		for _, r := range pawnFiles[opp][f] {
			if c == board.White && r > sq.Rank() {
				return false
			}
			if c == board.Black && r < sq.Rank() {
				return false
			}
		}
	}
	return true
}
