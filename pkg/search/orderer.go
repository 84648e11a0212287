package search

import (
	"github.com/arbiter-chess/engine/pkg/board"
)

const (
	winningCapture   = 8000
	equalCapture     = 7000
	losingSafeBase   = 7000
	losingUnsafeBase = 1000
	promotionScore   = 6000
	queenPromoBonus  = 1000
	castleScore      = 4000
	killerScore      = 5000
)

// OrderMoves sorts moves, highest priority first, per the scoring rules: the
// TT move unconditionally first, then captures (MVV-LVA plus a simplified
// SEE for losing trades), promotions, castles, killer moves, history, and a
// small positional bias. Uses the move priority queue for the actual
// ordering; moves is drained into a fresh, sorted slice and returned.
func OrderMoves(pos *board.Position, moves []board.Move, ttMove board.Move, ply int, killers *killerTable, history *historyTable) []board.Move {
	fn := board.First(ttMove, func(m board.Move) board.MovePriority {
		return board.MovePriority(moveScore(pos, m, ply, killers, history))
	})

	list := board.NewMoveList(moves, fn)
	ordered := make([]board.Move, 0, len(moves))
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		ordered = append(ordered, m)
	}
	return ordered
}

func moveScore(pos *board.Position, m board.Move, ply int, killers *killerTable, history *historyTable) int {
	score := 0
	mover := pos.PieceAt(m.From)

	switch {
	case m.IsCapture():
		victim := m.Capture.NominalValue()
		attacker := mover.Type.NominalValue()
		switch {
		case victim > attacker:
			score = winningCapture + victim - attacker
		case victim == attacker:
			score = equalCapture
		default:
			delta := victim - attacker
			if seeSafe(pos, m) {
				score = losingSafeBase + delta
			} else {
				score = losingUnsafeBase + delta
			}
		}
	case m.IsPromotion():
		score = promotionScore
		if m.Flag.PromotionType() == board.Queen {
			score += queenPromoBonus
		}
	case m.Flag == board.KingCastle, m.Flag == board.QueenCastle:
		score = castleScore
	}

	if killers.Match(ply, m) {
		score += killerScore
	}
	score += history.Score(pos.SideToMove(), m, mover.Type)
	score += positionalBias(pos, m)
	return score
}

// seeSafe implements the spec's simplified static-exchange check: make the
// move, ask the attack oracle whether the destination is still attacked by
// the opponent, unmake.
func seeSafe(pos *board.Position, m board.Move) bool {
	mover := pos.SideToMove()
	pos.Make(m)
	safe := !board.Attacked(pos, m.To, mover.Opponent())
	pos.Unmake()
	return safe
}

// positionalBias is a small additive nudge (at most ~30 total) toward
// central destinations, developing minor pieces off the back rank, and
// moves that attack an enemy piece.
func positionalBias(pos *board.Position, m board.Move) int {
	bonus := 0

	switch centerDistance(m.To) {
	case 0:
		bonus += 10
	case 1:
		bonus += 5
	}

	mover := pos.PieceAt(m.From)
	if mover.Type == board.Knight || mover.Type == board.Bishop {
		backRank := board.Rank1
		if mover.Color == board.Black {
			backRank = board.Rank8
		}
		if m.From.Rank() == backRank && m.To.Rank() != backRank {
			bonus += 10
		}
	}

	if attacksEnemyPiece(pos, m.To, mover) {
		bonus += 10
	}
	return bonus
}

// centerDistance returns 0 for the central 2x2 (d4/d5/e4/e5), 1 for the
// surrounding ring, and 2 otherwise.
func centerDistance(sq board.Square) int {
	df := int(sq.File()) - 4
	if df < 0 {
		df = -df - 1
	}
	dr := int(sq.Rank()) - 4
	if dr < 0 {
		dr = -dr - 1
	}
	d := df
	if dr > d {
		d = dr
	}
	switch {
	case d == 0:
		return 0
	case d == 1:
		return 1
	default:
		return 2
	}
}

type dir struct{ df, dr int8 }

var orderKnightOffsets = [8]dir{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
var orderKingOffsets = [8]dir{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}
var orderBishopDirs = [4]dir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orderRookDirs = [4]dir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// attacksEnemyPiece is a cheap, approximate check -- used only for move
// ordering, not legality -- of whether the piece now standing on to would
// attack an enemy piece from there.
func attacksEnemyPiece(pos *board.Position, to board.Square, mover board.Piece) bool {
	switch mover.Type {
	case board.Knight:
		for _, o := range orderKnightOffsets {
			if sq, ok := addDir(to, o); ok && isEnemyAt(pos, sq, mover.Color) {
				return true
			}
		}
	case board.King:
		for _, o := range orderKingOffsets {
			if sq, ok := addDir(to, o); ok && isEnemyAt(pos, sq, mover.Color) {
				return true
			}
		}
	case board.Pawn:
		df := int8(1)
		if mover.Color == board.Black {
			df = -1
		}
		for _, o := range [2]dir{{-1, df}, {1, df}} {
			if sq, ok := addDir(to, o); ok && isEnemyAt(pos, sq, mover.Color) {
				return true
			}
		}
	case board.Bishop, board.Rook, board.Queen:
		dirs := orderBishopDirs[:]
		if mover.Type == board.Rook {
			dirs = orderRookDirs[:]
		}
		if mover.Type == board.Queen {
			if rayHitsEnemy(pos, to, orderBishopDirs[:], mover.Color) || rayHitsEnemy(pos, to, orderRookDirs[:], mover.Color) {
				return true
			}
			return false
		}
		return rayHitsEnemy(pos, to, dirs, mover.Color)
	}
	return false
}

func rayHitsEnemy(pos *board.Position, from board.Square, dirs []dir, mover board.Color) bool {
	for _, d := range dirs {
		cur := from
		for {
			sq, ok := addDir(cur, d)
			if !ok {
				break
			}
			pc := pos.PieceAt(sq)
			if pc.IsEmpty() {
				cur = sq
				continue
			}
			if pc.Color != mover {
				return true
			}
			break
		}
	}
	return false
}

func addDir(sq board.Square, o dir) (board.Square, bool) {
	f := int8(sq.File()) + o.df
	r := int8(sq.Rank()) + o.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return board.NoSquare, false
	}
	return board.NewSquare(board.File(f), board.Rank(r)), true
}

func isEnemyAt(pos *board.Position, sq board.Square, mover board.Color) bool {
	pc := pos.PieceAt(sq)
	return !pc.IsEmpty() && pc.Color != mover
}
