package board

// Attack Oracle: decides whether a given square is attacked by a given
// color, without regard to what (if anything) currently sits on that
// square. Used by check detection, castling legality and king safety.

type offset struct{ df, dr int8 }

var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8]offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4]offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func addOffset(sq Square, o offset) (Square, bool) {
	f := int8(sq.File()) + o.df
	r := int8(sq.Rank()) + o.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(File(f), Rank(r)), true
}

// Attacked returns true iff any piece of by belongs to an attack on sq. The
// piece (if any) currently on sq is not considered; it asks only "could by
// capture here".
func Attacked(p *Position, sq Square, by Color) bool {
	// Pawns: probe the two squares from which an enemy pawn could capture onto sq.
	var pawnRank Rank
	if by == White {
		pawnRank = sq.Rank() - 1
	} else {
		pawnRank = sq.Rank() + 1
	}
	if pawnRank.IsValid() {
		for _, df := range [2]int8{-1, 1} {
			f := int8(sq.File()) + df
			if f < 0 || f > 7 {
				continue
			}
			from := NewSquare(File(f), pawnRank)
			if pc := p.squares[from]; pc.Type == Pawn && pc.Color == by {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		if from, ok := addOffset(sq, o); ok {
			if pc := p.squares[from]; pc.Type == Knight && pc.Color == by {
				return true
			}
		}
	}

	for _, o := range kingOffsets {
		if from, ok := addOffset(sq, o); ok {
			if pc := p.squares[from]; pc.Type == King && pc.Color == by {
				return true
			}
		}
	}

	for _, d := range bishopDirs {
		if rayAttacked(p, sq, d, by, Bishop) {
			return true
		}
	}
	for _, d := range rookDirs {
		if rayAttacked(p, sq, d, by, Rook) {
			return true
		}
	}
	return false
}

// rayAttacked walks from sq in direction d until blocked, reporting whether
// the first occupied square is an enemy piece of kind (or the queen, which
// attacks along both ray families).
func rayAttacked(p *Position, sq Square, d offset, by Color, kind PieceType) bool {
	cur := sq
	for {
		next, ok := addOffset(cur, d)
		if !ok {
			return false
		}
		pc := p.squares[next]
		if pc.IsEmpty() {
			cur = next
			continue
		}
		return pc.Color == by && (pc.Type == kind || pc.Type == Queen)
	}
}
