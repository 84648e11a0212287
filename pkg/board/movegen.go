package board

// MoveGenerator produces pseudo-legal and legal moves for a position. It is
// stateless; all methods operate directly on the given Position.
type MoveGenerator struct{}

// GenerateAll returns every pseudo-legal move for the side to move: moves
// that follow each piece's movement rules but may leave the mover's own king
// in check.
func (MoveGenerator) GenerateAll(p *Position) []Move {
	return generateForColor(p, p.turn)
}

// CountMoves returns the number of pseudo-legal moves available to color,
// whether or not it is that color's turn. Castling moves are counted only for
// the side to move. Used by the evaluator's mobility term, which compares
// both sides' mobility in the same position.
func (MoveGenerator) CountMoves(p *Position, color Color) int {
	return len(generateForColor(p, color))
}

func generateForColor(p *Position, turn Color) []Move {
	var moves []Move

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		pc := p.squares[sq]
		if pc.IsEmpty() || pc.Color != turn {
			continue
		}
		switch pc.Type {
		case Pawn:
			genPawnMoves(p, sq, turn, &moves)
		case Knight:
			genOffsetMoves(p, sq, turn, knightOffsets[:], &moves)
		case King:
			genOffsetMoves(p, sq, turn, kingOffsets[:], &moves)
		case Bishop:
			genRayMoves(p, sq, turn, bishopDirs[:], &moves)
		case Rook:
			genRayMoves(p, sq, turn, rookDirs[:], &moves)
		case Queen:
			genRayMoves(p, sq, turn, bishopDirs[:], &moves)
			genRayMoves(p, sq, turn, rookDirs[:], &moves)
		}
	}

	if turn == p.turn {
		genCastlingMoves(p, turn, &moves)
	}
	return moves
}

// GenerateLegal returns the pseudo-legal moves that do not leave the mover's
// own king in check.
func (MoveGenerator) GenerateLegal(p *Position) []Move {
	var g MoveGenerator
	all := g.GenerateAll(p)

	legal := make([]Move, 0, len(all))
	turn := p.turn
	for _, m := range all {
		p.Make(m)
		safe := !p.InCheck(turn)
		p.Unmake()
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateCaptures returns the legal captures and promotions only, for use
// by quiescence search.
func (MoveGenerator) GenerateCaptures(p *Position) []Move {
	var g MoveGenerator
	legal := g.GenerateLegal(p)

	captures := make([]Move, 0, len(legal))
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() {
			captures = append(captures, m)
		}
	}
	return captures
}

// Legal reports whether m is in the legal move set for p.
func (MoveGenerator) Legal(p *Position, m Move) bool {
	var g MoveGenerator
	for _, lm := range g.GenerateLegal(p) {
		if lm.Equals(m) && lm.Flag == m.Flag {
			return true
		}
	}
	return false
}

// ResolveUCI resolves the from/to/promotion triple of a UCI move string to
// the unique legal move with that shape, or returns NullMove, false if none
// matches (including when str itself is "0000").
func (MoveGenerator) ResolveUCI(p *Position, str string) (Move, bool) {
	parsed, err := ParseUCI(str)
	if err != nil || parsed.IsNull() {
		return NullMove, false
	}

	var g MoveGenerator
	for _, m := range g.GenerateLegal(p) {
		if m.From == parsed.From && m.To == parsed.To && m.Flag.PromotionType() == parsed.Flag.PromotionType() {
			return m, true
		}
	}
	return NullMove, false
}

// IsCheckmate reports whether the side to move is checkmated.
func (MoveGenerator) IsCheckmate(p *Position) bool {
	var g MoveGenerator
	return p.InCheck(p.turn) && len(g.GenerateLegal(p)) == 0
}

// IsStalemate reports whether the side to move is stalemated.
func (MoveGenerator) IsStalemate(p *Position) bool {
	var g MoveGenerator
	return !p.InCheck(p.turn) && len(g.GenerateLegal(p)) == 0
}

// IsDrawByMaterial reports true for K-vs-K, K+N-vs-K, K+B-vs-K and
// K+B-vs-K+B. The bishop case does not compare bishop square colors -- any
// K+B-vs-K+B is treated as drawn, matching the reference implementation this
// module is grounded on (see DESIGN.md Open Questions).
func (MoveGenerator) IsDrawByMaterial(p *Position) bool {
	var minor [NumColors]int // non-king, non-pawn piece count per color
	var bishops [NumColors]int

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		pc := p.squares[sq]
		if pc.IsEmpty() || pc.Type == King {
			continue
		}
		if pc.Type == Pawn || pc.Type == Rook || pc.Type == Queen {
			return false // any pawn, rook or queen rules out these draws
		}
		minor[pc.Color]++
		if pc.Type == Bishop {
			bishops[pc.Color]++
		}
	}

	total := minor[White] + minor[Black]
	switch {
	case total == 0:
		return true // K vs K
	case total == 1:
		return true // K+N vs K, or K+B vs K
	case total == 2 && bishops[White] == 1 && bishops[Black] == 1:
		return true // K+B vs K+B
	default:
		return false
	}
}

// Outcome classifies the position as a decided or undecided game result: a
// checkmate ends the game for the side delivering it, and a stalemate,
// insufficient-material, 50-move or threefold-repetition draw ends it with
// no winner; otherwise the game is undecided.
func (g MoveGenerator) Outcome(p *Position) Result {
	if len(g.GenerateLegal(p)) == 0 {
		if p.InCheck(p.turn) {
			if p.turn == White {
				return BlackWins
			}
			return WhiteWins
		}
		return Draw
	}
	if g.IsDrawByMaterial(p) || p.IsDrawByNoProgress() || p.IsRepetition() {
		return Draw
	}
	return Undecided
}

func genOffsetMoves(p *Position, sq Square, turn Color, offsets []offset, moves *[]Move) {
	for _, o := range offsets {
		to, ok := addOffset(sq, o)
		if !ok {
			continue
		}
		target := p.squares[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: sq, To: to, Flag: Quiet})
		} else if target.Color != turn {
			*moves = append(*moves, Move{From: sq, To: to, Flag: Capture, Capture: target.Type})
		}
	}
}

func genRayMoves(p *Position, sq Square, turn Color, dirs []offset, moves *[]Move) {
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := addOffset(cur, d)
			if !ok {
				break
			}
			target := p.squares[to]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: to, Flag: Quiet})
				cur = to
				continue
			}
			if target.Color != turn {
				*moves = append(*moves, Move{From: sq, To: to, Flag: Capture, Capture: target.Type})
			}
			break
		}
	}
}

func genPawnMoves(p *Position, sq Square, turn Color, moves *[]Move) {
	var dir int8 = 1
	promoRank := Rank8
	if turn == Black {
		dir = -1
		promoRank = Rank1
	}

	oneRank := Rank(int8(sq.Rank()) + dir)
	if oneRank.IsValid() {
		oneSq := NewSquare(sq.File(), oneRank)
		if p.squares[oneSq].IsEmpty() {
			addPawnMove(moves, sq, oneSq, promoRank, oneRank, Quiet, NoPieceType)

			startRank := Rank2
			if turn == Black {
				startRank = Rank7
			}
			if sq.Rank() == startRank {
				twoRank := Rank(int8(sq.Rank()) + 2*dir)
				twoSq := NewSquare(sq.File(), twoRank)
				if p.squares[twoSq].IsEmpty() {
					*moves = append(*moves, Move{From: sq, To: twoSq, Flag: DoublePawnPush})
				}
			}
		}

		for _, df := range [2]int8{-1, 1} {
			f := int8(sq.File()) + df
			if f < 0 || f > 7 {
				continue
			}
			capSq := NewSquare(File(f), oneRank)
			target := p.squares[capSq]
			if !target.IsEmpty() && target.Color != turn {
				addPawnMove(moves, sq, capSq, promoRank, oneRank, Capture, target.Type)
			} else if ep, ok := p.EnPassant(); ok && capSq == ep {
				*moves = append(*moves, Move{From: sq, To: capSq, Flag: EnPassant, Capture: Pawn})
			}
		}
	}
}

func addPawnMove(moves *[]Move, from, to Square, promoRank, targetRank Rank, flag MoveFlag, captured PieceType) {
	if targetRank == promoRank {
		capture := flag == Capture
		for _, promo := range [4]PieceType{Knight, Bishop, Rook, Queen} {
			*moves = append(*moves, Move{From: from, To: to, Flag: promotionFlag(promo, capture), Capture: captured})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Flag: flag, Capture: captured})
}

func genCastlingMoves(p *Position, turn Color, moves *[]Move) {
	opp := turn.Opponent()

	if turn == White {
		if p.castling.IsAllowed(WhiteKingSideCastle) &&
			p.squares[F1].IsEmpty() && p.squares[G1].IsEmpty() &&
			!Attacked(p, E1, opp) && !Attacked(p, F1, opp) && !Attacked(p, G1, opp) {
			*moves = append(*moves, Move{From: E1, To: G1, Flag: KingCastle})
		}
		if p.castling.IsAllowed(WhiteQueenSideCastle) &&
			p.squares[D1].IsEmpty() && p.squares[C1].IsEmpty() && p.squares[B1].IsEmpty() &&
			!Attacked(p, E1, opp) && !Attacked(p, D1, opp) && !Attacked(p, C1, opp) {
			*moves = append(*moves, Move{From: E1, To: C1, Flag: QueenCastle})
		}
	} else {
		if p.castling.IsAllowed(BlackKingSideCastle) &&
			p.squares[F8].IsEmpty() && p.squares[G8].IsEmpty() &&
			!Attacked(p, E8, opp) && !Attacked(p, F8, opp) && !Attacked(p, G8, opp) {
			*moves = append(*moves, Move{From: E8, To: G8, Flag: KingCastle})
		}
		if p.castling.IsAllowed(BlackQueenSideCastle) &&
			p.squares[D8].IsEmpty() && p.squares[C8].IsEmpty() && p.squares[B8].IsEmpty() &&
			!Attacked(p, E8, opp) && !Attacked(p, D8, opp) && !Attacked(p, C8, opp) {
			*moves = append(*moves, Move{From: E8, To: C8, Flag: QueenCastle})
		}
	}
}
