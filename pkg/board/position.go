package board

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by TryMake when the given move is not in the
// position's legal move set.
var ErrIllegalMove = errors.New("illegal move")

// Placement describes a single piece placement, used to build a Position.
type Placement struct {
	Square Square
	Color  Color
	Type   PieceType
}

// undoState is the delta needed to invert exactly one make (or make-null).
type undoState struct {
	move       Move
	mover      Color
	moved      Piece // piece as it stood on move.From before the move
	captured   Piece
	capturedAt Square

	castling Castling
	ep       Square
	halfmove int
	fullmove int
	kingSq   [NumColors]Square
	key      ZobristHash
}

// Position represents a chess board: piece placement, side to move, castling
// rights, en-passant target, clocks and cached king squares. It is mutated
// exclusively through Make/Unmake/MakeNull/UnmakeNull and is never shared
// across goroutines.
type Position struct {
	squares  [64]Piece
	turn     Color
	castling Castling
	ep       Square // NoSquare if none
	halfmove int    // halfmoves since last pawn move or capture
	fullmove int    // starts at 1, incremented after Black's move

	kingSq [NumColors]Square
	key    ZobristHash

	undo []undoState

	// keyHistory records every position key the game has passed through,
	// starting with the position's own construction and growing by one on
	// every Make, oldest first. MakeNull does not push here: a null move is
	// a search-only artifice, never part of the game's actual repetition
	// history.
	keyHistory []ZobristHash
}

// NewPosition builds a position from an explicit piece placement. Fails if
// the placement does not have exactly one king per color.
func NewPosition(pieces []Placement, turn Color, castling Castling, ep Square, halfmove, fullmove int) (*Position, error) {
	p := &Position{turn: turn, castling: castling, ep: ep, halfmove: halfmove, fullmove: fullmove}
	for i := range p.squares {
		p.squares[i] = NoPiece
	}
	p.kingSq[White] = NoSquare
	p.kingSq[Black] = NoSquare

	for _, pl := range pieces {
		if !p.squares[pl.Square].IsEmpty() {
			return nil, fmt.Errorf("duplicate placement at %v", pl.Square)
		}
		piece := Piece{Type: pl.Type, Color: pl.Color}
		p.squares[pl.Square] = piece
		if pl.Type == King {
			p.kingSq[pl.Color] = pl.Square
		}
	}

	if p.kingSq[White] == NoSquare || p.kingSq[Black] == NoSquare {
		return nil, fmt.Errorf("invalid number of kings")
	}

	p.key = computeKey(&p.squares, p.turn, p.castling, p.ep)
	p.keyHistory = append(p.keyHistory, p.key)
	return p, nil
}

func (p *Position) PieceAt(sq Square) Piece {
	return p.squares[sq]
}

func (p *Position) IsEmpty(sq Square) bool {
	return p.squares[sq].IsEmpty()
}

func (p *Position) SideToMove() Color {
	return p.turn
}

func (p *Position) Castling() Castling {
	return p.castling
}

// EnPassant returns the en-passant target square and whether one is set.
func (p *Position) EnPassant() (Square, bool) {
	return p.ep, p.ep != NoSquare
}

func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// IsDrawByNoProgress reports whether 100 halfmoves (50 full moves) have
// passed since the last pawn move or capture.
func (p *Position) IsDrawByNoProgress() bool {
	return p.halfmove >= 100
}

// IsRepetition reports whether the current position has now occurred three
// times across the game's move history (including its very first
// appearance), i.e. a threefold repetition.
func (p *Position) IsRepetition() bool {
	count := 0
	for _, k := range p.keyHistory {
		if k == p.key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

func (p *Position) FullmoveNumber() int {
	return p.fullmove
}

func (p *Position) KingSquare(c Color) Square {
	return p.kingSq[c]
}

func (p *Position) Key() ZobristHash {
	return p.key
}

// InCheck reports whether the given color's king is attacked.
func (p *Position) InCheck(c Color) bool {
	return Attacked(p, p.kingSq[c], c.Opponent())
}

// Equals compares two positions field by field, excluding the undo stack.
// Used to validate the make/unmake round-trip invariant.
func (p *Position) Equals(o *Position) bool {
	return p.squares == o.squares &&
		p.turn == o.turn &&
		p.castling == o.castling &&
		p.ep == o.ep &&
		p.halfmove == o.halfmove &&
		p.fullmove == o.fullmove &&
		p.kingSq == o.kingSq &&
		p.key == o.key
}

func (p *Position) clearSquare(sq Square) {
	if pc := p.squares[sq]; !pc.IsEmpty() {
		p.key ^= zobrist.pieces[pc.Color][pc.Type][sq]
		p.squares[sq] = NoPiece
	}
}

func (p *Position) setSquare(sq Square, pc Piece) {
	p.squares[sq] = pc
	p.key ^= zobrist.pieces[pc.Color][pc.Type][sq]
	if pc.Type == King {
		p.kingSq[pc.Color] = sq
	}
}

// castlingRookSquares returns the rook's home and destination square for a
// castling move by the given color and side (true == king-side).
func castlingRookSquares(c Color, kingSide bool) (from, to Square) {
	switch {
	case c == White && kingSide:
		return H1, F1
	case c == White && !kingSide:
		return A1, D1
	case c == Black && kingSide:
		return H8, F8
	default:
		return A8, D8
	}
}

var cornerRight = map[Square]Castling{
	A1: WhiteQueenSideCastle,
	H1: WhiteKingSideCastle,
	A8: BlackQueenSideCastle,
	H8: BlackKingSideCastle,
}

func (p *Position) updateCastlingRights(m Move, moved Piece) {
	if moved.Type == King {
		if moved.Color == White {
			p.castling = p.castling.Without(WhiteKingSideCastle | WhiteQueenSideCastle)
		} else {
			p.castling = p.castling.Without(BlackKingSideCastle | BlackQueenSideCastle)
		}
	}
	if right, ok := cornerRight[m.From]; ok {
		p.castling = p.castling.Without(right)
	}
	if right, ok := cornerRight[m.To]; ok {
		p.castling = p.castling.Without(right)
	}
}

func midRank(from, to Rank) Rank {
	return Rank((int8(from) + int8(to)) / 2)
}

// Make applies a move to the position, pushing an undo record. The caller is
// responsible for ensuring the move is legal (e.g. produced by
// GenerateLegal) -- Make itself does not re-validate pseudo-legality or king
// safety, matching the pseudocode in the search driver which always calls
// Make on moves already drawn from the legal set. External callers that
// cannot make that guarantee should use TryMake.
func (p *Position) Make(m Move) {
	mover := p.turn
	moved := p.squares[m.From]

	var captured Piece
	capturedAt := NoSquare
	switch {
	case m.Flag == EnPassant:
		capturedAt = NewSquare(m.To.File(), m.From.Rank())
		captured = p.squares[capturedAt]
	case m.Flag.IsCapture():
		capturedAt = m.To
		captured = p.squares[m.To]
	}

	p.undo = append(p.undo, undoState{
		move: m, mover: mover, moved: moved, captured: captured, capturedAt: capturedAt,
		castling: p.castling, ep: p.ep, halfmove: p.halfmove, fullmove: p.fullmove,
		kingSq: p.kingSq, key: p.key,
	})

	if p.ep != NoSquare {
		p.key ^= zobrist.epFile[p.ep.File()]
	}
	p.key ^= zobrist.castling[p.castling]

	switch m.Flag {
	case KingCastle, QueenCastle:
		rookFrom, rookTo := castlingRookSquares(mover, m.Flag == KingCastle)
		p.clearSquare(m.From)
		p.setSquare(m.To, moved)
		rook := p.squares[rookFrom]
		p.clearSquare(rookFrom)
		p.setSquare(rookTo, rook)
	case EnPassant:
		p.clearSquare(capturedAt)
		p.clearSquare(m.From)
		p.setSquare(m.To, moved)
	default:
		if promo := m.Flag.PromotionType(); promo != NoPieceType {
			p.clearSquare(m.To)
			p.clearSquare(m.From)
			p.setSquare(m.To, Piece{Type: promo, Color: mover})
		} else {
			p.clearSquare(m.To)
			p.clearSquare(m.From)
			p.setSquare(m.To, moved)
		}
	}

	p.updateCastlingRights(m, moved)
	p.key ^= zobrist.castling[p.castling]

	if m.Flag == DoublePawnPush {
		p.ep = NewSquare(m.From.File(), midRank(m.From.Rank(), m.To.Rank()))
		p.key ^= zobrist.epFile[p.ep.File()]
	} else {
		p.ep = NoSquare
	}

	if moved.Type == Pawn || m.Flag.IsCapture() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	if mover == Black {
		p.fullmove++
	}

	p.turn = mover.Opponent()
	p.key ^= zobrist.turn

	p.keyHistory = append(p.keyHistory, p.key)
}

// TryMake is the checked counterpart to Make: it verifies m is legal before
// applying it, returning ErrIllegalMove otherwise. Intended for external
// callers (UCI/CLI input); the search driver uses the unchecked Make on
// moves it has already generated.
func (p *Position) TryMake(m Move) error {
	var g MoveGenerator
	if !g.Legal(p, m) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	p.Make(m)
	return nil
}

// Unmake reverts the most recent Make. Panics if there is nothing to unmake;
// callers must pair every Make with exactly one Unmake (LIFO).
func (p *Position) Unmake() {
	n := len(p.undo)
	e := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	p.turn = e.mover
	p.castling = e.castling
	p.ep = e.ep
	p.halfmove = e.halfmove
	p.fullmove = e.fullmove
	p.kingSq = e.kingSq
	p.key = e.key

	switch e.move.Flag {
	case KingCastle, QueenCastle:
		rookFrom, rookTo := castlingRookSquares(e.mover, e.move.Flag == KingCastle)
		p.squares[e.move.To] = NoPiece
		p.squares[rookTo] = NoPiece
		p.squares[e.move.From] = e.moved
		p.squares[rookFrom] = Piece{Type: Rook, Color: e.mover}
	case EnPassant:
		p.squares[e.move.To] = NoPiece
		p.squares[e.move.From] = e.moved
		p.squares[e.capturedAt] = e.captured
	default:
		p.squares[e.move.To] = e.captured
		p.squares[e.move.From] = e.moved
	}
}

// MakeNull passes the move to the opponent without changing the board. Used
// only by null-move pruning in search; never a legal chess move.
func (p *Position) MakeNull() {
	p.undo = append(p.undo, undoState{
		move: NullMove, mover: p.turn,
		castling: p.castling, ep: p.ep, halfmove: p.halfmove, fullmove: p.fullmove,
		kingSq: p.kingSq, key: p.key,
	})

	if p.ep != NoSquare {
		p.key ^= zobrist.epFile[p.ep.File()]
		p.ep = NoSquare
	}
	p.halfmove++
	if p.turn == Black {
		p.fullmove++
	}
	p.turn = p.turn.Opponent()
	p.key ^= zobrist.turn
}

func (p *Position) UnmakeNull() {
	n := len(p.undo)
	e := p.undo[n-1]
	p.undo = p.undo[:n-1]

	p.turn = e.mover
	p.castling = e.castling
	p.ep = e.ep
	p.halfmove = e.halfmove
	p.fullmove = e.fullmove
	p.kingSq = e.kingSq
	p.key = e.key
}

func (p *Position) String() string {
	var s string
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			s += p.squares[NewSquare(f, r)].String()
		}
		if r == Rank1 {
			break
		}
		s += "/"
	}
	return fmt.Sprintf("%v %v %v (%v)", s, p.turn, p.castling, p.ep)
}
