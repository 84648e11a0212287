// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arbiter-chess/engine/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a FEN record into a Position.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Position, error) {
	// A FEN record contains six fields, separated by a single space.

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", fen)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	var pieces []board.Placement

	rank, file := board.Rank8, board.FileA
	for _, r := range []rune(parts[0]) {
		switch {
		case r == '/':
			if file != board.NumFiles {
				return nil, fmt.Errorf("invalid number of squares in rank in FEN: %q", fen)
			}
			rank--
			file = board.FileA

		case unicode.IsDigit(r):
			// Blank squares are noted using digits 1 through 8 (the number of blank squares).
			file += board.File(r - '0')

		case unicode.IsLetter(r):
			// Following Standard Algebraic Notation, each piece is identified by a
			// single letter: pawn="P", knight="N", bishop="B", rook="R", queen="Q",
			// king="K". White pieces use upper-case, Black lower-case.

			color, piece, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, fen)
			}
			if file >= board.NumFiles {
				return nil, fmt.Errorf("invalid number of squares in rank in FEN: %q", fen)
			}
			pieces = append(pieces, board.Placement{Square: board.NewSquare(file, rank), Color: color, Type: piece})
			file++

		default:
			return nil, fmt.Errorf("invalid character in FEN: %q", fen)
		}
	}
	if rank != board.Rank1 || file != board.NumFiles {
		return nil, fmt.Errorf("invalid number of ranks in FEN: %q", fen)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	// (3) Castling availability. If neither side can castle, this is "-".
	// Otherwise, one or more of "K", "Q", "k", "q".

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", fen)
	}

	// (4) En passant target square. "-" if none; otherwise the square behind
	// a pawn that has just made a two-square move.

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: %q", fen)
		}
		ep = sq
	}

	// (5) Halfmove clock: halfmoves since the last pawn advance or capture.

	hm, err := strconv.Atoi(parts[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}

	// (6) Fullmove number: starts at 1, incremented after Black's move.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}

	return board.NewPosition(pieces, active, castling, ep, hm, fm)
}

// Encode renders a Position in FEN notation.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.FileA; f <= board.FileH; f++ {
			pc := pos.PieceAt(board.NewSquare(f, r))
			if pc.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(pc))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.SideToMove(), printCastling(pos.Castling()), ep, pos.HalfmoveClock(), pos.FullmoveNumber())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.PieceType, bool) {
	color := board.White
	if unicode.IsLower(r) {
		color = board.Black
	}
	piece, ok := board.ParsePieceType(r)
	return color, piece, ok
}

func printPiece(pc board.Piece) rune {
	s := pc.String()
	return []rune(s)[0]
}
