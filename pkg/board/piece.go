package board

import "strings"

// PieceType represents a chess piece type (King, Pawn, etc) with no color. 3 bits.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const NumPieceTypes = King + 1

// NominalValue is the piece's standard material value in centipawns.
func (p PieceType) NominalValue() int {
	switch p {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case NoPieceType:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a tagged square value: a piece type plus its color, or the empty
// marker NoPiece. 4 bits.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the empty-square marker.
var NoPiece = Piece{Type: NoPieceType}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == White {
		return strings.ToUpper(p.Type.String())
	}
	return p.Type.String()
}
