package board

import "fmt"

// MoveFlag enumerates the kind of a move. Exactly one of these applies to any
// given Move; promotions are split into capture/non-capture variants because
// the captured-piece hint and the promoted piece can differ.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	KnightPromotion
	KnightPromotionCapture
	BishopPromotion
	BishopPromotionCapture
	RookPromotion
	RookPromotionCapture
	QueenPromotion
	QueenPromotionCapture
)

// IsCapture reports whether the move flag removes an enemy piece from the board.
func (f MoveFlag) IsCapture() bool {
	switch f {
	case Capture, EnPassant, KnightPromotionCapture, BishopPromotionCapture, RookPromotionCapture, QueenPromotionCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move flag promotes the moving pawn.
func (f MoveFlag) IsPromotion() bool {
	switch f {
	case KnightPromotion, KnightPromotionCapture, BishopPromotion, BishopPromotionCapture, RookPromotion, RookPromotionCapture, QueenPromotion, QueenPromotionCapture:
		return true
	default:
		return false
	}
}

// PromotionType returns the promoted piece type for a promotion flag, or NoPieceType otherwise.
func (f MoveFlag) PromotionType() PieceType {
	switch f {
	case KnightPromotion, KnightPromotionCapture:
		return Knight
	case BishopPromotion, BishopPromotionCapture:
		return Bishop
	case RookPromotion, RookPromotionCapture:
		return Rook
	case QueenPromotion, QueenPromotionCapture:
		return Queen
	default:
		return NoPieceType
	}
}

func promotionFlag(p PieceType, capture bool) MoveFlag {
	switch p {
	case Knight:
		if capture {
			return KnightPromotionCapture
		}
		return KnightPromotion
	case Bishop:
		if capture {
			return BishopPromotionCapture
		}
		return BishopPromotion
	case Rook:
		if capture {
			return RookPromotionCapture
		}
		return RookPromotion
	case Queen:
		if capture {
			return QueenPromotionCapture
		}
		return QueenPromotion
	default:
		return Quiet
	}
}

// Move represents a not-necessarily-legal move along with enough metadata to
// make/unmake it without re-probing the board: from, to, flags, and a
// captured-piece hint. NullMove (From==To==NoSquare) is the distinguished
// null move used only by search; it is never a legal chess move. The zero
// Move{} is not the null move: its From and To are both A1.
type Move struct {
	From, To Square
	Flag     MoveFlag
	Capture  PieceType // captured piece type, if any; NoPieceType otherwise.
}

// NullMove is the sentinel used by null-move pruning. Never a legal move.
var NullMove = Move{From: NoSquare, To: NoSquare}

func (m Move) IsNull() bool {
	return m.From == NoSquare && m.To == NoSquare
}

func (m Move) IsCapture() bool {
	return m.Flag.IsCapture()
}

func (m Move) IsPromotion() bool {
	return m.Flag.IsPromotion()
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Flag.PromotionType() == o.Flag.PromotionType()
}

// ParseUCI parses the from/to/promotion triple of pure algebraic coordinate
// notation, such as "a2a4" or "a7a8q". "0000" parses to NullMove. The
// returned move's Flag/Capture are not populated -- callers resolve the
// actual legal move via the move generator (see MoveGenerator.ResolveUCI).
func ParseUCI(str string) (Move, error) {
	if str == "0000" {
		return NullMove, nil
	}

	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePieceType(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: %q", str)
		}
		m.Flag = promotionFlag(promo, false)
	}
	return m, nil
}

// ToUCI renders the move in pure algebraic coordinate notation.
func (m Move) ToUCI() string {
	if m.IsNull() {
		return "0000"
	}
	if promo := m.Flag.PromotionType(); promo != NoPieceType {
		return fmt.Sprintf("%v%v%v", m.From, m.To, promo)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

func (m Move) String() string {
	return m.ToUCI()
}
