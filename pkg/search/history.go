package search

import "github.com/arbiter-chess/engine/pkg/board"

// historyCeiling triggers a global halving once any cell exceeds it, keeping
// the table's magnitude from drowning out the rest of the move ordering
// score as a game runs long.
const historyCeiling = 10000

// historyTable scores quiet moves by how often they have produced a
// beta-cutoff, indexed by (color, from, to, piece type).
type historyTable struct {
	counts [board.NumColors][board.NumSquares][board.NumSquares][board.NumPieceTypes]int
}

// Record credits a cutoff for a quiet move at the given search depth.
func (h *historyTable) Record(c board.Color, m board.Move, piece board.PieceType, depth int) {
	cell := &h.counts[c][m.From][m.To][piece]
	*cell += depth * depth

	if *cell > historyCeiling {
		h.halve()
	}
}

func (h *historyTable) halve() {
	for c := range h.counts {
		for from := range h.counts[c] {
			for to := range h.counts[c][from] {
				for p := range h.counts[c][from][to] {
					h.counts[c][from][to][p] /= 2
				}
			}
		}
	}
}

// Score returns the current history count for the move.
func (h *historyTable) Score(c board.Color, m board.Move, piece board.PieceType) int {
	return h.counts[c][m.From][m.To][piece]
}
