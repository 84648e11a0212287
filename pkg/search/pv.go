package search

import (
	"time"

	"github.com/arbiter-chess/engine/pkg/board"
	"github.com/arbiter-chess/engine/pkg/eval"
)

// PV summarizes one completed FindBestMove call: the depth reached, the
// score at that depth, the node count, the wall-clock time spent, and the
// principal variation line as recovered from the transposition table.
type PV struct {
	Depth int
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	Moves []board.Move
}

// maxPVLength caps principal-variation extraction so a cyclic or corrupted
// TT chain can never produce an unbounded line.
const maxPVLength = 64

// extractPV replays the transposition table's stored best moves starting
// from pos, following the line the search actually reported. It mutates pos
// via Make/Unmake but restores it fully before returning. Extraction stops
// at the first missing entry, a move no longer legal in the replayed
// position, a position seen earlier in the line (a TT cycle), or maxLen.
func extractPV(tt *TranspositionTable, pos *board.Position, maxLen int) []board.Move {
	if maxLen > maxPVLength {
		maxLen = maxPVLength
	}

	var moves []board.Move
	var g board.MoveGenerator
	seen := make(map[board.ZobristHash]bool)

	for len(moves) < maxLen {
		key := pos.Key()
		if seen[key] {
			break
		}
		seen[key] = true

		_, _, _, move, ok := tt.Probe(key)
		if !ok || move.IsNull() || !g.Legal(pos, move) {
			break
		}
		moves = append(moves, move)
		pos.Make(move)
	}

	for range moves {
		pos.Unmake()
	}
	return moves
}
