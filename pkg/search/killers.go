package search

import "github.com/arbiter-chess/engine/pkg/board"

// maxPly bounds the killer table; deeper plies than this simply don't get
// killer-move ordering (search depth is bounded well under this in practice).
const maxPly = 128

// killerTable holds two killer-move slots per ply: quiet moves that produced
// a beta cutoff, tried early in sibling nodes at the same ply.
type killerTable struct {
	slots [maxPly][2]board.Move
}

// Record stores m as the newest killer at ply, demoting the previous
// newest. Deduplicates: recording an already-first killer is a no-op.
func (k *killerTable) Record(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if k.slots[ply][0].Equals(m) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// Match reports whether m is a recorded killer at ply.
func (k *killerTable) Match(ply int, m board.Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	return k.slots[ply][0].Equals(m) || k.slots[ply][1].Equals(m)
}
