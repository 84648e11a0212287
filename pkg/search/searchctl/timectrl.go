// Package searchctl contains search time-budget utilities.
package searchctl

import (
	"fmt"
	"time"
)

// Budget represents the time allotted to a single find-best-move call. Unlike
// a whole-game clock, the engine's top-level entry point receives a flat
// time_budget_ms per call, so there is no remainder to track across moves.
type Budget struct {
	Limit time.Duration // zero means unbounded, subject only to the search's depth limit.
}

// FromMillis builds a Budget from a milliseconds count; zero or negative
// means unbounded.
func FromMillis(ms int) Budget {
	if ms <= 0 {
		return Budget{}
	}
	return Budget{Limit: time.Duration(ms) * time.Millisecond}
}

// Deadline returns the wall-clock instant the search must stop by, measured
// from start. The zero Time means unbounded.
func (b Budget) Deadline(start time.Time) time.Time {
	if b.Limit <= 0 {
		return time.Time{}
	}
	return start.Add(b.Limit)
}

func (b Budget) String() string {
	if b.Limit <= 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%.1fs", b.Limit.Seconds())
}
