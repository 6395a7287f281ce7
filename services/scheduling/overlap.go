package scheduling

import "time"

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) share any instant. Intervals that merely touch (one ends
// exactly where the other starts) do not overlap.
//
// This is the single source of truth for "do two appointments collide";
// both conflict annotation and availability generation go through it so
// the two can never disagree.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
