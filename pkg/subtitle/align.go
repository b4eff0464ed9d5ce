package subtitle

import "math"

// Overlap returns the intersection of the two cue intervals divided by the
// shorter cue's duration, in [0,1]. It is 0 when the intervals are disjoint
// or the shorter duration is 0.
func Overlap(a, b Entry) float64 {
	start := math.Max(a.Start, b.Start)
	end := math.Min(a.End(), b.End())
	if start >= end {
		return 0
	}
	minDur := math.Min(a.Duration, b.Duration)
	if minDur <= 0 {
		return 0
	}
	return (end - start) / minDur
}

// Align pairs source and target entries by temporal overlap using a greedy
// two-pointer scan. Both inputs must already be sorted by start time; the
// function does not re-sort.
//
// For each source entry the target list is scanned from the current cursor,
// keeping the first candidate with the strictly highest overlap at or above
// threshold. The scan stops once a target starts after the source ends. On a
// match the cursor moves to the matched target's index, not past it, so one
// long target cue can pair with several consecutive source cues. On a miss
// the cursor stays put; long runs of unmatched source entries therefore
// rescan from the same cursor, which can degrade toward
// O(len(source)*len(target)) on pathological timing.
func Align(source, target []Entry, threshold float64) []AlignedPair {
	var aligned []AlignedPair
	if len(source) == 0 || len(target) == 0 {
		return aligned
	}

	j := 0
	for _, s := range source {
		bestIdx := -1
		bestScore := 0.0

		for k := j; k < len(target); k++ {
			t := target[k]
			if t.Start > s.End() {
				break
			}
			if t.End() < s.Start {
				continue
			}
			score := Overlap(s, t)
			if score >= threshold && score > bestScore {
				bestScore = score
				bestIdx = k
			}
		}

		if bestIdx < 0 {
			continue
		}
		aligned = append(aligned, AlignedPair{Source: s, Target: target[bestIdx], Score: bestScore})
		if bestIdx > j {
			j = bestIdx
		}
	}
	return aligned
}
