package subtitle

import (
	"math"
	"testing"
)

func entry(start, dur float64) Entry { return NewEntry("x", start, dur) }

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Entry
		want float64
	}{
		{"full containment", entry(0, 5), entry(0, 10), 1.0},
		{"disjoint", entry(0, 2), entry(10, 2), 0},
		{"touching edges", entry(0, 2), entry(2, 2), 0},
		{"half overlap", entry(0, 4), entry(2, 4), 0.5},
		{"zero duration", entry(0, 0), entry(0, 5), 0},
		{"identical", entry(3, 2), entry(3, 2), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapSymmetric(t *testing.T) {
	a, b := entry(1, 3), entry(2, 5)
	if Overlap(a, b) != Overlap(b, a) {
		t.Errorf("overlap not symmetric: %v vs %v", Overlap(a, b), Overlap(b, a))
	}
}

// One long target cue covers two consecutive source cues; both must pair
// with the same target and score 1.0.
func TestAlignLongTargetServesManySources(t *testing.T) {
	source := []Entry{entry(0, 5), entry(5, 5)}
	target := []Entry{entry(0, 10)}

	pairs := Align(source, target, 0.3)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	for i, p := range pairs {
		if p.Target != target[0] {
			t.Errorf("pair %d: expected shared target %+v, got %+v", i, target[0], p.Target)
		}
		if p.Score != 1.0 {
			t.Errorf("pair %d: expected score 1.0, got %v", i, p.Score)
		}
	}
	if pairs[0].Source != source[0] || pairs[1].Source != source[1] {
		t.Errorf("pairs out of source order: %+v", pairs)
	}
}

func TestAlignNoTemporalOverlap(t *testing.T) {
	pairs := Align([]Entry{entry(0, 2)}, []Entry{entry(10, 2)}, 0.3)
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}

func TestAlignThresholdGate(t *testing.T) {
	source := []Entry{entry(0, 4)}
	target := []Entry{entry(3, 4)} // overlap ratio 0.25

	if pairs := Align(source, target, 0.3); len(pairs) != 0 {
		t.Fatalf("expected threshold to reject, got %d pairs", len(pairs))
	}
	pairs := Align(source, target, 0.25)
	if len(pairs) != 1 {
		t.Fatalf("expected pair at threshold boundary, got %d", len(pairs))
	}
	if pairs[0].Score < 0.25 {
		t.Errorf("score %v below threshold", pairs[0].Score)
	}
}

// On an exact score tie the earlier-seen target wins.
func TestAlignFirstSeenWinsOnTie(t *testing.T) {
	source := []Entry{entry(0, 10)}
	target := []Entry{entry(0, 2), entry(4, 2)} // both fully contained, both score 1.0

	pairs := Align(source, target, 0.3)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Target != target[0] {
		t.Errorf("expected first target to win tie, got %+v", pairs[0].Target)
	}
}

// A miss leaves the cursor in place so the next source entry can still see
// the current target.
func TestAlignMissKeepsCursor(t *testing.T) {
	source := []Entry{entry(0, 1), entry(10, 5)}
	target := []Entry{entry(5, 1), entry(10, 5)}

	pairs := Align(source, target, 0.3)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Source != source[1] || pairs[0].Target != target[1] {
		t.Errorf("unexpected pair: %+v", pairs[0])
	}
}

func TestAlignScoresWithinBounds(t *testing.T) {
	source := []Entry{entry(0, 3), entry(2, 4), entry(7, 2), entry(9, 6)}
	target := []Entry{entry(0, 2), entry(1, 5), entry(8, 4), entry(12, 3)}

	const threshold = 0.3
	for _, p := range Align(source, target, threshold) {
		if p.Score < threshold || p.Score > 1.0 {
			t.Errorf("score %v outside [%v, 1.0]", p.Score, threshold)
		}
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	if pairs := Align(nil, []Entry{entry(0, 1)}, 0.3); len(pairs) != 0 {
		t.Errorf("expected no pairs for empty source, got %d", len(pairs))
	}
	if pairs := Align([]Entry{entry(0, 1)}, nil, 0.3); len(pairs) != 0 {
		t.Errorf("expected no pairs for empty target, got %d", len(pairs))
	}
}
