package subtitle

// Cue is a raw transcript item as fetched from the caption source.
// Fields may be missing in upstream JSON; zero values are the defaults.
type Cue struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Entry is one cleaned subtitle cue. Immutable once constructed.
type Entry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// NewEntry builds an Entry, clamping negative timing values to zero.
func NewEntry(text string, start, duration float64) Entry {
	if start < 0 {
		start = 0
	}
	if duration < 0 {
		duration = 0
	}
	return Entry{Text: text, Start: start, Duration: duration}
}

// End returns the cue's end time in seconds.
func (e Entry) End() float64 { return e.Start + e.Duration }

// AlignedPair references one source-language entry and one target-language
// entry that describe the same moment. The same target entry may appear in
// several pairs when one long target cue covers consecutive source cues.
type AlignedPair struct {
	Source Entry   `json:"source"`
	Target Entry   `json:"target"`
	Score  float64 `json:"overlap_score"`
}
