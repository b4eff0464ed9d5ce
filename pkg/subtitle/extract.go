package subtitle

import "strings"

// Extract filters a raw cue list into well-formed entries. Cues whose text
// trims to empty, or begins with '[' (sound/music annotations like
// "[Music]"), are dropped. Original order and timestamps are preserved.
func Extract(cues []Cue) []Entry {
	var entries []Entry
	for _, c := range cues {
		text := strings.TrimSpace(c.Text)
		if text == "" || strings.HasPrefix(text, "[") {
			continue
		}
		entries = append(entries, NewEntry(text, c.Start, c.Duration))
	}
	return entries
}
