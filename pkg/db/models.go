package db

import "time"

// Word is the canonical vocabulary entry.
type Word struct {
	ID           int64
	Word         string
	Romanization string
	Translations string // JSON array of translation strings
	Language     string
}

// Video is a provenance record for a processed video.
type Video struct {
	ID      int64
	VideoID string
	Title   string
	URL     string
	AddedAt time.Time
}

// WordOccurrence links a Word with a Video and counts how often it was seen.
type WordOccurrence struct {
	ID              int64
	WordID          int64
	VideoID         int64
	ContextText     string
	OccurrenceCount int
	FirstSeenAt     time.Time
}
