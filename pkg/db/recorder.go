package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/pipeline"
)

// Recorder persists the vocabulary of a pipeline run inside one
// transaction. It satisfies pipeline.Recorder.
type Recorder struct {
	DB       *sql.DB
	Language string // defaults to "th"
}

// NewRecorder returns a Recorder writing Thai vocabulary to conn.
func NewRecorder(conn *sql.DB) *Recorder {
	return &Recorder{DB: conn, Language: "th"}
}

// Record upserts every annotated token of the run and links it to the
// video, aggregating per-surface occurrence counts first so each word gets
// a single write.
func (r *Recorder) Record(videoID string, entries []pipeline.LearningEntry) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	vidRowID, err := CreateOrGetVideo(tx, videoID, "", "https://youtube.com/watch?v="+videoID)
	if err != nil {
		return fmt.Errorf("persist video %s: %w", videoID, err)
	}

	counts := make(map[string]int)
	contexts := make(map[string]string)
	tokens := make(map[string]struct {
		romanization string
		translations []string
	})
	var order []string
	for _, entry := range entries {
		for _, tok := range entry.Tokens {
			if _, ok := counts[tok.Surface]; !ok {
				order = append(order, tok.Surface)
				tokens[tok.Surface] = struct {
					romanization string
					translations []string
				}{tok.Romanization, tok.Translations}
				contexts[tok.Surface] = entry.SourceText
			}
			counts[tok.Surface]++
		}
	}

	for _, surface := range order {
		info := tokens[surface]
		translations := ""
		if len(info.translations) > 0 {
			data, err := json.Marshal(info.translations)
			if err != nil {
				return err
			}
			translations = string(data)
		}
		wordID, err := CreateOrGetWord(tx, surface, info.romanization, translations, r.Language)
		if err != nil {
			return fmt.Errorf("persist word %s: %w", surface, err)
		}
		if err := LinkWordToVideo(tx, wordID, vidRowID, contexts[surface], counts[surface]); err != nil {
			return fmt.Errorf("link word %s: %w", surface, err)
		}
	}
	return tx.Commit()
}
