package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DBExecutor allows methods to accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// CreateOrGetWord returns the id of an existing word or inserts a new one.
// Non-empty romanization/translations refresh the stored values.
func CreateOrGetWord(db DBExecutor, word, romanization, translations, language string) (int64, error) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	if language == "" {
		language = "th"
	}

	var id int64
	query := `INSERT INTO words (word, romanization, translations, language)
			  VALUES (?, ?, ?, ?)
			  ON CONFLICT(word, language)
			  DO UPDATE SET
			    romanization = COALESCE(NULLIF(excluded.romanization, ''), words.romanization),
				translations = COALESCE(NULLIF(excluded.translations, ''), words.translations)
			  RETURNING id`
	if err := db.QueryRow(query, trimmed, romanization, translations, language).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert word: %w", err)
	}
	return id, nil
}

// CreateOrGetVideo returns the id of an existing video row or inserts one.
func CreateOrGetVideo(db DBExecutor, videoID, title, url string) (int64, error) {
	trimmed := strings.TrimSpace(videoID)
	if trimmed == "" {
		return 0, fmt.Errorf("videoID must be non-empty")
	}

	var id int64
	query := `INSERT INTO videos (video_id, title, url)
			  VALUES (?, ?, ?)
			  ON CONFLICT(video_id)
			  DO UPDATE SET
			    title = COALESCE(NULLIF(excluded.title, ''), videos.title),
				url = COALESCE(NULLIF(excluded.url, ''), videos.url)
			  RETURNING id`
	if err := db.QueryRow(query, trimmed, title, url).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert video: %w", err)
	}
	return id, nil
}

// LinkWordToVideo creates or bumps the occurrence row for the word/video
// pair. The context text is refreshed to the most recent sighting.
func LinkWordToVideo(db DBExecutor, wordID, videoID int64, context string, incrementAmount int) error {
	if wordID <= 0 {
		return fmt.Errorf("wordID must be positive")
	}
	if videoID <= 0 {
		return fmt.Errorf("videoID must be positive")
	}
	if incrementAmount < 1 {
		return fmt.Errorf("incrementAmount must be positive, got %d", incrementAmount)
	}

	_, err := db.Exec(`INSERT INTO word_occurrences (word_id, video_id, context_text, occurrence_count, first_seen_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(word_id, video_id) DO UPDATE SET
	  occurrence_count = word_occurrences.occurrence_count + excluded.occurrence_count,
	  context_text = excluded.context_text`,
		wordID, videoID, context, incrementAmount, time.Now())
	return err
}

// GetWordsByVideo returns the words seen in the given video row.
func GetWordsByVideo(db DBExecutor, videoID int64) ([]Word, error) {
	rows, err := db.Query(`SELECT w.id, w.word, w.romanization, w.translations, w.language
		FROM words w JOIN word_occurrences o ON o.word_id = w.id
		WHERE o.video_id = ? ORDER BY w.id`, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Word
	for rows.Next() {
		var w Word
		var rom, tr sql.NullString
		if err := rows.Scan(&w.ID, &w.Word, &rom, &tr, &w.Language); err != nil {
			return nil, err
		}
		w.Romanization = rom.String
		w.Translations = tr.String
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOccurrenceCount returns the stored count for a word/video pair, 0 when
// the pair has never been linked.
func GetOccurrenceCount(db DBExecutor, wordID, videoID int64) (int, error) {
	var count int
	err := db.QueryRow(`SELECT occurrence_count FROM word_occurrences WHERE word_id = ? AND video_id = ?`,
		wordID, videoID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
