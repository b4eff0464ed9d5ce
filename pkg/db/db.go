// Package db persists the vocabulary encountered while processing videos:
// Thai words with their romanization and translations, linked to the videos
// they were seen in with occurrence counts.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	romanization TEXT,
	translations TEXT,
	language TEXT NOT NULL DEFAULT 'th',
	UNIQUE(word, language)
);

CREATE TABLE IF NOT EXISTS videos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	video_id TEXT NOT NULL UNIQUE,
	title TEXT,
	url TEXT,
	added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS word_occurrences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word_id INTEGER NOT NULL REFERENCES words(id),
	video_id INTEGER NOT NULL REFERENCES videos(id),
	context_text TEXT,
	occurrence_count INTEGER NOT NULL DEFAULT 1,
	first_seen_at TIMESTAMP,
	UNIQUE(word_id, video_id)
);

CREATE INDEX IF NOT EXISTS idx_words_word ON words(word);
CREATE INDEX IF NOT EXISTS idx_occurrences_video ON word_occurrences(video_id)
`

// InitDB runs migrations on the given connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
