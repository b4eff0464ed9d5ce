// Package transcript manages the local cache of fetched caption tracks:
// date-partitioned JSON files with a small index for lookup by video and
// language.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/subtitle"
)

// ErrNotFound is returned when no cached transcript exists for the
// requested video and language.
var ErrNotFound = errors.New("transcript not found")

// Metadata describes how a cached track was obtained.
type Metadata struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code,omitempty"`
	IsGenerated    bool   `json:"is_generated,omitempty"`
	TranslatedFrom string `json:"translated_from,omitempty"`
}

// File is one cached transcript as stored on disk.
type File struct {
	VideoID         string         `json:"video_id"`
	SourceURL       string         `json:"source_url,omitempty"`
	FetchedAt       time.Time      `json:"fetched_at"`
	Metadata        Metadata       `json:"metadata"`
	TranscriptCount int            `json:"transcript_count"`
	TranscriptData  []subtitle.Cue `json:"transcript_data"`
}

// indexEntry is one row of the index file, keyed by videoID_language.
type indexEntry struct {
	VideoID  string    `json:"video_id"`
	Language string    `json:"language"`
	FilePath string    `json:"file_path"`
	Date     string    `json:"date"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store is a date-partitioned transcript cache rooted at Dir. The zero
// value is not usable; construct with NewStore.
type Store struct {
	Dir string

	// now is swapped in tests to control date partitioning.
	now func() time.Time

	mu sync.Mutex // guards index file read-modify-write
}

// NewStore returns a Store rooted at dir. The directory is created lazily
// on first save.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, now: time.Now}
}

func (s *Store) indexPath() string { return filepath.Join(s.Dir, "index.json") }

var unsafeIDChars = regexp.MustCompile(`[^\w-]`)

// Save writes f under today's date directory as <videoID>_<language>.json,
// overwriting any previous save, and updates the index. Returns the file
// path.
func (s *Store) Save(f *File) (string, error) {
	if f.VideoID == "" {
		return "", fmt.Errorf("video id must be non-empty")
	}
	lang := f.Metadata.Language
	if lang == "" {
		lang = "unknown"
	}
	if f.Metadata.TranslatedFrom != "" {
		lang = f.Metadata.TranslatedFrom + "-to-" + lang
	}

	date := s.now().Format("2006-01-02")
	dir := filepath.Join(s.Dir, date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	f.TranscriptCount = len(f.TranscriptData)
	if f.FetchedAt.IsZero() {
		f.FetchedAt = s.now()
	}
	name := fmt.Sprintf("%s_%s.json", unsafeIDChars.ReplaceAllString(f.VideoID, ""), lang)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index, _ := s.loadIndex()
	index[f.VideoID+"_"+f.Metadata.Language] = indexEntry{
		VideoID:  f.VideoID,
		Language: f.Metadata.Language,
		FilePath: path,
		Date:     date,
		SavedAt:  s.now(),
	}
	if err := s.saveIndex(index); err != nil {
		return "", err
	}
	return path, nil
}

// Find returns the cached transcript for the given video and language, or
// ErrNotFound. A stale index entry whose file has vanished also reports
// ErrNotFound.
func (s *Store) Find(videoID, language string) (*File, error) {
	s.mu.Lock()
	index, err := s.loadIndex()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entry, ok := index[videoID+"_"+language]
	if !ok {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(entry.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode transcript %s: %w", entry.FilePath, err)
	}
	return &f, nil
}

// Languages returns the cached languages for a video, in index order.
func (s *Store) Languages(videoID string) ([]string, error) {
	s.mu.Lock()
	index, err := s.loadIndex()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	var langs []string
	for _, entry := range index {
		if entry.VideoID == videoID {
			langs = append(langs, entry.Language)
		}
	}
	return langs, nil
}

var dateDirRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Cleanup deletes transcript files in date directories older than
// retentionDays and prunes index entries whose files are gone. Returns the
// number of files deleted.
func (s *Store) Cleanup(retentionDays int) (int, error) {
	if retentionDays < 1 {
		return 0, fmt.Errorf("retention days must be at least 1")
	}
	cutoff := s.now().AddDate(0, 0, -retentionDays)

	dirs, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	deleted := 0
	for _, d := range dirs {
		if !d.IsDir() || !dateDirRE.MatchString(d.Name()) {
			continue
		}
		dirDate, err := time.Parse("2006-01-02", d.Name())
		if err != nil || !dirDate.Before(cutoff) {
			continue
		}
		dayDir := filepath.Join(s.Dir, d.Name())
		files, err := os.ReadDir(dayDir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if filepath.Ext(f.Name()) != ".json" {
				continue
			}
			if err := os.Remove(filepath.Join(dayDir, f.Name())); err == nil {
				deleted++
			}
		}
		// Drop the directory if nothing is left.
		if rest, err := os.ReadDir(dayDir); err == nil && len(rest) == 0 {
			_ = os.Remove(dayDir)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index, err := s.loadIndex()
	if err != nil {
		return deleted, err
	}
	changed := false
	for key, entry := range index {
		if _, err := os.Stat(entry.FilePath); os.IsNotExist(err) {
			delete(index, key)
			changed = true
		}
	}
	if changed {
		if err := s.saveIndex(index); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

// Stats summarizes the cache contents.
type Stats struct {
	TotalFiles     int        `json:"total_files"`
	TotalSizeBytes int64      `json:"total_size_bytes"`
	IndexEntries   int        `json:"index_entries"`
	Directories    []DirStats `json:"directories"`
}

// DirStats is the per-date breakdown of Stats.
type DirStats struct {
	Date      string `json:"date"`
	Files     int    `json:"files"`
	SizeBytes int64  `json:"size_bytes"`
}

// CacheStats walks the cache directory and reports totals per date.
func (s *Store) CacheStats() (Stats, error) {
	var stats Stats
	dirs, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, err
	}
	for _, d := range dirs {
		if !d.IsDir() || !dateDirRE.MatchString(d.Name()) {
			continue
		}
		dayDir := filepath.Join(s.Dir, d.Name())
		files, err := os.ReadDir(dayDir)
		if err != nil {
			continue
		}
		ds := DirStats{Date: d.Name()}
		for _, f := range files {
			if filepath.Ext(f.Name()) != ".json" {
				continue
			}
			info, err := f.Info()
			if err != nil {
				continue
			}
			ds.Files++
			ds.SizeBytes += info.Size()
		}
		if ds.Files > 0 {
			stats.Directories = append(stats.Directories, ds)
			stats.TotalFiles += ds.Files
			stats.TotalSizeBytes += ds.SizeBytes
		}
	}
	s.mu.Lock()
	index, err := s.loadIndex()
	s.mu.Unlock()
	if err == nil {
		stats.IndexEntries = len(index)
	}
	return stats, nil
}

// loadIndex reads the index file; a missing file is an empty index.
func (s *Store) loadIndex() (map[string]indexEntry, error) {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]indexEntry{}, nil
		}
		return nil, err
	}
	index := map[string]indexEntry{}
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return index, nil
}

func (s *Store) saveIndex(index map[string]indexEntry) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.indexPath(), data, 0o644)
}
