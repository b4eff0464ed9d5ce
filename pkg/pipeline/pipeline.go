// Package pipeline drives the per-video learning flow: fetch cached
// transcripts, extract and align the two language tracks, annotate the
// source-language lines and assemble the learning entries.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/annotate"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/subtitle"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/transcript"
)

// DefaultThreshold is the minimum overlap ratio for accepting a pairing.
const DefaultThreshold = 0.3

// TranscriptSource supplies cached cue lists per video and language. A
// missing track is transcript.ErrNotFound; any other error is a collaborator
// fault and propagates untouched.
type TranscriptSource interface {
	Find(videoID, language string) (*transcript.File, error)
}

// Recorder persists annotated output after a successful run.
type Recorder interface {
	Record(videoID string, entries []LearningEntry) error
}

// LearningEntry is one aligned, annotated bilingual subtitle pair, ordered
// by the source-language track.
type LearningEntry struct {
	SourceText   string           `json:"thai_text"`
	TargetText   string           `json:"english_text"`
	StartTime    float64          `json:"start_time"`
	Duration     float64          `json:"duration"`
	OverlapScore float64          `json:"overlap_score"`
	Tokens       []annotate.Token `json:"word_breakdown"`
}

// Stats summarizes one alignment run.
type Stats struct {
	SourceCount   int     `json:"total_thai_subs"`
	TargetCount   int     `json:"total_english_subs"`
	AlignedCount  int     `json:"aligned_count"`
	AlignmentRate float64 `json:"alignment_rate"`
}

// Result is the structured outcome of processing one video. Expected
// failures (missing track, nothing to align) are reported here, not
// returned as errors.
type Result struct {
	Success bool   `json:"success"`
	VideoID string `json:"video_id"`
	Error   string `json:"error,omitempty"`
	Stats
	Entries []LearningEntry `json:"learning_entries"`

	// Err carries the taxonomy value behind Error for errors.Is checks.
	Err error `json:"-"`
}

// MissingTrackError reports which language tracks were unavailable.
type MissingTrackError struct {
	Languages []string
}

func (e *MissingTrackError) Error() string {
	return "missing subtitles for: " + strings.Join(e.Languages, ", ")
}

var (
	// ErrNoValidEntries means filtering left one or both tracks empty.
	ErrNoValidEntries = errors.New("no valid subtitle entries found")
	// ErrNoAlignment means alignment produced zero pairs despite
	// non-empty inputs.
	ErrNoAlignment = errors.New("could not align any subtitles")
)

// Orchestrator wires the extractor, aligner and annotator per video. It
// holds no per-run state; the annotation cache inside the Annotator is the
// only thing shared across invocations.
type Orchestrator struct {
	Source    TranscriptSource
	Annotator *annotate.Annotator

	SourceLang string  // defaults to "Thai"
	TargetLang string  // defaults to "English"
	Threshold  float64 // defaults to DefaultThreshold
	Workers    int     // annotation parallelism, defaults to 4

	// Recorder is optional; a recording failure is logged, never fatal.
	Recorder Recorder
	Logger   *log.Logger
}

// New returns an Orchestrator with default languages, threshold and
// parallelism.
func New(source TranscriptSource, annotator *annotate.Annotator) *Orchestrator {
	return &Orchestrator{
		Source:     source,
		Annotator:  annotator,
		SourceLang: "Thai",
		TargetLang: "English",
		Threshold:  DefaultThreshold,
		Workers:    4,
	}
}

// Run processes one video into learning entries. The returned error is
// non-nil only for collaborator faults; expected conditions land in the
// Result with Success false.
func (o *Orchestrator) Run(ctx context.Context, videoID string) (*Result, error) {
	srcFile, err := o.findTrack(videoID, o.SourceLang)
	if err != nil {
		return nil, err
	}
	tgtFile, err := o.findTrack(videoID, o.TargetLang)
	if err != nil {
		return nil, err
	}

	if srcFile == nil || tgtFile == nil {
		var missing []string
		if srcFile == nil {
			missing = append(missing, o.SourceLang)
		}
		if tgtFile == nil {
			missing = append(missing, o.TargetLang)
		}
		return o.fail(videoID, &MissingTrackError{Languages: missing}), nil
	}

	srcEntries := subtitle.Extract(srcFile.TranscriptData)
	tgtEntries := subtitle.Extract(tgtFile.TranscriptData)
	if len(srcEntries) == 0 || len(tgtEntries) == 0 {
		return o.fail(videoID, ErrNoValidEntries), nil
	}

	pairs := subtitle.Align(srcEntries, tgtEntries, o.Threshold)
	if len(pairs) == 0 {
		res := o.fail(videoID, ErrNoAlignment)
		res.Stats = o.stats(len(srcEntries), len(tgtEntries), 0)
		return res, nil
	}

	texts := make([]string, len(pairs))
	for i, p := range pairs {
		texts[i] = p.Source.Text
	}
	tokenLists := annotate.AnnotateAll(ctx, o.Annotator, texts, o.Workers)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]LearningEntry, len(pairs))
	for i, p := range pairs {
		entries[i] = LearningEntry{
			SourceText:   p.Source.Text,
			TargetText:   p.Target.Text,
			StartTime:    p.Source.Start,
			Duration:     p.Source.Duration,
			OverlapScore: p.Score,
			Tokens:       tokenLists[i],
		}
	}

	if o.Recorder != nil {
		if err := o.Recorder.Record(videoID, entries); err != nil {
			o.logf("warning: failed to record vocabulary for %s: %v", videoID, err)
		}
	}

	return &Result{
		Success: true,
		VideoID: videoID,
		Stats:   o.stats(len(srcEntries), len(tgtEntries), len(pairs)),
		Entries: entries,
	}, nil
}

// findTrack maps transcript.ErrNotFound to nil so Run can name every
// missing language at once.
func (o *Orchestrator) findTrack(videoID, language string) (*transcript.File, error) {
	f, err := o.Source.Find(videoID, language)
	if errors.Is(err, transcript.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s track: %w", language, err)
	}
	return f, nil
}

func (o *Orchestrator) stats(source, target, aligned int) Stats {
	s := Stats{SourceCount: source, TargetCount: target, AlignedCount: aligned}
	if source > 0 {
		s.AlignmentRate = float64(aligned) / float64(source)
	}
	return s
}

func (o *Orchestrator) fail(videoID string, err error) *Result {
	return &Result{VideoID: videoID, Error: err.Error(), Err: err}
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
