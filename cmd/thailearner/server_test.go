package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/annotate"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/pipeline"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/subtitle"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/transcript"
)

type fieldTokenizer struct{}

func (fieldTokenizer) Segment(text string) []string { return strings.Fields(text) }

type noopRomanizer struct{}

func (noopRomanizer) Romanize(token string) string { return token }

func testServer(t *testing.T) (*httptest.Server, *transcript.Store) {
	t.Helper()
	store := transcript.NewStore(t.TempDir())
	annotator := annotate.New(fieldTokenizer{}, noopRomanizer{}, annotate.NewCache())
	orch := pipeline.New(store, annotator)
	orch.Workers = 1
	srv := httptest.NewServer(newMux(orch, store, 7))
	t.Cleanup(srv.Close)
	return srv, store
}

func saveTrack(t *testing.T, store *transcript.Store, videoID, lang string, cues ...subtitle.Cue) {
	t.Helper()
	_, err := store.Save(&transcript.File{
		VideoID:        videoID,
		Metadata:       transcript.Metadata{Language: lang},
		TranscriptData: cues,
	})
	if err != nil {
		t.Fatalf("save %s track: %v", lang, err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLearningEndpoint(t *testing.T) {
	srv, store := testServer(t)
	saveTrack(t, store, "dQw4w9WgXcQ", "Thai", subtitle.Cue{Text: "สวัสดี ครับ", Start: 0, Duration: 5})
	saveTrack(t, store, "dQw4w9WgXcQ", "English", subtitle.Cue{Text: "Hello", Start: 0, Duration: 5})

	resp, err := http.Get(srv.URL + "/learning/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result pipeline.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success || len(result.Entries) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Entries[0].Tokens[0].Surface != "สวัสดี" {
		t.Errorf("unexpected tokens: %+v", result.Entries[0].Tokens)
	}
}

func TestLearningEndpointMissingTrack(t *testing.T) {
	srv, store := testServer(t)
	saveTrack(t, store, "dQw4w9WgXcQ", "Thai", subtitle.Cue{Text: "สวัสดี", Start: 0, Duration: 5})

	resp, err := http.Get(srv.URL + "/learning/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var result pipeline.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Success || !strings.Contains(result.Error, "English") {
		t.Errorf("expected missing-language error, got %+v", result)
	}
}

func TestLearningEndpointBadID(t *testing.T) {
	srv, _ := testServer(t)
	resp, err := http.Get(srv.URL + "/learning/short")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCaptionsEndpointFormats(t *testing.T) {
	srv, store := testServer(t)
	saveTrack(t, store, "dQw4w9WgXcQ", "Thai", subtitle.Cue{Text: "สวัสดี", Start: 0, Duration: 2})

	resp, err := http.Get(srv.URL + "/captions/dQw4w9WgXcQ/Thai?format=srt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "00:00:00,000 --> 00:00:02,000") {
		t.Errorf("expected srt timing line, got:\n%s", body)
	}

	resp2, err := http.Get(srv.URL + "/captions/dQw4w9WgXcQ/English")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing language, got %d", resp2.StatusCode)
	}
}

func TestCacheEndpoints(t *testing.T) {
	srv, store := testServer(t)
	saveTrack(t, store, "dQw4w9WgXcQ", "Thai", subtitle.Cue{Text: "สวัสดี", Start: 0, Duration: 2})

	resp, err := http.Get(srv.URL + "/cache/stats")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	defer resp.Body.Close()
	var stats transcript.Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalFiles != 1 {
		t.Errorf("expected 1 cached file, got %d", stats.TotalFiles)
	}

	resp2, err := http.Post(srv.URL+"/cache/cleanup", "application/json", nil)
	if err != nil {
		t.Fatalf("post cleanup: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp2.StatusCode)
	}
}
