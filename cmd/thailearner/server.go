package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/pipeline"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/transcript"
)

// runServer blocks until ctx is canceled, then shuts the listener down.
func runServer(ctx context.Context, addr string, orch *pipeline.Orchestrator, store *transcript.Store, retentionDays int) {
	srv := &http.Server{
		Addr:         addr,
		Handler:      newMux(orch, store, retentionDays),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // dictionary-heavy first runs are slow
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

func newMux(orch *pipeline.Orchestrator, store *transcript.Store, retentionDays int) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /learning/{video}", func(w http.ResponseWriter, r *http.Request) {
		videoID, err := transcript.ParseVideoID(r.PathValue("video"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		result, err := orch.Run(r.Context(), videoID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		status := http.StatusOK
		if !result.Success {
			status = http.StatusNotFound
		}
		writeJSON(w, status, result)
	})

	mux.HandleFunc("GET /cache/stats", func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.CacheStats()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	mux.HandleFunc("POST /cache/cleanup", func(w http.ResponseWriter, r *http.Request) {
		deleted, err := store.Cleanup(retentionDays)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted_files": deleted})
	})

	mux.HandleFunc("GET /captions/{video}/{lang}", func(w http.ResponseWriter, r *http.Request) {
		videoID, err := transcript.ParseVideoID(r.PathValue("video"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		file, err := store.Find(videoID, r.PathValue("lang"))
		if errors.Is(err, transcript.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no cached transcript"})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		switch strings.ToLower(r.URL.Query().Get("format")) {
		case "srt":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(transcript.ToSRT(file.TranscriptData)))
		case "vtt":
			w.Header().Set("Content-Type", "text/vtt; charset=utf-8")
			_, _ = w.Write([]byte(transcript.ToVTT(file.TranscriptData)))
		default:
			writeJSON(w, http.StatusOK, file)
		}
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
