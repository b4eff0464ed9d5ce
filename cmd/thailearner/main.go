package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/annotate"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/config"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/db"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/dictionary"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/pipeline"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/thai"
	"github.com/hopeiseverywhere/yt-thai-learner/pkg/transcript"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	videoFlag := flag.String("video", "", "YouTube video URL or 11-character ID to process")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of one-shot processing")
	addrFlag := flag.String("addr", cfg.APIAddr, "HTTP listen address")
	dictFreqFlag := flag.String("dict-freq", cfg.DictFileFreq, "Path to the frequency-list dictionary CSV")
	dictFullFlag := flag.String("dict-full", cfg.DictFileFull, "Path to the comprehensive dictionary CSV")
	dbFlag := flag.String("db", cfg.DBPath, "Path to the SQLite vocabulary store (empty disables recording)")
	transcriptsFlag := flag.String("transcripts", cfg.TranscriptDir, "Transcript cache directory")
	thresholdFlag := flag.Float64("threshold", pipeline.DefaultThreshold, "Minimum overlap ratio for alignment")
	workersFlag := flag.Int("workers", 4, "Annotation worker count")
	flag.Parse()

	if !*serveFlag && *videoFlag == "" {
		log.Fatal("Please provide -video or -serve")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Dictionary tiers: ranked frequency list first, comprehensive second.
	var lookups []annotate.Lookup
	var fullIndex *dictionary.Index
	if *dictFreqFlag != "" {
		ix, n, err := loadIndex(*dictFreqFlag)
		if err != nil {
			log.Fatalf("Failed to load frequency dictionary: %v", err)
		}
		fmt.Printf("Frequency dictionary loaded (%d records)\n", n)
		lookups = append(lookups, ix)
	}
	if *dictFullFlag != "" {
		ix, n, err := loadIndex(*dictFullFlag)
		if err != nil {
			log.Fatalf("Failed to load full dictionary: %v", err)
		}
		fmt.Printf("Full dictionary loaded (%d records)\n", n)
		lookups = append(lookups, ix)
		fullIndex = ix
	}
	if len(lookups) == 0 {
		log.Println("Warning: no dictionaries configured; translations will be empty")
	}

	tokenizer, err := thai.NewTokenizer()
	if err != nil {
		log.Fatalf("Failed to load Thai tokenizer: %v", err)
	}

	annotator := annotate.New(tokenizer, thai.NewRomanizer(fullIndex), annotate.NewCache(), lookups...)
	store := transcript.NewStore(*transcriptsFlag)

	orch := pipeline.New(store, annotator)
	orch.Threshold = *thresholdFlag
	orch.Workers = *workersFlag
	orch.Logger = log.Default()

	if *dbFlag != "" {
		conn, err := sql.Open("sqlite3", *dbFlag)
		if err != nil {
			log.Fatalf("Failed to open vocabulary store: %v", err)
		}
		defer conn.Close()
		if err := db.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize vocabulary store: %v", err)
		}
		orch.Recorder = db.NewRecorder(conn)
		fmt.Printf("Vocabulary store ready at %s\n", *dbFlag)
	}

	if *serveFlag {
		runServer(ctx, *addrFlag, orch, store, cfg.RetentionDays)
		return
	}

	videoID, err := transcript.ParseVideoID(*videoFlag)
	if err != nil {
		log.Fatalf("Invalid video: %v", err)
	}
	result, err := orch.Run(ctx, videoID)
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
	if !result.Success {
		os.Exit(1)
	}
}

func loadIndex(path string) (*dictionary.Index, int, error) {
	records, err := dictionary.Load(path)
	if err != nil {
		return nil, 0, err
	}
	return dictionary.NewIndex(records), len(records), nil
}
