package dictionary

import "strings"

// Record is one dictionary row. The two source CSVs (ranked frequency list
// and comprehensive dictionary) carry different column sets, so each schema
// gets its own concrete type instead of one struct full of mutually
// exclusive optionals.
type Record interface {
	// ID is the row identifier; search results are ordered by it.
	ID() int
	// Headword is the canonical Thai word the row is filed under.
	Headword() string
	// SynonymTerms are the comma-separated synonym/related fields split
	// into individual terms, each matched exactly on its own.
	SynonymTerms() []string
	// Translation is the first non-empty English field in the schema's
	// fixed priority order, or "".
	Translation() string
	// Romanization is the best available Latin-script reading, or "".
	Romanization() string
}

// FrequencyRecord is a row from the ranked top-4000 frequency CSV.
type FrequencyRecord struct {
	RecordID   int
	Rank       int
	Word       string
	English    string // gloss column of the frequency list itself
	IPA        string
	Frequency  int
	Example    string
	EDict      string // joined dictionary gloss
	EDictV     string // joined dictionary gloss variant
	Category   string
	Roman      string
	Phonetic   string
	Definition string
	Synonyms   string // comma separated Thai synonyms
	Antonyms   string
	Related    string // comma separated English related terms
}

func (r FrequencyRecord) ID() int          { return r.RecordID }
func (r FrequencyRecord) Headword() string { return r.Word }

func (r FrequencyRecord) SynonymTerms() []string {
	return splitTerms(r.Synonyms, r.Related)
}

func (r FrequencyRecord) Translation() string {
	return firstNonEmpty(r.EDict, r.EDictV, r.English)
}

func (r FrequencyRecord) Romanization() string {
	return firstNonEmpty(r.Roman, r.IPA, r.Phonetic)
}

// FullRecord is a row from the comprehensive dictionary CSV.
type FullRecord struct {
	RecordID       int
	DictID         int
	RomID          int
	Word           string
	EDictV         string
	RomEnglish     string
	DictCategory   string
	RomCategory    string
	Roman          string
	Phonetic       string
	MatchScore     float64
	SampleSentence string
	Definition     string
	Synonyms       string
	Antonyms       string
	Related        string
	Etymology      string
	Domain         string
	MatchType      string
}

func (r FullRecord) ID() int          { return r.RecordID }
func (r FullRecord) Headword() string { return r.Word }

func (r FullRecord) SynonymTerms() []string {
	return splitTerms(r.Synonyms, r.Related)
}

func (r FullRecord) Translation() string {
	return firstNonEmpty(r.EDictV, r.RomEnglish)
}

func (r FullRecord) Romanization() string {
	return firstNonEmpty(r.Roman, r.Phonetic)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitTerms(fields ...string) []string {
	var terms []string
	for _, f := range fields {
		if f == "" {
			continue
		}
		for _, part := range strings.Split(f, ",") {
			if t := strings.TrimSpace(part); t != "" {
				terms = append(terms, t)
			}
		}
	}
	return terms
}
