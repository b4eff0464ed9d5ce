package dictionary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a dictionary CSV from disk, detecting the schema from the
// header row: a "freq_rank" column marks the frequency list, anything else
// is treated as the comprehensive dictionary.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return records, nil
}

// Read parses dictionary CSV rows. Rows without a usable id are skipped
// rather than failing the whole file.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		// Excel exports carry a BOM on the first header cell.
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))] = i
	}
	_, isFrequency := cols["freq_rank"]

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return NormalizeText(row[i])
		}
		id, ok := parseInt(get("id"))
		if !ok {
			continue
		}
		if isFrequency {
			records = append(records, frequencyFromRow(id, get))
		} else {
			records = append(records, fullFromRow(id, get))
		}
	}
	return records, nil
}

func frequencyFromRow(id int, get func(string) string) FrequencyRecord {
	rank, _ := parseInt(get("freq_rank"))
	freq, _ := parseInt(get("frequency"))
	return FrequencyRecord{
		RecordID:   id,
		Rank:       rank,
		Word:       get("t_word"),
		English:    get("freq_english"),
		IPA:        get("freq_ipa"),
		Frequency:  freq,
		Example:    get("freq_example"),
		EDict:      get("e_dict"),
		EDictV:     get("e_dict_v"),
		Category:   get("dict_category"),
		Roman:      get("romanization"),
		Phonetic:   get("phonetic"),
		Definition: get("t_def"),
		Synonyms:   get("t_syn"),
		Antonyms:   get("t_ant"),
		Related:    get("e_related"),
	}
}

func fullFromRow(id int, get func(string) string) FullRecord {
	dictID, _ := parseInt(get("dict_id"))
	romID, _ := parseInt(get("rom_id"))
	score, _ := parseFloat(get("match_score"))
	return FullRecord{
		RecordID:       id,
		DictID:         dictID,
		RomID:          romID,
		Word:           get("t_word"),
		EDictV:         get("e_dict_v"),
		RomEnglish:     get("rom_english"),
		DictCategory:   get("dict_category"),
		RomCategory:    get("rom_category"),
		Roman:          get("romanization"),
		Phonetic:       get("phonetic"),
		MatchScore:     score,
		SampleSentence: get("t_sample_sentence"),
		Definition:     get("t_def"),
		Synonyms:       get("t_syn"),
		Antonyms:       get("t_ant"),
		Related:        get("e_related"),
		Etymology:      get("etymology"),
		Domain:         get("domain"),
		MatchType:      get("match_type"),
	}
}

// parseInt tolerates empty cells and literal "null" markers.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
