package dictionary

import "sort"

// Index is an exact-match lookup table over normalized headwords. It is
// built once and read-only afterwards, so it is safe for concurrent use.
type Index struct {
	byHeadword map[string][]Record
	bySynonym  map[string][]Record
}

// NewIndex builds an index over the given records. Headwords and synonym
// terms are keyed by their normalized form; duplicate record ids under the
// same key collapse to one.
func NewIndex(records []Record) *Index {
	ix := &Index{
		byHeadword: make(map[string][]Record),
		bySynonym:  make(map[string][]Record),
	}
	for _, rec := range records {
		if key := NormalizeTerm(rec.Headword()); key != "" {
			ix.byHeadword[key] = appendUnique(ix.byHeadword[key], rec)
		}
		for _, syn := range rec.SynonymTerms() {
			if key := NormalizeTerm(syn); key != "" {
				ix.bySynonym[key] = appendUnique(ix.bySynonym[key], rec)
			}
		}
	}
	return ix
}

// Search returns records whose normalized headword exactly equals the
// normalized term, ordered by record id. No fuzzy, prefix or substring
// matching.
func (ix *Index) Search(term string) []Record {
	key := NormalizeTerm(term)
	if key == "" {
		return nil
	}
	return sortByID(append([]Record(nil), ix.byHeadword[key]...))
}

// SearchAll matches headwords and the comma-separated synonym/related
// fields. Results are deduplicated and ordered by record id.
func (ix *Index) SearchAll(term string) []Record {
	key := NormalizeTerm(term)
	if key == "" {
		return nil
	}
	merged := append([]Record(nil), ix.byHeadword[key]...)
	for _, rec := range ix.bySynonym[key] {
		merged = appendUnique(merged, rec)
	}
	return sortByID(merged)
}

// Translations returns the aggregate translation list for an exact headword
// match. With this, an *Index plugs straight in as an annotation lookup tier.
func (ix *Index) Translations(term string) []string {
	return Translations(ix.Search(term))
}

// Translations collects the translation of each record, deduplicated and
// sorted for a stable aggregate list.
func Translations(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		tr := rec.Translation()
		if tr == "" {
			continue
		}
		if _, ok := seen[tr]; ok {
			continue
		}
		seen[tr] = struct{}{}
		out = append(out, tr)
	}
	sort.Strings(out)
	return out
}

func appendUnique(records []Record, rec Record) []Record {
	for _, r := range records {
		if r.ID() == rec.ID() {
			return records
		}
	}
	return append(records, rec)
}

func sortByID(records []Record) []Record {
	sort.Slice(records, func(i, j int) bool { return records[i].ID() < records[j].ID() })
	return records
}
