package annotate

import (
	"strings"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/dictionary"
)

// Tokenizer segments unspaced Thai text into surface tokens, including
// punctuation and Latin fragments; the annotator filters those out.
type Tokenizer interface {
	Segment(text string) []string
}

// Romanizer converts a Thai token into a deterministic Latin-script reading.
type Romanizer interface {
	Romanize(token string) string
}

// Lookup is one dictionary tier consulted for translations.
type Lookup interface {
	Translations(headword string) []string
}

// Token is one annotated Thai word. JSON field names match the learning
// API's wire format.
type Token struct {
	Surface      string   `json:"thai"`
	Romanization string   `json:"transliterated"`
	Translations []string `json:"english_translations"`
}

// Annotator builds word-level breakdowns of Thai subtitle lines. Lookup
// tiers are tried in order until one yields a non-empty translation list;
// a later tier fully replaces an earlier empty result, never merges.
type Annotator struct {
	Tokenizer Tokenizer
	Romanizer Romanizer
	Lookups   []Lookup
	Cache     *Cache
}

// New constructs an Annotator. cache may be nil to disable memoization.
func New(tok Tokenizer, rom Romanizer, cache *Cache, lookups ...Lookup) *Annotator {
	return &Annotator{Tokenizer: tok, Romanizer: rom, Lookups: lookups, Cache: cache}
}

// Annotate segments text and annotates each Thai token. Tokens without any
// character in the Thai Unicode block contribute nothing to the output.
// Output order follows token order.
func (a *Annotator) Annotate(text string) []Token {
	var out []Token
	for _, surface := range a.Tokenizer.Segment(dictionary.NormalizeText(text)) {
		if strings.TrimSpace(surface) == "" || !ContainsThai(surface) {
			continue
		}
		out = append(out, a.annotateToken(surface))
	}
	return out
}

func (a *Annotator) annotateToken(surface string) Token {
	if a.Cache != nil {
		if tok, ok := a.Cache.Get(surface); ok {
			return tok
		}
	}
	tok := Token{Surface: surface, Romanization: a.Romanizer.Romanize(surface)}
	for _, lookup := range a.Lookups {
		if tr := lookup.Translations(surface); len(tr) > 0 {
			tok.Translations = tr
			break
		}
	}
	if a.Cache != nil {
		a.Cache.Put(surface, tok)
	}
	return tok
}

// ContainsThai reports whether s has at least one rune in the Thai Unicode
// block (U+0E00..U+0E7F).
func ContainsThai(s string) bool {
	for _, r := range s {
		if r >= 0x0E00 && r <= 0x0E7F {
			return true
		}
	}
	return false
}
