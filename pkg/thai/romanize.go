package thai

import (
	"strings"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/dictionary"
)

// Romanizer converts Thai tokens to a Latin-script reading. When a
// dictionary index is attached, the romanization field of an exact headword
// match is preferred; out-of-dictionary tokens fall back to a grapheme-level
// RTGS-style mapping. Deterministic either way.
type Romanizer struct {
	Index *dictionary.Index
}

// NewRomanizer returns a Romanizer backed by ix; ix may be nil for the
// rule-based fallback only.
func NewRomanizer(ix *dictionary.Index) *Romanizer {
	return &Romanizer{Index: ix}
}

// Romanize implements the annotation romanizer collaborator.
func (r *Romanizer) Romanize(token string) string {
	if r.Index != nil {
		for _, rec := range r.Index.Search(token) {
			if rom := rec.Romanization(); rom != "" {
				return rom
			}
		}
	}
	return rtgs(token)
}

// rtgs maps each Thai grapheme to its initial-position RTGS value. Tone
// marks and the cancellation mark are dropped. Preposed vowels are emitted
// in storage order rather than reordered around the consonant, and final
// consonants keep their initial values; close enough for a learning aid.
func rtgs(token string) string {
	var b strings.Builder
	for _, r := range token {
		if s, ok := rtgsMap[r]; ok {
			b.WriteString(s)
			continue
		}
		if r < 0x0E00 || r > 0x0E7F {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var rtgsMap = map[rune]string{
	// Consonants.
	'ก': "k", 'ข': "kh", 'ฃ': "kh", 'ค': "kh", 'ฅ': "kh", 'ฆ': "kh",
	'ง': "ng", 'จ': "ch", 'ฉ': "ch", 'ช': "ch", 'ซ': "s", 'ฌ': "ch",
	'ญ': "y", 'ฎ': "d", 'ฏ': "t", 'ฐ': "th", 'ฑ': "th", 'ฒ': "th",
	'ณ': "n", 'ด': "d", 'ต': "t", 'ถ': "th", 'ท': "th", 'ธ': "th",
	'น': "n", 'บ': "b", 'ป': "p", 'ผ': "ph", 'ฝ': "f", 'พ': "ph",
	'ฟ': "f", 'ภ': "ph", 'ม': "m", 'ย': "y", 'ร': "r", 'ล': "l",
	'ว': "w", 'ศ': "s", 'ษ': "s", 'ส': "s", 'ห': "h", 'ฬ': "l",
	'อ': "o", 'ฮ': "h",
	// Independent vowels and combining vowel signs.
	'ฤ': "rue", 'ฦ': "lue",
	'ะ': "a", 'ั': "a", 'า': "a", 'ำ': "am",
	'ิ': "i", 'ี': "i", 'ึ': "ue", 'ื': "ue",
	'ุ': "u", 'ู': "u",
	'เ': "e", 'แ': "ae", 'โ': "o", 'ใ': "ai", 'ไ': "ai",
	// Digits.
	'๐': "0", '๑': "1", '๒': "2", '๓': "3", '๔': "4",
	'๕': "5", '๖': "6", '๗': "7", '๘': "8", '๙': "9",
}
