package dictionary

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Zero-width characters that sneak into CSV exports and pasted Thai text.
var zeroWidth = strings.NewReplacer(
	"​", "", // zero width space
	"‌", "", // zero width non-joiner
	"‍", "", // zero width joiner
	"⁠", "", // word joiner
	"\uFEFF", "", // BOM
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// NormalizeText strips zero-width characters, converts NBSP to regular
// spaces, collapses whitespace runs and applies Unicode NFC. NFC fixes
// combining-mark order, which matters for Thai vowel/tone sequences.
// Returns "" when nothing remains.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = zeroWidth.Replace(s)
	s = whitespaceRE.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return norm.NFC.String(s)
}

// NormalizeTerm normalizes a search key: NormalizeText plus lowercasing so
// English headwords match case-insensitively.
func NormalizeTerm(s string) string {
	return strings.ToLower(NormalizeText(s))
}
