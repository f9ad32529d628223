// Package nlp provides the small amount of natural-language string
// handling the generator needs: splitting identifier-like text into word
// tokens so spellings such as "fileName" and "file_name" compare equal.
package nlp

import (
	"strings"
	"unicode"
)

// Segment splits a string into lowercase word tokens. Word boundaries are
// delimiter characters (anything that is neither letter nor digit),
// lower-to-upper case transitions, letter/digit transitions, and the final
// capital of an acronym run ("HTTPServer" segments to "http", "server").
// Corpus-free and deterministic.
func Segment(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if i > 0 && boundary(runes, i) {
			flush()
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// boundary reports whether a new word starts at index i.
func boundary(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]
	switch {
	case !unicode.IsLetter(prev) && !unicode.IsDigit(prev):
		return false // delimiter already flushed
	case unicode.IsDigit(prev) != unicode.IsDigit(r):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r):
		// Last capital of an acronym run starts the next word when a
		// lowercase letter follows.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	default:
		return false
	}
}
