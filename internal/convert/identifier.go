// Package convert holds the backend-independent naming machinery: turning
// free-text argument and tool names into legal, convention-compliant,
// collision-free identifiers for a target workflow language.
package convert

import (
	"strings"

	"github.com/tcollier/taskgen/internal/nlp"
)

// Convention selects the identifier style applied to chosen names. It is
// generator-level configuration, fixed for a whole generation run.
type Convention string

const (
	Snake Convention = "snake"
	Camel Convention = "camel"
)

// Valid reports whether the convention is one taskgen knows.
func (c Convention) Valid() bool {
	return c == Snake || c == Camel
}

// Join renders word tokens in the convention. Tokens are assumed
// lowercase, as produced by nlp.Segment.
func (c Convention) Join(words []string) string {
	if len(words) == 0 {
		return ""
	}
	if c == Camel {
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(capitalize(w))
		}
		return b.String()
	}
	return strings.Join(words, "_")
}

// SanitizeIdentifier reduces raw text to the identifier grammar
// [A-Za-z][A-Za-z0-9_]*: leading characters are dropped until an ASCII
// letter, and every later character outside [A-Za-z0-9_] is stripped.
// Returns "" when nothing legal remains; callers must substitute a
// synthetic name rather than emit an empty identifier.
func SanitizeIdentifier(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case (r >= '0' && r <= '9') || r == '_':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// ArgumentName renders a raw argument name as a legal identifier in the
// convention: segment into words, join, then enforce the grammar.
func ArgumentName(raw string, conv Convention) string {
	return SanitizeIdentifier(conv.Join(nlp.Segment(raw)))
}

// TaskName builds an UpperCamelCase task name from the literal invocation
// tokens: each token is stripped to legal characters, then the tokens are
// camelized together ("bwa mem" becomes "BwaMem").
func TaskName(tokens []string) string {
	var parts []string
	for _, tok := range tokens {
		for _, w := range nlp.Segment(SanitizeIdentifier(tok)) {
			parts = append(parts, capitalize(w))
		}
	}
	return SanitizeIdentifier(strings.Join(parts, ""))
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
