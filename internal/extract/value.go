// Package extract turns a page's markup into knowledge-graph statements
// according to a declarative mapping rule set. Classification and
// normalization are total functions over arbitrary input: malformed markup
// degrades to literal text or is dropped, never raised.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ppiankov/wikigraph/internal/wikitext"
)

var (
	// newlines and semicolons bind tighter than commas when splitting
	// list-like values; the combined pattern mirrors that precedence
	listSplitRe   = regexp.MustCompile(`[\n;]+|\s*,\s*`)
	emptyParensRe = regexp.MustCompile(`\(\s*\)`)
)

// connectives are bare conjunctions left behind once link tokens are
// removed ("[[A]] and [[B]]"); they carry no value on their own
var connectives = map[string]struct{}{
	"and": {},
	"or":  {},
	"&":   {},
}

// ClassifyValue splits a raw field value into wiki-link targets and cleaned
// literal fragments. A value containing only links yields no literals; a
// plain value with no delimiters yields exactly one literal equal to the
// trimmed text. Bracket syntax that does not match the two-segment link
// shape stays in the literal text.
func ClassifyValue(raw string) (linked []string, literals []string) {
	linked = wikitext.ExtractLinks(raw)

	cleaned := wikitext.StripMarkup(raw)
	cleaned = wikitext.RemoveLinks(cleaned)
	cleaned = emptyParensRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned != "" {
		literals = splitListish(cleaned)
	}
	return linked, literals
}

// splitListish breaks a cleaned value into list items, discarding empty
// fragments and stray connectives
func splitListish(text string) []string {
	var out []string
	for _, p := range listSplitRe.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" || isConnective(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// isConnective reports whether a fragment is a bare conjunction or a lone
// punctuation rune
func isConnective(s string) bool {
	if _, ok := connectives[strings.ToLower(s)]; ok {
		return true
	}
	runes := []rune(s)
	if len(runes) == 1 && !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		return true
	}
	return false
}
