package wikitext

import (
	"regexp"
	"strings"
)

// wikiLinkRe matches [[Target]] and [[Target|Display]]. The target stops at
// '|', ']' or a '#' section anchor; anything not matching the two-segment
// shape is left alone as literal text.
var wikiLinkRe = regexp.MustCompile(`\[\[([^\]|#]+)(?:\|[^\]]+)?\]\]`)

// ExtractLinks returns the targets of every well-formed wiki link in text,
// in document order. Display text is discarded.
func ExtractLinks(text string) []string {
	var out []string
	for _, m := range wikiLinkRe.FindAllStringSubmatch(text, -1) {
		if t := strings.TrimSpace(m[1]); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// RemoveLinks deletes every well-formed wiki-link token from text
func RemoveLinks(text string) string {
	return wikiLinkRe.ReplaceAllString(text, "")
}
