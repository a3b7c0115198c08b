// Package wikitext provides low-level handling of MediaWiki markup:
// stripping presentation markup from field values, extracting wiki-link
// targets, and scanning template invocations. All functions are total over
// arbitrary input; malformed markup degrades to literal text.
package wikitext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	refBlockRe   = regexp.MustCompile(`(?is)<ref[^>]*>.*?</ref>`)
	refClosedRe  = regexp.MustCompile(`(?i)<ref[^>]*/\s*>`)
	horizWSRe    = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLinesRe = regexp.MustCompile(`\n\s*\n+`)
)

// StripMarkup removes non-semantic markup from a raw field value:
// reference blocks are dropped entirely (including self-closing forms),
// <br> becomes a newline, remaining tags are removed with their enclosed
// text preserved, horizontal whitespace runs collapse to one space and
// blank-line runs to one newline. HTML entities are decoded as a side
// effect of tokenization.
func StripMarkup(text string) string {
	t := strings.TrimSpace(text)

	// Well-formed reference blocks go first so their content never leaks
	// into the literal. Unclosed refs fall through to plain tag removal.
	t = refBlockRe.ReplaceAllString(t, "")
	t = refClosedRe.ReplaceAllString(t, "")

	t = dropTags(t)

	t = horizWSRe.ReplaceAllString(t, " ")
	t = blankLinesRe.ReplaceAllString(t, "\n")
	return strings.TrimSpace(t)
}

// dropTags walks the HTML token stream keeping text nodes, turning <br>
// into newlines and discarding every other tag
func dropTags(t string) string {
	if !strings.Contains(t, "<") {
		return t
	}

	z := html.NewTokenizer(strings.NewReader(t))
	var b strings.Builder
	b.Grow(len(t))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
