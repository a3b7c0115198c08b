package kg

import "strings"

// Namespaces holds the base IRIs for the three identifier spaces. Base is
// the knowledge-graph root (entity identifiers live under /resource/,
// document identifiers under /page/), WikiBase is the wiki article root
// used for source URLs and file-description pages.
type Namespaces struct {
	Base     string
	WikiBase string
}

// NewNamespaces trims trailing slashes so segment joins are uniform
func NewNamespaces(base, wikiBase string) Namespaces {
	return Namespaces{
		Base:     strings.TrimRight(base, "/"),
		WikiBase: strings.TrimRight(wikiBase, "/") + "/",
	}
}

// EscapeTitle percent-encodes a title into a safe IRI path segment: trim,
// internal spaces become underscores, every byte outside the unreserved set
// (plus underscore) is escaped. Character-for-character and reversible via
// standard percent-decoding, so distinct titles never collide.
func EscapeTitle(title string) string {
	t := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	var b strings.Builder
	b.Grow(len(t))
	for i := 0; i < len(t); i++ {
		c := t[i]
		if isUnreserved(c) || c == '_' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '.' || c == '-' || c == '~'
}

// EntityIRI is the canonical identifier for the thing a page describes
func (n Namespaces) EntityIRI(title string) string {
	return n.Base + "/resource/" + EscapeTitle(title)
}

// DocumentIRI is the identifier for the page itself, distinct from the
// entity it describes (document schema:about entity)
func (n Namespaces) DocumentIRI(title string) string {
	return n.Base + "/page/" + EscapeTitle(title)
}

// MediaIRI is the wiki file-description page for an image filename. A
// leading "File:" qualifier is stripped case-insensitively before escaping.
// Returns "" for an empty filename.
func (n Namespaces) MediaIRI(filename string) string {
	f := strings.TrimSpace(filename)
	if len(f) >= 5 && strings.EqualFold(f[:5], "file:") {
		f = strings.TrimSpace(f[5:])
	}
	if f == "" {
		return ""
	}
	return n.WikiBase + "File:" + EscapeTitle(f)
}

// SourceURL is the canonical article URL on the source wiki
func (n Namespaces) SourceURL(title string) string {
	return n.WikiBase + EscapeTitle(title)
}

// VocabIRI and PropIRI address the project vocabulary under Base. Mapping
// files may use them as shorthand for full IRIs.
func (n Namespaces) VocabIRI(local string) string {
	return n.Base + "/vocab/" + local
}

func (n Namespaces) PropIRI(local string) string {
	return n.Base + "/prop/" + local
}
