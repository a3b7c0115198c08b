package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/wikigraph/internal/wikitext"
)

// Per-component safe sets for percent-escaping. '%' is included so common
// already-escaped sequences are not destructively double-escaped.
const (
	pathSafe     = `/:_()'-.,~%`
	querySafe    = `=&?/:_()'-.,~%`
	fragmentSafe = `:_()'-.,~%`
)

var (
	// schemeTokenRe picks a URL out of a whitespace token, tolerating the
	// leading '[' of external-link bracket syntax
	schemeTokenRe = regexp.MustCompile(`^\[*(https?://[^\s\]]+)`)

	// bareDomainRe matches host-only values like www.example.com/path; the
	// top-level label must be alphabetic
	bareDomainRe = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(/.*)?$`)
)

// ExtractURLs scans raw field text for embedded absolute http(s) URLs.
// Infobox values sometimes carry an unescaped space inside the path, so a
// URL with a path keeps absorbing following tokens until a connective, a
// bracket boundary, or another URL starts; host-only URLs never absorb.
func ExtractURLs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	tokens := strings.Fields(raw)
	var out []string
	i := 0
	for i < len(tokens) {
		m := schemeTokenRe.FindStringSubmatch(tokens[i])
		if m == nil {
			i++
			continue
		}
		u := m[1]
		i++
		for i < len(tokens) && hasPath(u) {
			tok := tokens[i]
			if isConnective(tok) || strings.ContainsAny(tok, "[]") || schemeTokenRe.MatchString(tok) {
				break
			}
			u += " " + tok
			i++
		}
		out = append(out, u)
	}
	return out
}

func hasPath(u string) bool {
	if i := strings.Index(u, "://"); i >= 0 {
		return strings.Contains(u[i+3:], "/")
	}
	return false
}

// NormalizeURL turns raw field text into a well-formed absolute reference.
// Markup is stripped first; an explicit http(s) URL is escaped as-is, a
// bare domain gets https:// prepended. Anything else is not a URL and the
// caller must fall back or drop the value.
func NormalizeURL(raw string) (string, bool) {
	u := strings.TrimSpace(wikitext.StripMarkup(raw))
	if u == "" {
		return "", false
	}

	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return SafeIRI(u)
	}
	if bareDomainRe.MatchString(u) {
		return SafeIRI("https://" + u)
	}
	return "", false
}

// SafeIRI percent-escapes the path, query and fragment of an absolute URL,
// never touching scheme or authority. Returns not-ok for anything without
// both, or with control characters or an unescapable authority — callers
// must never emit an invalid absolute reference.
func SafeIRI(raw string) (string, bool) {
	u := strings.TrimSpace(raw)
	if u == "" || hasControl(u) {
		return "", false
	}

	sep := strings.Index(u, "://")
	if sep <= 0 || !validScheme(u[:sep]) {
		return "", false
	}
	scheme, rest := u[:sep], u[sep+3:]

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	host, tail := rest[:end], rest[end:]
	if host == "" || strings.ContainsAny(host, " \t") {
		return "", false
	}

	var path, query, fragment string
	if h := strings.IndexByte(tail, '#'); h >= 0 {
		fragment = tail[h+1:]
		tail = tail[:h]
	}
	if q := strings.IndexByte(tail, '?'); q >= 0 {
		query = tail[q+1:]
		tail = tail[:q]
	}
	path = tail

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	b.WriteString(escapeComponent(path, pathSafe))
	if query != "" {
		b.WriteByte('?')
		b.WriteString(escapeComponent(query, querySafe))
	}
	if fragment != "" {
		b.WriteByte('#')
		b.WriteString(escapeComponent(fragment, fragmentSafe))
	}
	return b.String(), true
}

func validScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return len(s) > 0
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}

const upperhex = "0123456789ABCDEF"

// escapeComponent percent-escapes every byte outside ASCII letters, digits
// and the component's safe set
func escapeComponent(s, safe string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			strings.IndexByte(safe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
