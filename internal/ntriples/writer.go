// Package ntriples serializes statement graphs as N-Triples. The format is
// line-oriented, so chunk files can be merged and deduplicated without an
// RDF parser.
package ntriples

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/wikigraph/internal/kg"
)

// FormatStatement renders one statement as an N-Triples line (without the
// trailing newline)
func FormatStatement(s kg.Statement) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(escapeIRI(s.Subject))
	b.WriteString("> <")
	b.WriteString(escapeIRI(s.Predicate))
	b.WriteString("> ")

	switch s.Object.Kind {
	case kg.ObjectIRI:
		b.WriteByte('<')
		b.WriteString(escapeIRI(s.Object.Value))
		b.WriteByte('>')
	case kg.ObjectLangLiteral:
		b.WriteByte('"')
		b.WriteString(escapeLiteral(s.Object.Value))
		b.WriteString(`"@`)
		b.WriteString(s.Object.Lang)
	default:
		b.WriteByte('"')
		b.WriteString(escapeLiteral(s.Object.Value))
		b.WriteByte('"')
	}
	b.WriteString(" .")
	return b.String()
}

// WriteGraph writes a graph in deterministic sorted order
func WriteGraph(w io.Writer, g *kg.Graph) error {
	bw := bufio.NewWriter(w)
	for _, s := range g.Statements() {
		if _, err := bw.WriteString(FormatStatement(s)); err != nil {
			return fmt.Errorf("write statement: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write statement: %w", err)
		}
	}
	return bw.Flush()
}

// escapeLiteral applies N-Triples string escapes
func escapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeIRI guards against the few characters that would break the <...>
// token. Identifiers built by this engine are already percent-escaped;
// this is a backstop for externally supplied IRIs.
func escapeIRI(s string) string {
	if !strings.ContainsAny(s, "<>\"{}|^` \\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '<', '>', '"', '{', '}', '|', '^', '`', ' ', '\\':
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
