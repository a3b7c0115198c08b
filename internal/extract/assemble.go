package extract

import (
	"strings"

	"github.com/ppiankov/wikigraph/internal/kg"
	"github.com/ppiankov/wikigraph/internal/model"
)

// Builder assembles the statement graph for one page. It holds only the
// shared read-only namespaces and rule set, so one Builder serves any
// number of concurrent page builds.
type Builder struct {
	ns        kg.Namespaces
	rules     *RuleSet
	labelLang string
}

// NewBuilder creates a page graph builder
func NewBuilder(ns kg.Namespaces, rules *RuleSet, labelLang string) *Builder {
	if labelLang == "" {
		labelLang = "en"
	}
	return &Builder{ns: ns, rules: rules, labelLang: labelLang}
}

// BuildPage produces the full statement set for one page: the core identity
// statements, cross-reference statements for internal links, external-link
// statements, and, when includeInfobox is set, the mapped infobox fields.
// Returned warnings are per-invocation failures that were isolated; the
// rest of the page is always built.
func (b *Builder) BuildPage(page model.Page, includeInfobox bool) (*kg.Graph, []error) {
	g := kg.NewGraph()

	doc := b.ns.DocumentIRI(page.Title)
	ent := b.ns.EntityIRI(page.Title)
	src := b.ns.SourceURL(page.Title)

	// Core identity: the document describes the entity, both carry the
	// canonical source URL and the verbatim title as display label.
	g.Add(kg.Statement{Subject: doc, Predicate: kg.SchemaAbout, Object: kg.IRI(ent)})
	g.Add(kg.Statement{Subject: doc, Predicate: kg.SchemaURL, Object: kg.IRI(src)})
	g.Add(kg.Statement{Subject: ent, Predicate: kg.SchemaURL, Object: kg.IRI(src)})
	g.Add(kg.Statement{Subject: doc, Predicate: kg.RDFSLabel, Object: kg.LangLiteral(page.Title, b.labelLang)})
	g.Add(kg.Statement{Subject: ent, Predicate: kg.RDFSLabel, Object: kg.LangLiteral(page.Title, b.labelLang)})

	for _, title := range page.Links {
		g.Add(kg.Statement{Subject: ent, Predicate: kg.SchemaRelatedTo, Object: kg.IRI(b.ns.EntityIRI(title))})
	}

	// External links are page metadata and best-effort: an encyclopedia
	// cross-link becomes owl:sameAs on the entity, everything else a
	// document-level web address, preserved as a literal when it cannot be
	// escaped. Field-sourced URLs are held to the stricter contract in
	// applyField and dropped instead.
	for _, u := range page.ExternalLinks {
		safe, ok := SafeIRI(u)
		switch {
		case ok && strings.Contains(strings.ToLower(u), "wikipedia.org/wiki/"):
			g.Add(kg.Statement{Subject: ent, Predicate: kg.OWLSameAs, Object: kg.IRI(safe)})
		case ok:
			g.Add(kg.Statement{Subject: doc, Predicate: kg.SchemaURL, Object: kg.IRI(safe)})
		default:
			g.Add(kg.Statement{Subject: doc, Predicate: kg.SchemaURL, Object: kg.Literal(u)})
		}
	}

	var warnings []error
	if includeInfobox {
		for _, tmpl := range FindMapped(page.Wikitext, b.rules) {
			if err := b.applyInvocation(g, ent, tmpl); err != nil {
				warnings = append(warnings, err)
			}
		}
	}
	return g, warnings
}
