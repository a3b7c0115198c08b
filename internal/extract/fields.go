package extract

import (
	"fmt"
	"strings"

	"github.com/ppiankov/wikigraph/internal/kg"
	"github.com/ppiankov/wikigraph/internal/wikitext"
)

// nonContentPrefixes name wiki namespaces whose links are navigation, not
// cross-references between entities
var nonContentPrefixes = []string{
	"category:", "file:", "template:", "help:", "special:", "talk:",
}

// IsContentTitle reports whether a linked title refers to a content page
func IsContentTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, p := range nonContentPrefixes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	return true
}

// applyInvocation maps one matched template invocation onto statements
// about the entity. A panic while scanning one invocation is recovered
// here so a single bad template never blanks the rest of the page.
func (b *Builder) applyInvocation(g *kg.Graph, entity string, tmpl wikitext.Template) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("template %q: %v", tmpl.Name, r)
		}
	}()

	rule, ok := b.rules.Lookup(tmpl.Name)
	if !ok {
		return nil
	}

	for _, class := range rule.Classes {
		g.Add(kg.Statement{Subject: entity, Predicate: kg.RDFType, Object: kg.IRI(class)})
	}

	for _, param := range tmpl.Params {
		field, ok := rule.Fields[strings.ToLower(strings.TrimSpace(param.Name))]
		if !ok {
			continue
		}
		raw := strings.TrimSpace(param.Value)
		if raw == "" {
			continue
		}
		b.applyField(g, entity, field, raw)
	}
	return nil
}

// applyField emits the statements for one non-empty field value
func (b *Builder) applyField(g *kg.Graph, entity string, field FieldRule, raw string) {
	// The web-address predicate must always carry an IRI. Embedded URLs
	// win; a value that cannot be normalized emits nothing rather than a
	// literal that violates the schema.
	if field.Property == kg.SchemaURL {
		urls := ExtractURLs(raw)
		if len(urls) == 0 {
			urls = []string{raw}
		}
		for _, u := range urls {
			if nu, ok := NormalizeURL(u); ok {
				g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.IRI(nu)})
			}
		}
		return
	}

	switch field.Kind {
	case KindImage:
		if iri := b.ns.MediaIRI(wikitext.StripMarkup(raw)); iri != "" {
			g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.IRI(iri)})
		}

	case KindLiteral:
		g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.Literal(wikitext.StripMarkup(raw))})

	case KindAuto, KindWikilinkOrLiteral:
		linked, literals := ClassifyValue(raw)
		for _, title := range linked {
			if IsContentTitle(title) {
				g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.IRI(b.ns.EntityIRI(title))})
			}
		}
		for _, lit := range literals {
			g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.Literal(lit)})
		}
		// every non-empty field yields at least one statement
		if len(linked) == 0 && len(literals) == 0 {
			g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.Literal(wikitext.StripMarkup(raw))})
		}

	default:
		g.Add(kg.Statement{Subject: entity, Predicate: field.Property, Object: kg.Literal(wikitext.StripMarkup(raw))})
	}
}
