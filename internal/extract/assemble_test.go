package extract

import (
	"reflect"
	"testing"

	"github.com/ppiankov/wikigraph/internal/kg"
	"github.com/ppiankov/wikigraph/internal/model"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	rules, err := ParseMappings([]byte(testMappingYAML))
	if err != nil {
		t.Fatalf("ParseMappings: %v", err)
	}
	ns := kg.NewNamespaces("https://lotr-kg.org", "https://tolkiengateway.net/wiki/")
	return NewBuilder(ns, rules, "en")
}

func mustBuild(t *testing.T, b *Builder, page model.Page, includeInfobox bool) *kg.Graph {
	t.Helper()
	g, warnings := b.BuildPage(page, includeInfobox)
	for _, w := range warnings {
		t.Errorf("unexpected warning: %v", w)
	}
	return g
}

func TestBuildPageCoreStatements(t *testing.T) {
	b := testBuilder(t)
	g := mustBuild(t, b, model.Page{Title: "Elrond"}, true)

	doc := "https://lotr-kg.org/page/Elrond"
	ent := "https://lotr-kg.org/resource/Elrond"
	src := "https://tolkiengateway.net/wiki/Elrond"

	want := []kg.Statement{
		{Subject: doc, Predicate: kg.SchemaAbout, Object: kg.IRI(ent)},
		{Subject: doc, Predicate: kg.SchemaURL, Object: kg.IRI(src)},
		{Subject: ent, Predicate: kg.SchemaURL, Object: kg.IRI(src)},
		{Subject: doc, Predicate: kg.RDFSLabel, Object: kg.LangLiteral("Elrond", "en")},
		{Subject: ent, Predicate: kg.RDFSLabel, Object: kg.LangLiteral("Elrond", "en")},
	}
	if g.Len() != len(want) {
		t.Errorf("Len = %d, want %d: %v", g.Len(), len(want), g.Statements())
	}
	for _, s := range want {
		if !g.Has(s) {
			t.Errorf("missing statement %+v", s)
		}
	}
}

func TestBuildPageInternalLinks(t *testing.T) {
	b := testBuilder(t)
	g := mustBuild(t, b, model.Page{
		Title: "Elrond",
		Links: []string{"Rivendell", "Celebrían"},
	}, true)

	ent := "https://lotr-kg.org/resource/Elrond"
	for _, target := range []string{
		"https://lotr-kg.org/resource/Rivendell",
		"https://lotr-kg.org/resource/Celebr%C3%ADan",
	} {
		s := kg.Statement{Subject: ent, Predicate: kg.SchemaRelatedTo, Object: kg.IRI(target)}
		if !g.Has(s) {
			t.Errorf("missing cross-reference to %s", target)
		}
	}
}

func TestBuildPageExternalLinks(t *testing.T) {
	b := testBuilder(t)
	g := mustBuild(t, b, model.Page{
		Title: "Elrond",
		ExternalLinks: []string{
			"https://en.wikipedia.org/wiki/Elrond",
			"https://example.com/elrond page",
			"http://bad host/x",
		},
	}, true)

	doc := "https://lotr-kg.org/page/Elrond"
	ent := "https://lotr-kg.org/resource/Elrond"

	// encyclopedia cross-link becomes an identity assertion on the entity
	if !g.Has(kg.Statement{Subject: ent, Predicate: kg.OWLSameAs, Object: kg.IRI("https://en.wikipedia.org/wiki/Elrond")}) {
		t.Error("missing owl:sameAs for encyclopedia link")
	}
	// escapable link becomes a document web address
	if !g.Has(kg.Statement{Subject: doc, Predicate: kg.SchemaURL, Object: kg.IRI("https://example.com/elrond%20page")}) {
		t.Error("missing escaped document web address")
	}
	// unescapable link survives verbatim as a literal
	if !g.Has(kg.Statement{Subject: doc, Predicate: kg.SchemaURL, Object: kg.Literal("http://bad host/x")}) {
		t.Error("missing literal fallback for unescapable link")
	}
}

func TestBuildPageInfobox(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title: "Elrond",
		Wikitext: `{{Infobox person
| name = Elrond
| image = Elrond.jpg
| race = [[Half-elven|Half-elf]] and [[Man]]
| website = see http://example.com/a b and more
| unmappedfield = ignored
}}`,
	}
	g := mustBuild(t, b, page, true)
	ent := "https://lotr-kg.org/resource/Elrond"

	checks := []kg.Statement{
		{Subject: ent, Predicate: kg.RDFType, Object: kg.IRI("http://schema.org/Person")},
		{Subject: ent, Predicate: kg.RDFType, Object: kg.IRI("https://lotr-kg.org/vocab/Character")},
		{Subject: ent, Predicate: "http://schema.org/name", Object: kg.Literal("Elrond")},
		{Subject: ent, Predicate: "http://schema.org/image", Object: kg.IRI("https://tolkiengateway.net/wiki/File:Elrond.jpg")},
		{Subject: ent, Predicate: "https://lotr-kg.org/prop/race", Object: kg.IRI("https://lotr-kg.org/resource/Half-elven")},
		{Subject: ent, Predicate: "https://lotr-kg.org/prop/race", Object: kg.IRI("https://lotr-kg.org/resource/Man")},
		{Subject: ent, Predicate: "http://schema.org/url", Object: kg.IRI("http://example.com/a%20b")},
	}
	for _, s := range checks {
		if !g.Has(s) {
			t.Errorf("missing statement %+v", s)
		}
	}

	// the connective between linked race values must not leak as a literal
	for _, s := range g.Statements() {
		if s.Predicate == "https://lotr-kg.org/prop/race" && s.Object.Kind == kg.ObjectLiteral {
			t.Errorf("unexpected race literal %q", s.Object.Value)
		}
	}
}

func TestBuildPageURLFieldDroppedWhenNotURL(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Elrond",
		Wikitext: "{{Infobox person|website=not a url}}",
	}
	g := mustBuild(t, b, page, true)

	ent := "https://lotr-kg.org/resource/Elrond"
	src := "https://tolkiengateway.net/wiki/Elrond"
	for _, s := range g.Statements() {
		if s.Subject == ent && s.Predicate == kg.SchemaURL && s.Object.Value != src {
			t.Errorf("web-address statement emitted for non-url value: %+v", s)
		}
	}
}

func TestBuildPageWikilinkFieldFallsBackToLiteral(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Arwen",
		Wikitext: "{{Infobox person|race=Half-elven}}",
	}
	g := mustBuild(t, b, page, true)

	s := kg.Statement{
		Subject:   "https://lotr-kg.org/resource/Arwen",
		Predicate: "https://lotr-kg.org/prop/race",
		Object:    kg.Literal("Half-elven"),
	}
	if !g.Has(s) {
		t.Errorf("missing literal fallback, got %v", g.Statements())
	}
}

func TestBuildPageNonContentLinkFiltered(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Elrond",
		Wikitext: "{{Infobox person|race=[[Category:Elves]]}}",
	}
	g := mustBuild(t, b, page, true)

	for _, s := range g.Statements() {
		if s.Predicate == "https://lotr-kg.org/prop/race" {
			t.Errorf("navigation-namespace link must emit nothing, got %+v", s)
		}
	}
}

func TestBuildPageEmptyFieldSkipped(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Elrond",
		Wikitext: "{{Infobox person|name=|race=  }}",
	}
	g := mustBuild(t, b, page, true)

	for _, s := range g.Statements() {
		if s.Predicate == "http://schema.org/name" || s.Predicate == "https://lotr-kg.org/prop/race" {
			t.Errorf("empty field produced %+v", s)
		}
	}
	// the type assertions still come from the matched template
	if !g.Has(kg.Statement{
		Subject:   "https://lotr-kg.org/resource/Elrond",
		Predicate: kg.RDFType,
		Object:    kg.IRI("http://schema.org/Person"),
	}) {
		t.Error("missing type statement for matched template")
	}
}

func TestBuildPageInfoboxDisabled(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Elrond",
		Wikitext: "{{Infobox person|name=Elrond}}",
	}
	g := mustBuild(t, b, page, false)

	if g.Len() != 5 {
		t.Errorf("Len = %d, want the 5 core statements only", g.Len())
	}
}

func TestBuildPageUnmappedTemplate(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Elrond",
		Wikitext: "{{Navbox|name=Elrond}}",
	}
	g := mustBuild(t, b, page, true)

	if g.Len() != 5 {
		t.Errorf("Len = %d, want the 5 core statements only", g.Len())
	}
}

func TestBuildPageDeterministic(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:         "Elrond",
		Wikitext:      "{{Infobox person|name=Elrond|race=[[Half-elven]], [[Man]]}}",
		Links:         []string{"Rivendell", "Vilya"},
		ExternalLinks: []string{"https://en.wikipedia.org/wiki/Elrond"},
	}

	first := mustBuild(t, b, page, true).Statements()
	second := mustBuild(t, b, page, true).Statements()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical pages produced differently ordered statement sets")
	}
}

func TestIsContentTitle(t *testing.T) {
	content := []string{"Elrond", "Half-elven", "Minas Tirith"}
	for _, title := range content {
		if !IsContentTitle(title) {
			t.Errorf("IsContentTitle(%q) = false, want true", title)
		}
	}
	nav := []string{"Category:Elves", "File:Elrond.jpg", "Template:Infobox", "talk:Elrond", "Special:Search", "Help:Editing"}
	for _, title := range nav {
		if IsContentTitle(title) {
			t.Errorf("IsContentTitle(%q) = true, want false", title)
		}
	}
}

func TestBuildPageMultipleInvocations(t *testing.T) {
	b := testBuilder(t)
	page := model.Page{
		Title:    "Rivendell",
		Wikitext: "{{Infobox location|name=Rivendell}}\n{{Infobox person|name=Elrond of Rivendell}}",
	}
	g := mustBuild(t, b, page, true)

	ent := "https://lotr-kg.org/resource/Rivendell"
	for _, want := range []kg.Statement{
		{Subject: ent, Predicate: kg.RDFType, Object: kg.IRI("http://schema.org/Place")},
		{Subject: ent, Predicate: kg.RDFType, Object: kg.IRI("http://schema.org/Person")},
		{Subject: ent, Predicate: "http://schema.org/name", Object: kg.Literal("Rivendell")},
		{Subject: ent, Predicate: "http://schema.org/name", Object: kg.Literal("Elrond of Rivendell")},
	} {
		if !g.Has(want) {
			t.Errorf("missing statement %+v", want)
		}
	}
}
