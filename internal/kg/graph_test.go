package kg

import (
	"reflect"
	"testing"
)

func st(s, p string, o Object) Statement {
	return Statement{Subject: s, Predicate: p, Object: o}
}

func TestGraphAddIdempotent(t *testing.T) {
	g := NewGraph()
	s := st("https://lotr-kg.org/resource/Elrond", RDFSLabel, LangLiteral("Elrond", "en"))

	g.Add(s)
	g.Add(s)
	g.Add(s)

	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
	if !g.Has(s) {
		t.Error("Has returned false for an added statement")
	}
}

func TestGraphDistinguishesObjectKinds(t *testing.T) {
	g := NewGraph()
	subj := "https://lotr-kg.org/resource/Elrond"

	g.Add(st(subj, SchemaURL, IRI("https://example.com")))
	g.Add(st(subj, SchemaURL, Literal("https://example.com")))
	g.Add(st(subj, SchemaURL, LangLiteral("https://example.com", "en")))

	if g.Len() != 3 {
		t.Errorf("Len = %d, want 3 (objects of different kinds are distinct)", g.Len())
	}
}

func TestGraphMerge(t *testing.T) {
	a := NewGraph()
	b := NewGraph()
	shared := st("s", "p", Literal("both"))

	a.Add(shared)
	a.Add(st("s", "p", Literal("only a")))
	b.Add(shared)
	b.Add(st("s", "p", Literal("only b")))

	a.Merge(b)

	if a.Len() != 3 {
		t.Errorf("merged Len = %d, want 3", a.Len())
	}
	if b.Len() != 2 {
		t.Errorf("Merge mutated the source graph: Len = %d, want 2", b.Len())
	}
}

func TestGraphStatementsDeterministic(t *testing.T) {
	build := func() *Graph {
		g := NewGraph()
		g.Add(st("b", "p", Literal("2")))
		g.Add(st("a", "q", IRI("x")))
		g.Add(st("a", "p", LangLiteral("1", "en")))
		g.Add(st("a", "p", Literal("1")))
		return g
	}

	first := build().Statements()
	second := build().Statements()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Statements order differs between identical graphs")
	}

	expected := []Statement{
		st("a", "p", Literal("1")),
		st("a", "p", LangLiteral("1", "en")),
		st("a", "q", IRI("x")),
		st("b", "p", Literal("2")),
	}
	if !reflect.DeepEqual(first, expected) {
		t.Errorf("Statements = %v, want %v", first, expected)
	}
}
