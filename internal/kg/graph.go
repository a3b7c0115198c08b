package kg

import "sort"

// Graph is a set-like statement collection for one page (or one merged
// chunk). Adding the same statement twice has no effect. A Graph is built
// by a single goroutine; callers merge page graphs explicitly.
type Graph struct {
	set map[Statement]struct{}
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{set: make(map[Statement]struct{})}
}

// Add inserts a statement. Duplicate inserts are idempotent.
func (g *Graph) Add(s Statement) {
	g.set[s] = struct{}{}
}

// Has reports whether the statement is present
func (g *Graph) Has(s Statement) bool {
	_, ok := g.set[s]
	return ok
}

// Len returns the number of distinct statements
func (g *Graph) Len() int {
	return len(g.set)
}

// Merge adds every statement of other into g
func (g *Graph) Merge(other *Graph) {
	for s := range other.set {
		g.set[s] = struct{}{}
	}
}

// Statements returns a deterministic snapshot, sorted by subject, predicate,
// object kind, object value, language. Serializers rely on this ordering so
// identical inputs produce identical output files.
func (g *Graph) Statements() []Statement {
	out := make([]Statement, 0, len(g.set))
	for s := range g.set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.Predicate != b.Predicate {
			return a.Predicate < b.Predicate
		}
		if a.Object.Kind != b.Object.Kind {
			return a.Object.Kind < b.Object.Kind
		}
		if a.Object.Value != b.Object.Value {
			return a.Object.Value < b.Object.Value
		}
		return a.Object.Lang < b.Object.Lang
	})
	return out
}
