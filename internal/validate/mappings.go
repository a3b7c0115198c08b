// Package validate checks mapping configuration before a run, catching
// rule-set mistakes that would otherwise surface as silently missing or
// malformed statements.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/wikigraph/internal/extract"
)

// Issue is one problem found in the mapping rule set
type Issue struct {
	Template string
	Field    string
	Problem  string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("template %q: %s", i.Template, i.Problem)
	}
	return fmt.Sprintf("template %q field %q: %s", i.Template, i.Field, i.Problem)
}

// Mappings inspects a loaded rule set and reports configuration issues:
// non-absolute IRIs in classes or field properties, and templates with no
// field rules at all. The rule set itself is never mutated.
func Mappings(rs *extract.RuleSet) []Issue {
	var issues []Issue

	for _, name := range rs.Names() {
		rule, _ := rs.Lookup(name)

		if len(rule.Classes) == 0 {
			issues = append(issues, Issue{Template: name, Problem: "no target class declared"})
		}
		for _, class := range rule.Classes {
			if !isAbsoluteIRI(class) {
				issues = append(issues, Issue{Template: name, Problem: fmt.Sprintf("class %q is not an absolute IRI", class)})
			}
		}

		if len(rule.Fields) == 0 {
			issues = append(issues, Issue{Template: name, Problem: "no field rules"})
		}

		fields := make([]string, 0, len(rule.Fields))
		for f := range rule.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			if !isAbsoluteIRI(rule.Fields[f].Property) {
				issues = append(issues, Issue{Template: name, Field: f, Problem: fmt.Sprintf("property %q is not an absolute IRI", rule.Fields[f].Property)})
			}
		}
	}
	return issues
}

func isAbsoluteIRI(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
