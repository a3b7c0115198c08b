package extract

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/wikigraph/internal/wikitext"
)

// FieldKind selects how a field value becomes statements. Kind strings in
// the mapping file resolve to this enum once at load time so extraction
// never dispatches on raw configuration strings.
type FieldKind int

const (
	// KindAuto classifies the value into links and literals
	KindAuto FieldKind = iota
	// KindLiteral emits the stripped value as one plain literal
	KindLiteral
	// KindImage derives a file-description page identifier
	KindImage
	// KindWikilinkOrLiteral behaves like KindAuto; kept as a distinct name
	// because mapping files use both spellings
	KindWikilinkOrLiteral
)

// FieldRule binds one infobox field to a target predicate and value kind
type FieldRule struct {
	Property string
	Kind     FieldKind
}

// TemplateRule is the mapping for one template: the rdf:type IRIs its
// subject receives and the per-field rules, keyed by lowercased field name
type TemplateRule struct {
	Classes []string
	Fields  map[string]FieldRule
}

// RuleSet maps normalized template names to their rules. Loaded once and
// read-only afterwards; safe to share across concurrent page builds.
type RuleSet struct {
	templates map[string]TemplateRule
}

// Lookup finds the rule for a template name, normalizing it first
func (rs *RuleSet) Lookup(name string) (TemplateRule, bool) {
	r, ok := rs.templates[NormalizeTemplateName(name)]
	return r, ok
}

// Len returns the number of mapped templates
func (rs *RuleSet) Len() int {
	return len(rs.templates)
}

// Names returns the normalized template names in sorted order
func (rs *RuleSet) Names() []string {
	names := make([]string, 0, len(rs.templates))
	for n := range rs.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NormalizeTemplateName canonicalizes a template name the way mapping keys
// are stored: trimmed, lowercased, underscores as spaces
func NormalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "_", " ")))
}

// templateSpec is the on-disk YAML shape of one template mapping
type templateSpec struct {
	Class      string               `yaml:"class"`
	VocabClass string               `yaml:"vocab_class"`
	Fields     map[string]fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Property string `yaml:"property"`
	Kind     string `yaml:"kind"`
}

// LoadMappings reads the template mapping file. Template names and field
// keys are normalized and kind strings resolved; an unrecognized kind falls
// back to literal rather than failing the load.
func LoadMappings(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mappings: %w", err)
	}
	return ParseMappings(data)
}

// ParseMappings builds a RuleSet from raw YAML mapping data
func ParseMappings(data []byte) (*RuleSet, error) {
	var raw map[string]templateSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse mappings: %w", err)
	}

	rs := &RuleSet{templates: make(map[string]TemplateRule, len(raw))}
	for name, spec := range raw {
		rule := TemplateRule{Fields: make(map[string]FieldRule, len(spec.Fields))}
		if spec.Class != "" {
			rule.Classes = append(rule.Classes, spec.Class)
		}
		if spec.VocabClass != "" {
			rule.Classes = append(rule.Classes, spec.VocabClass)
		}
		for key, f := range spec.Fields {
			if f.Property == "" {
				return nil, fmt.Errorf("mapping %q field %q: missing property", name, key)
			}
			rule.Fields[strings.ToLower(strings.TrimSpace(key))] = FieldRule{
				Property: f.Property,
				Kind:     parseKind(f.Kind),
			}
		}
		rs.templates[NormalizeTemplateName(name)] = rule
	}
	return rs, nil
}

func parseKind(s string) FieldKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindAuto
	case "literal":
		return KindLiteral
	case "image":
		return KindImage
	case "wikilink_or_literal":
		return KindWikilinkOrLiteral
	default:
		// defensive default: unknown kinds degrade to literal
		return KindLiteral
	}
}

// FindMapped scans markup for template invocations whose normalized name is
// a mapping key, nested templates included, in document order. A page with
// several instances of the same mapped template yields each independently.
func FindMapped(markup string, rules *RuleSet) []wikitext.Template {
	var out []wikitext.Template
	for _, t := range wikitext.ParseTemplates(markup) {
		if _, ok := rules.Lookup(t.Name); ok {
			out = append(out, t)
		}
	}
	return out
}
