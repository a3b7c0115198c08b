package wikitext

import (
	"strconv"
	"strings"
)

// maxTemplateDepth bounds recursive scanning of nested invocations so
// pathological self-similar markup cannot blow the stack
const maxTemplateDepth = 32

// Parameter is one template argument. Unnamed arguments get positional
// names "1", "2", ... the way MediaWiki numbers them.
type Parameter struct {
	Name  string
	Value string
}

// Template is a single template invocation found in page markup
type Template struct {
	Name   string
	Params []Parameter
}

// Param returns the raw value of the named parameter
func (t Template) Param(name string) (string, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// ParseTemplates scans markup for template invocations, including templates
// nested inside other templates (an infobox wrapped in a formatting
// template is still found). Results are in document order, outer before
// inner. Unbalanced braces are skipped, never an error.
func ParseTemplates(markup string) []Template {
	return scanTemplates(markup, 0)
}

func scanTemplates(s string, depth int) []Template {
	if depth > maxTemplateDepth {
		return nil
	}

	var out []Template
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], "{{")
		if open < 0 {
			break
		}
		open += i

		end, ok := matchBraces(s, open)
		if !ok {
			i = open + 2
			continue
		}

		body := s[open+2 : end]
		if t, ok := parseInvocation(body); ok {
			out = append(out, t)
		}
		out = append(out, scanTemplates(body, depth+1)...)
		i = end + 2
	}
	return out
}

// matchBraces finds the "}}" closing the "{{" at open, honoring nesting.
// Returns the index of the closing token.
func matchBraces(s string, open int) (int, bool) {
	depth := 1
	for i := open + 2; i+1 < len(s); {
		switch {
		case s[i] == '{' && s[i+1] == '{':
			depth++
			i += 2
		case s[i] == '}' && s[i+1] == '}':
			depth--
			if depth == 0 {
				return i, true
			}
			i += 2
		default:
			i++
		}
	}
	return 0, false
}

// parseInvocation splits a template body into name and parameters. Pipes
// inside nested templates or wiki links do not split.
func parseInvocation(body string) (Template, bool) {
	segments := splitTopLevel(body, '|')
	name := strings.TrimSpace(segments[0])
	if name == "" {
		return Template{}, false
	}

	t := Template{Name: name}
	pos := 1
	for _, seg := range segments[1:] {
		if eq := topLevelIndex(seg, '='); eq >= 0 {
			t.Params = append(t.Params, Parameter{
				Name:  strings.TrimSpace(seg[:eq]),
				Value: seg[eq+1:],
			})
			continue
		}
		t.Params = append(t.Params, Parameter{
			Name:  strconv.Itoa(pos),
			Value: seg,
		})
		pos++
	}
	return t, true
}

// splitTopLevel splits s on sep occurrences outside {{...}} and [[...]]
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	curly, square := 0, 0
	start := 0
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) {
			switch {
			case s[i] == '{' && s[i+1] == '{':
				curly++
				i++
				continue
			case s[i] == '}' && s[i+1] == '}':
				if curly > 0 {
					curly--
				}
				i++
				continue
			case s[i] == '[' && s[i+1] == '[':
				square++
				i++
				continue
			case s[i] == ']' && s[i+1] == ']':
				if square > 0 {
					square--
				}
				i++
				continue
			}
		}
		if s[i] == sep && curly == 0 && square == 0 {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// topLevelIndex returns the index of the first c outside nested markup
func topLevelIndex(s string, c byte) int {
	curly, square := 0, 0
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) {
			switch {
			case s[i] == '{' && s[i+1] == '{':
				curly++
				i++
				continue
			case s[i] == '}' && s[i+1] == '}':
				if curly > 0 {
					curly--
				}
				i++
				continue
			case s[i] == '[' && s[i+1] == '[':
				square++
				i++
				continue
			case s[i] == ']' && s[i+1] == ']':
				if square > 0 {
					square--
				}
				i++
				continue
			}
		}
		if s[i] == c && curly == 0 && square == 0 {
			return i
		}
	}
	return -1
}
