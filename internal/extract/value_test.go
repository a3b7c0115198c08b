package extract

import (
	"reflect"
	"testing"
)

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantLinked   []string
		wantLiterals []string
	}{
		{
			name:       "single link no literals",
			raw:        "[[Gondor]]",
			wantLinked: []string{"Gondor"},
		},
		{
			name:         "comma list of literals",
			raw:          "Elf, Human",
			wantLiterals: []string{"Elf", "Human"},
		},
		{
			name:       "links joined by connective leave no literals",
			raw:        "[[Half-elven|Half-elf]] and [[Man]]",
			wantLinked: []string{"Half-elven", "Man"},
		},
		{
			name:         "semicolons and commas both split",
			raw:          "a; b, c",
			wantLiterals: []string{"a", "b", "c"},
		},
		{
			name:         "plain value is one literal",
			raw:          "Lord of Rivendell",
			wantLiterals: []string{"Lord of Rivendell"},
		},
		{
			name:         "newline splits list items",
			raw:          "Vilya\nHadhafang",
			wantLiterals: []string{"Vilya", "Hadhafang"},
		},
		{
			name:         "mixed links and literals",
			raw:          "[[Rivendell]], the Last Homely House",
			wantLinked:   []string{"Rivendell"},
			wantLiterals: []string{"the Last Homely House"},
		},
		{
			name:       "empty parens left by link removal are dropped",
			raw:        "[[Elrond]] ()",
			wantLinked: []string{"Elrond"},
		},
		{
			name:         "markup stripped before splitting",
			raw:          "Elf<ref>The Silmarillion</ref>, Human",
			wantLiterals: []string{"Elf", "Human"},
		},
		{
			name: "stray punctuation fragments dropped",
			raw:  "[[A]] & [[B]]",
			wantLinked: []string{
				"A", "B",
			},
		},
		{
			name: "empty value",
			raw:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linked, literals := ClassifyValue(tt.raw)
			if !reflect.DeepEqual(linked, tt.wantLinked) {
				t.Errorf("linked = %v, want %v", linked, tt.wantLinked)
			}
			if !reflect.DeepEqual(literals, tt.wantLiterals) {
				t.Errorf("literals = %v, want %v", literals, tt.wantLiterals)
			}
		})
	}
}

func TestIsConnective(t *testing.T) {
	for _, s := range []string{"and", "AND", "or", "&", "-", ";"} {
		if !isConnective(s) {
			t.Errorf("isConnective(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"Elf", "a", "3", "and more"} {
		if isConnective(s) {
			t.Errorf("isConnective(%q) = true, want false", s)
		}
	}
}
