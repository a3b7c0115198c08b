package wikitext

import (
	"reflect"
	"testing"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "bare link",
			in:   "[[Gondor]]",
			want: []string{"Gondor"},
		},
		{
			name: "display text discarded",
			in:   "[[Half-elven|Half-elf]]",
			want: []string{"Half-elven"},
		},
		{
			name: "multiple links in order",
			in:   "[[Half-elven|Half-elf]] and [[Man]]",
			want: []string{"Half-elven", "Man"},
		},
		{
			name: "section anchors are not targets",
			in:   "[[Gondor#History]]",
			want: nil,
		},
		{
			name: "unclosed bracket stays literal",
			in:   "[[Gondor",
			want: nil,
		},
		{
			name: "no links",
			in:   "plain text",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLinks(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLinks(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	got := RemoveLinks("[[Elrond]] of [[Rivendell|Imladris]]")
	want := " of "
	if got != want {
		t.Errorf("RemoveLinks = %q, want %q", got, want)
	}

	// malformed link syntax is left alone
	if got := RemoveLinks("[[broken"); got != "[[broken" {
		t.Errorf("RemoveLinks kept malformed text wrong: %q", got)
	}
}
