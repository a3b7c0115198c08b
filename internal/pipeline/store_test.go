package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ppiankov/wikigraph/internal/cache"
	"github.com/ppiankov/wikigraph/internal/extract"
	"github.com/ppiankov/wikigraph/internal/kg"
	"github.com/ppiankov/wikigraph/internal/model"
)

func newTestStore() *PageStore {
	mem := cache.NewMemoryCache(time.Hour, time.Hour)
	return NewPageStore(mem, time.Hour)
}

func TestStoreRoundtrip(t *testing.T) {
	store := newTestStore()
	page := &model.Page{
		Title:         "Elrond",
		PageID:        42,
		Wikitext:      "{{Infobox person|name=Elrond}}",
		Links:         []string{"Rivendell"},
		ExternalLinks: []string{"https://en.wikipedia.org/wiki/Elrond"},
	}

	if err := store.Save(page); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("Elrond")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, page) {
		t.Errorf("Load = %+v, want %+v", got, page)
	}
}

func TestStoreMissIsSourceUnavailable(t *testing.T) {
	store := newTestStore()

	_, err := store.Load("Nowhere")
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error %v does not wrap ErrSourceUnavailable", err)
	}
}

func TestStoreCorruptEntry(t *testing.T) {
	mem := cache.NewMemoryCache(time.Hour, time.Hour)
	store := NewPageStore(mem, time.Hour)
	if err := mem.Set(cache.PageKey("Broken"), []byte("{not json"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	_, err := store.Load("Broken")
	if err == nil {
		t.Fatal("expected error for corrupt entry")
	}
	if errors.Is(err, ErrSourceUnavailable) {
		t.Error("corrupt entry must not look like a cache miss")
	}
}

func newTestPipeline(t *testing.T, store *PageStore) *Pipeline {
	t.Helper()
	rules, err := extract.ParseMappings([]byte("infobox person:\n  class: http://schema.org/Person\n  fields:\n    name:\n      property: http://schema.org/name\n      kind: literal\n"))
	if err != nil {
		t.Fatalf("ParseMappings: %v", err)
	}
	ns := kg.NewNamespaces("https://lotr-kg.org", "https://tolkiengateway.net/wiki/")
	return NewPipeline(store, extract.NewBuilder(ns, rules, "en"), true)
}

func TestPipelineBuildTitle(t *testing.T) {
	store := newTestStore()
	p := newTestPipeline(t, store)

	if err := store.Save(&model.Page{Title: "Elrond", Wikitext: "{{Infobox person|name=Elrond}}"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	res, err := p.BuildTitle(context.Background(), "Elrond")
	if err != nil {
		t.Fatalf("BuildTitle: %v", err)
	}
	if res.Title != "Elrond" {
		t.Errorf("Title = %q, want Elrond", res.Title)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Warnings)
	}
	if !res.Graph.Has(kg.Statement{
		Subject:   "https://lotr-kg.org/resource/Elrond",
		Predicate: "http://schema.org/name",
		Object:    kg.Literal("Elrond"),
	}) {
		t.Error("missing mapped field statement")
	}
}

func TestPipelineBuildTitleMiss(t *testing.T) {
	p := newTestPipeline(t, newTestStore())

	_, err := p.BuildTitle(context.Background(), "Nowhere")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error %v does not wrap ErrSourceUnavailable", err)
	}
}

func TestPipelineBuildTitleCancelled(t *testing.T) {
	p := newTestPipeline(t, newTestStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.BuildTitle(ctx, "Elrond"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
