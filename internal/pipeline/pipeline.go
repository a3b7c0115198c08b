// Package pipeline wires the cached page store to the extraction engine.
// The engine itself is pure; everything stateful (cache lookups, chunked
// output) stays out here.
package pipeline

import (
	"context"

	"github.com/ppiankov/wikigraph/internal/extract"
	"github.com/ppiankov/wikigraph/internal/kg"
	"github.com/ppiankov/wikigraph/internal/model"
)

// Pipeline builds the statement graph for titles out of the page cache
type Pipeline struct {
	store          *PageStore
	builder        *extract.Builder
	includeInfobox bool
}

// NewPipeline creates a pipeline over a page store and a configured builder
func NewPipeline(store *PageStore, builder *extract.Builder, includeInfobox bool) *Pipeline {
	return &Pipeline{store: store, builder: builder, includeInfobox: includeInfobox}
}

// BuildResult is one page's statements plus any isolated per-template
// failures that occurred while mapping its infoboxes
type BuildResult struct {
	Title    string
	Graph    *kg.Graph
	Warnings []error
}

// BuildTitle loads the cached payload for a title and assembles its graph.
// The only error it returns is the missing-source precondition (or a
// corrupt cache entry); data-quality issues inside the page surface as
// warnings on the result instead.
func (p *Pipeline) BuildTitle(ctx context.Context, title string) (*BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := p.store.Load(title)
	if err != nil {
		return nil, err
	}

	g, warnings := p.builder.BuildPage(*page, p.includeInfobox)
	return &BuildResult{Title: page.Title, Graph: g, Warnings: warnings}, nil
}

// BuildPage assembles the graph for an already-loaded payload, bypassing
// the cache. Used by tests and by callers that fetch on the fly.
func (p *Pipeline) BuildPage(page model.Page) *BuildResult {
	g, warnings := p.builder.BuildPage(page, p.includeInfobox)
	return &BuildResult{Title: page.Title, Graph: g, Warnings: warnings}
}
