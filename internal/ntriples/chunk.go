package ntriples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/wikigraph/internal/kg"
)

// ChunkWriter accumulates page graphs and flushes them to numbered
// N-Triples files once enough pages have been added. It is single-writer:
// callers building pages in parallel must funnel results through one
// ChunkWriter.
type ChunkWriter struct {
	dir       string
	prefix    string
	chunkSize int

	chunk    *kg.Graph
	pages    int
	part     int
	produced []string
}

// NewChunkWriter creates a writer flushing every chunkSize pages into dir
func NewChunkWriter(dir, prefix string, chunkSize int) *ChunkWriter {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &ChunkWriter{
		dir:       dir,
		prefix:    prefix,
		chunkSize: chunkSize,
		chunk:     kg.NewGraph(),
		part:      1,
	}
}

// AddPage merges one page's graph into the current chunk, flushing when the
// chunk is full
func (w *ChunkWriter) AddPage(g *kg.Graph) error {
	w.chunk.Merge(g)
	w.pages++
	if w.pages%w.chunkSize == 0 {
		return w.Flush()
	}
	return nil
}

// Flush writes the current chunk to the next part file. Empty chunks write
// nothing.
func (w *ChunkWriter) Flush() error {
	if w.chunk.Len() == 0 {
		return nil
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s_part%04d.nt", w.prefix, w.part))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chunk: %w", err)
	}
	if err := WriteGraph(f, w.chunk); err != nil {
		_ = f.Close()
		return fmt.Errorf("write chunk %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chunk %s: %w", path, err)
	}

	w.produced = append(w.produced, path)
	w.chunk = kg.NewGraph()
	w.part++
	return nil
}

// Close flushes any remaining statements
func (w *ChunkWriter) Close() error {
	return w.Flush()
}

// Files lists the chunk files written so far, in order
func (w *ChunkWriter) Files() []string {
	return w.produced
}

// Pages returns the number of pages added
func (w *ChunkWriter) Pages() int {
	return w.pages
}
