package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/wikigraph/internal/pipeline"
)

// PageBuilder builds the statement graph for one title
type PageBuilder interface {
	BuildTitle(ctx context.Context, title string) (*pipeline.BuildResult, error)
}

// BuildJob is one title's extraction
type BuildJob struct {
	Title   string
	Builder PageBuilder
}

// Execute runs the extraction for the job's title
func (j *BuildJob) Execute(ctx context.Context) Result {
	res, err := j.Builder.BuildTitle(ctx, j.Title)
	if err != nil {
		return &BuildResult{Title: j.Title, Err: err}
	}
	return &BuildResult{Title: res.Title, Page: res, Err: nil}
}

// BuildResult is the outcome of one title's extraction
type BuildResult struct {
	Title string
	Page  *pipeline.BuildResult
	Err   error
}

// GetError returns the error from the build
func (r *BuildResult) GetError() error {
	return r.Err
}

// BatchProcessor extracts many titles concurrently. Page builds are
// independent and share only the read-only rule set, so the pool runs them
// freely in parallel; the caller serializes chunk output.
type BatchProcessor struct {
	builder     PageBuilder
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(builder PageBuilder, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		builder:     builder,
		concurrency: concurrency,
	}
}

// ProcessTitles builds graphs for the given titles concurrently. On context
// cancellation the result slice holds whatever finished in time.
func (b *BatchProcessor) ProcessTitles(ctx context.Context, titles []string) []*BuildResult {
	if len(titles) == 0 {
		return []*BuildResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start(ctx)

	go func() {
		defer pool.Done()
		for _, title := range titles {
			if !pool.Submit(ctx, &BuildJob{Title: title, Builder: b.builder}) {
				return
			}
		}
	}()

	out := make([]*BuildResult, 0, len(titles))
	for r := range pool.Results() {
		out = append(out, r.(*BuildResult))
	}
	return out
}

// ProcessFile reads titles from a file and builds them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*BuildResult, error) {
	titles, err := ReadTitlesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}
	return b.ProcessTitles(ctx, titles), nil
}

// ReadTitlesFromFile reads page titles from a file (one per line), skipping
// blanks, comments and duplicates
func ReadTitlesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var titles []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			titles = append(titles, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return titles, nil
}
