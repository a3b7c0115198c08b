package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/wikigraph/internal/cache"
	"github.com/ppiankov/wikigraph/internal/extract"
	"github.com/ppiankov/wikigraph/internal/kg"
	"github.com/ppiankov/wikigraph/internal/ntriples"
	"github.com/ppiankov/wikigraph/internal/pipeline"
	"github.com/ppiankov/wikigraph/internal/validate"
	"github.com/ppiankov/wikigraph/internal/worker"
)

var (
	buildConcurrency int
	buildOutPrefix   string
	buildChunkSize   int
	buildTimeout     time.Duration
	buildNoInfobox   bool
	buildMappings    string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <titles-file>",
	Short: "Build knowledge-graph statements for cached pages",
	Long: `Build assembles the statement graph for each title (one per line)
from the local page cache and writes chunked N-Triples files.

Each page yields its core identity statements, cross-reference statements
for internal links, external-link statements, and infobox-derived
statements per the template mapping file. Pages are processed in parallel;
per-title failures are counted and reported at the end without aborting
the run.

Example:
  wikigraph build titles.txt --out-prefix characters
  wikigraph build titles.txt --no-infobox --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().IntVar(&buildConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	buildCmd.Flags().StringVar(&buildOutPrefix, "out-prefix", "kg", "output chunk file prefix")
	buildCmd.Flags().IntVar(&buildChunkSize, "chunk-size", 0, "pages per output chunk (0 = config default)")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 30*time.Minute, "total timeout for the build")
	buildCmd.Flags().BoolVar(&buildNoInfobox, "no-infobox", false, "emit only core and link statements, skip infobox mapping")
	buildCmd.Flags().StringVar(&buildMappings, "mappings", "", "template mapping file (overrides config)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if buildChunkSize > 0 {
		cfg.Graph.ChunkSize = buildChunkSize
	}
	if buildMappings != "" {
		cfg.Graph.MappingFile = buildMappings
	}

	ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	rules, err := extract.LoadMappings(cfg.Graph.MappingFile)
	if err != nil {
		return err
	}
	if issues := validate.Mappings(rules); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "! mapping: %s\n", issue)
		}
	}

	ns := kg.NewNamespaces(cfg.Graph.Base, cfg.Wiki.BaseURL)
	builder := extract.NewBuilder(ns, rules, cfg.Graph.LabelLang)
	store := pipeline.NewPageStore(
		cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL),
		cfg.Cache.DiskTTL,
	)
	p := pipeline.NewPipeline(store, builder, !buildNoInfobox)

	processor := worker.NewBatchProcessor(p, buildConcurrency)
	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	// Parallel builds come back unordered; sort by title so chunk contents
	// are deterministic run to run.
	sort.Slice(results, func(i, j int) bool { return results[i].Title < results[j].Title })

	writer := ntriples.NewChunkWriter(cfg.Output.Dir, buildOutPrefix, cfg.Graph.ChunkSize)
	succeeded, failed, warned := 0, 0, 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Title, r.Err)
			continue
		}
		for _, w := range r.Page.Warnings {
			warned++
			fmt.Fprintf(os.Stderr, "! %s: %v\n", r.Title, w)
		}
		if err := writer.AddPage(r.Page.Graph); err != nil {
			return err
		}
		succeeded++
		if succeeded%50 == 0 {
			fmt.Fprintf(os.Stderr, "Processed %d pages...\n", succeeded)
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	for _, f := range writer.Files() {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", f)
	}
	fmt.Fprintf(os.Stderr, "\nDone. pages=%d failed=%d template_warnings=%d files=%d\n",
		succeeded, failed, warned, len(writer.Files()))
	if failed > 0 {
		return fmt.Errorf("%d of %d titles failed", failed, len(results))
	}
	return nil
}
