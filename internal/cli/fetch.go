package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/wikigraph/internal/cache"
	"github.com/ppiankov/wikigraph/internal/mediawiki"
	"github.com/ppiankov/wikigraph/internal/pipeline"
	"github.com/ppiankov/wikigraph/internal/worker"
)

var (
	fetchForce   bool
	fetchTimeout time.Duration
	fetchLimit   int
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <titles-file>",
	Short: "Fetch pages from the wiki into the local cache",
	Long: `Fetch retrieves wikitext and link lists for each title (one per line)
via the MediaWiki parse API and stores the payloads in the page cache.
Requests are rate-limited and respect robots.txt; already-cached titles are
skipped unless --force is given.

Example:
  wikigraph fetch titles.txt
  wikigraph fetch titles.txt --force --limit 200`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "re-fetch titles already in the cache")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Minute, "total timeout for the fetch run")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 0, "stop after this many titles (0 = all)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	titles, err := worker.ReadTitlesFromFile(args[0])
	if err != nil {
		return fmt.Errorf("read titles: %w", err)
	}
	if fetchLimit > 0 && fetchLimit < len(titles) {
		titles = titles[:fetchLimit]
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	store := pipeline.NewPageStore(
		cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL),
		cfg.Cache.DiskTTL,
	)
	client := mediawiki.NewClient(cfg.Wiki, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	fmt.Fprintf(os.Stderr, "Fetching %d titles from %s\n", len(titles), cfg.Wiki.APIURL)

	fetched, skipped, failed := 0, 0, 0
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !fetchForce {
			if _, err := store.Load(title); err == nil {
				skipped++
				continue
			} else if !errors.Is(err, pipeline.ErrSourceUnavailable) {
				// corrupt cache entry, re-fetch it
				fmt.Fprintf(os.Stderr, "! %s: %v (re-fetching)\n", title, err)
			}
		}

		page, err := client.FetchPage(ctx, title)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", title, err)
			continue
		}
		if err := store.Save(page); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", title, err)
			continue
		}

		fetched++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s (pageid %d)\n", page.Title, page.PageID)
		} else if fetched%50 == 0 {
			fmt.Fprintf(os.Stderr, "Fetched %d pages...\n", fetched)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone. fetched=%d skipped=%d failed=%d\n", fetched, skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d titles failed", failed, len(titles))
	}
	return nil
}
