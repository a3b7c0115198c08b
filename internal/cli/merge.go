package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/wikigraph/internal/ntriples"
)

var mergeOut string

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <chunk-file>...",
	Short: "Merge chunk files into one deduplicated N-Triples file",
	Long: `Merge combines the given chunk files (glob patterns allowed) into a
single N-Triples file with duplicate statements removed and lines sorted.

Example:
  wikigraph merge out/kg_part*.nt -o kg.nt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "merged.nt", "output file")
}

func runMerge(cmd *cobra.Command, args []string) error {
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if matches == nil {
			// not a pattern, take it literally
			matches = []string{arg}
		}
		paths = append(paths, matches...)
	}

	n, err := ntriples.MergeFiles(paths, mergeOut)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Merged %d files into %s (%d statements)\n", len(paths), mergeOut, n)
	return nil
}
