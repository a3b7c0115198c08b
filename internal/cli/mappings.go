package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/wikigraph/internal/extract"
	"github.com/ppiankov/wikigraph/internal/validate"
)

// mappingsCmd represents the mappings command
var mappingsCmd = &cobra.Command{
	Use:   "mappings check [file]",
	Short: "Validate a template mapping file",
	Long: `Check loads a template mapping file and reports configuration
problems: classes or properties that are not absolute IRIs, templates
without field rules. Exits non-zero when issues are found.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMappingsCheck,
}

func init() {
	rootCmd.AddCommand(mappingsCmd)
}

func runMappingsCheck(cmd *cobra.Command, args []string) error {
	path := ""
	switch {
	case len(args) == 2 && args[0] == "check":
		path = args[1]
	case len(args) == 1 && args[0] != "check":
		path = args[0]
	default:
		path = loadConfig().Graph.MappingFile
	}

	rules, err := extract.LoadMappings(path)
	if err != nil {
		return err
	}

	issues := validate.Mappings(rules)
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "! %s\n", issue)
	}

	fmt.Fprintf(os.Stderr, "%s: %d templates, %d issues\n", path, rules.Len(), len(issues))
	if len(issues) > 0 {
		return fmt.Errorf("mapping file has %d issues", len(issues))
	}
	return nil
}
