package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search across workspace documents",
	Long: `Search the workspace documents and print ranked matches.

Examples:
  outline search "quarterly roadmap"
  outline search onboarding --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var searchLimit int

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 25, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := connectServices(cmd); err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results, err := pageService.Search(cmd.Context(), query, searchLimit)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		cmd.Println("No documents matched.")
		return nil
	}

	for i := range results {
		doc := results[i].Document
		cmd.Printf("%s %s\n", titleStyle.Render(doc.Name), subtleStyle.Render(doc.ID))
		if ctx := results[i].Context; ctx != "" {
			cmd.Printf("  %s\n", ctx)
		}
		if doc.URL != "" {
			cmd.Printf("  %s\n", subtleStyle.Render(doc.URL))
		}
		cmd.Println()
	}

	cmd.Printf("%d results\n", len(results))
	return nil
}
