package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List pages and extract their content",
	Long: `Browse the workspace page tree and extract markdown content.

Examples:
  # List every collection and document
  outline pages list

  # Extract a document
  outline pages content 6e9f7cd2 --type document

  # Extract a whole collection, documents included
  outline pages content 0f1a3b58 --type collection`,
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections and documents",
	RunE:  runPagesList,
}

var pagesContentCmd = &cobra.Command{
	Use:   "content [page-id]",
	Short: "Print the markdown content of a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runPagesContent,
}

var pagesContentType string

func init() {
	pagesContentCmd.Flags().StringVarP(
		&pagesContentType, "type", "t", "document", "Page type: document or collection")

	pagesCmd.AddCommand(pagesListCmd)
	pagesCmd.AddCommand(pagesContentCmd)
	rootCmd.AddCommand(pagesCmd)
}

func runPagesList(cmd *cobra.Command, _ []string) error {
	if err := connectServices(cmd); err != nil {
		return err
	}

	listing, err := pageService.List(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println(titleStyle.Render(listing.Workspace.Name))
	cmd.Println(subtleStyle.Render(listing.Workspace.URL))
	cmd.Println()

	for i := range listing.Pages {
		printPage(cmd, listing.Pages[i])
	}

	cmd.Println()
	cmd.Printf("%d pages\n", listing.Total)
	return nil
}

func printPage(cmd *cobra.Command, page domain.Page) {
	marker := " "
	if page.Type == domain.PageTypeCollection {
		marker = "▸"
	}
	icon := ""
	if page.Icon != nil && page.Icon.Emoji != "" {
		icon = page.Icon.Emoji + " "
	}
	cmd.Printf("%s %s%s %s\n", marker, icon, page.Name, subtleStyle.Render(page.ID))
}

func runPagesContent(cmd *cobra.Command, args []string) error {
	if err := connectServices(cmd); err != nil {
		return err
	}

	result, err := contentService.Extract(cmd.Context(), args[0], pagesContentType)
	if err != nil {
		return fmt.Errorf("extracting page: %w", err)
	}

	cmd.Println(result.Content)
	return nil
}
