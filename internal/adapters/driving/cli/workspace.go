package cli

import (
	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Show workspace details",
	RunE:  runWorkspace,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}

func runWorkspace(cmd *cobra.Command, _ []string) error {
	if err := connectServices(cmd); err != nil {
		return err
	}

	ws := pageService.Workspace(cmd.Context())

	cmd.Println(titleStyle.Render(ws.Name))
	if ws.ID != "" {
		cmd.Printf("  ID:  %s\n", ws.ID)
	}
	cmd.Printf("  URL: %s\n", ws.URL)
	return nil
}
