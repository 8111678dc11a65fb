// Package cli implements the cobra command tree. Commands talk to the
// core exclusively through driving ports, so tests can preset mock
// services on the package-level variables.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/outline-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/outline-cli/internal/connectors/outline"
	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/outline-cli/internal/core/services"
	"github.com/custodia-labs/outline-cli/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Services used by the commands. Wired in initServices; tests preset
// them with mocks.
var (
	pageService        driving.PageService
	contentService     driving.ContentService
	credentialsService driving.CredentialsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "outline",
	Short: "Browse and extract Outline workspace content",
	Long: `outline connects to an Outline knowledge base workspace and lets you
list collections and documents, extract their markdown content, run
full-text searches, and serve the same capabilities to AI assistants
over the Model Context Protocol.

Credentials come from 'outline auth login', or from the
OUTLINE_API_KEY and OUTLINE_WORKSPACE_URL environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// initServices wires the default service implementations. Services that
// are already set (by tests) are left alone. Connector-backed services
// are wired lazily because they need credentials.
func initServices() error {
	if credentialsService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	credentialsService = services.NewCredentialsService(store, outline.NewValidator())
	return nil
}

// connectServices builds the connector-backed services from the stored
// credentials. Returns a friendly error when nothing is configured.
func connectServices(cmd *cobra.Command) error {
	if pageService != nil && contentService != nil {
		return nil
	}

	creds, err := credentialsService.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return errors.New("not authenticated, run 'outline auth login' first")
		}
		return err
	}

	conn := outline.New(creds)
	if pageService == nil {
		pageService = services.NewPageService(conn)
	}
	if contentService == nil {
		contentService = services.NewContentService(conn)
	}
	return nil
}
