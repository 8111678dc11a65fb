package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage workspace credentials",
	Long: `Store, inspect and validate the Outline API credentials.

Credentials are saved to ~/.outline/config.toml with restricted file
permissions. The OUTLINE_API_KEY and OUTLINE_WORKSPACE_URL environment
variables override the stored values.

Examples:
  # Interactive login (API key is read without echo)
  outline auth login

  # Non-interactive login
  outline auth login --api-key "ol_api_xxx" --workspace-url "https://acme.getoutline.com"

  # Show what is configured
  outline auth status

  # Check the credentials against the live API
  outline auth validate`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save workspace credentials",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured credentials",
	RunE:  runAuthStatus,
}

var authValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate credentials against the live API",
	RunE:  runAuthValidate,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	RunE:  runAuthLogout,
}

// Flags for auth login.
var (
	authAPIKey       string
	authWorkspaceURL string
	authSkipValidate bool
)

func init() {
	authLoginCmd.Flags().StringVar(
		&authAPIKey, "api-key", "", "Outline API key (prompted when omitted)")
	authLoginCmd.Flags().StringVar(
		&authWorkspaceURL, "workspace-url", "", "Workspace URL, e.g. https://acme.getoutline.com")
	authLoginCmd.Flags().BoolVar(
		&authSkipValidate, "no-validate", false, "Skip the live API check before saving")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authValidateCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

//nolint:errcheck // CLI interactive flow
func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	ctx := cmd.Context()
	reader := bufio.NewReader(cmd.InOrStdin())

	workspaceURL := authWorkspaceURL
	if workspaceURL == "" {
		cmd.Print("Workspace URL: ")
		input, _ := reader.ReadString('\n')
		workspaceURL = strings.TrimSpace(input)
	}

	apiKey := authAPIKey
	if apiKey == "" {
		apiKey = promptAPIKey(cmd, reader)
	}

	creds := domain.Credentials{APIKey: apiKey, WorkspaceURL: workspaceURL}

	if !authSkipValidate {
		if err := credentialsService.Validate(ctx, creds); err != nil {
			return fmt.Errorf("credential check failed: %w", err)
		}
	}

	if err := credentialsService.Save(ctx, creds); err != nil {
		return err
	}

	cmd.Println(successStyle.Render("Credentials saved."))
	return nil
}

// promptAPIKey reads the API key without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
//
//nolint:errcheck // CLI interactive flow
func promptAPIKey(cmd *cobra.Command, reader *bufio.Reader) string {
	cmd.Print("API key: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		key, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err == nil {
			return strings.TrimSpace(string(key))
		}
	}
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	creds, err := credentialsService.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			cmd.Println("Not authenticated.")
			cmd.Println(subtleStyle.Render("Run 'outline auth login' to configure credentials."))
			return nil
		}
		return err
	}

	cmd.Println(titleStyle.Render("Authentication"))
	cmd.Printf("  Workspace: %s\n", creds.NormalizedURL())
	cmd.Printf("  API key:   %s\n", maskKey(creds.APIKey))
	return nil
}

func runAuthValidate(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	ctx := cmd.Context()
	creds, err := credentialsService.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return errors.New("not authenticated, run 'outline auth login' first")
		}
		return err
	}

	if err := credentialsService.Validate(ctx, creds); err != nil {
		cmd.Println(errorStyle.Render("Validation failed: " + err.Error()))
		return err
	}

	cmd.Println(successStyle.Render("Credentials are valid."))
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	if err := credentialsService.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Credentials removed.")
	return nil
}

// maskKey hides all but the first and last few characters of a key.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
