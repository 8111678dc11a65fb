package services

import (
	"context"
	"os"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
)

// Config keys for stored credentials.
const (
	ConfigKeyAPIKey       = "api_key"
	ConfigKeyWorkspaceURL = "workspace_url"
)

// Environment variables that override stored credentials.
const (
	EnvAPIKey       = "OUTLINE_API_KEY"
	EnvWorkspaceURL = "OUTLINE_WORKSPACE_URL"
)

// Ensure CredentialsService implements the interface.
var _ driving.CredentialsService = (*CredentialsService)(nil)

// CredentialsService manages stored workspace credentials. Environment
// variables override the config file so CI and scripts never need to
// write credentials to disk.
type CredentialsService struct {
	store     driven.ConfigStore
	validator driven.CredentialValidator
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(store driven.ConfigStore, validator driven.CredentialValidator) *CredentialsService {
	return &CredentialsService{
		store:     store,
		validator: validator,
	}
}

// Save persists credentials after format validation. The live API is not
// consulted; use Validate for that.
func (s *CredentialsService) Save(ctx context.Context, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := s.store.Set(ConfigKeyAPIKey, creds.APIKey); err != nil {
		return err
	}
	return s.store.Set(ConfigKeyWorkspaceURL, creds.WorkspaceURL)
}

// Load returns the configured credentials, environment overrides first.
// Returns domain.ErrNotAuthenticated when nothing is configured.
func (s *CredentialsService) Load(ctx context.Context) (domain.Credentials, error) {
	creds := domain.Credentials{
		APIKey:       s.store.GetString(ConfigKeyAPIKey),
		WorkspaceURL: s.store.GetString(ConfigKeyWorkspaceURL),
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		creds.APIKey = v
	}
	if v := os.Getenv(EnvWorkspaceURL); v != "" {
		creds.WorkspaceURL = v
	}
	if !creds.IsConfigured() {
		return domain.Credentials{}, domain.ErrNotAuthenticated
	}
	return creds, nil
}

// Validate checks credentials against the live API.
func (s *CredentialsService) Validate(ctx context.Context, creds domain.Credentials) error {
	return s.validator.ValidateCredentials(ctx, creds)
}

// Clear removes stored credentials. Environment overrides are untouched.
func (s *CredentialsService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ConfigKeyAPIKey); err != nil {
		return err
	}
	return s.store.Delete(ConfigKeyWorkspaceURL)
}
