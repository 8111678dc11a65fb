package driving

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// CredentialsService manages the stored workspace credentials.
type CredentialsService interface {
	// Save persists credentials after format validation.
	Save(ctx context.Context, creds domain.Credentials) error

	// Load returns the configured credentials. Environment overrides
	// win over stored values.
	Load(ctx context.Context) (domain.Credentials, error)

	// Validate checks credentials against the live API. Every failure
	// category maps to a distinct user-facing message.
	Validate(ctx context.Context, creds domain.Credentials) error

	// Clear removes stored credentials.
	Clear(ctx context.Context) error
}
