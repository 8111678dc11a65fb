package driven

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// Connector exposes a remote document workspace to the core services.
// Implementations are stateless beyond their held credentials and are
// safe to discard after one logical operation.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Capabilities returns what this connector supports.
	Capabilities() ConnectorCapabilities

	// Validate checks the configured credentials with one test API call.
	// Format problems fail before any network traffic.
	Validate(ctx context.Context) error

	// ListPages enumerates every accessible collection and document as
	// a single ordered page list, collections first. Any failure yields
	// one wrapped error with no partial result.
	ListPages(ctx context.Context) ([]domain.Page, error)

	// WorkspaceInfo describes the workspace. Failures are swallowed
	// into defaults; this call never returns an error.
	WorkspaceInfo(ctx context.Context) domain.Workspace

	// Extract fetches and formats the content of one page. Unsupported
	// page types fail immediately without a network call; most other
	// failures surface as inline error text in the result content.
	Extract(ctx context.Context, pageID string, pageType domain.PageType) (*domain.ExtractionResult, error)

	// Search runs a full-text query against the workspace documents.
	Search(ctx context.Context, query string, limit, offset int) ([]domain.SearchResult, error)
}

// ConnectorCapabilities describes what a connector supports.
type ConnectorCapabilities struct {
	// RequiresAuth indicates the connector needs credentials.
	RequiresAuth bool

	// SupportsHierarchy indicates pages carry parent references.
	SupportsHierarchy bool

	// SupportsPagination indicates the connector pages through listings
	// internally.
	SupportsPagination bool

	// SupportsRateLimiting indicates the connector throttles and
	// retries rate-limited requests internally.
	SupportsRateLimiting bool

	// SupportsSearch indicates full-text search is available.
	SupportsSearch bool
}

// CredentialValidator checks workspace credentials without requiring a
// fully constructed connector.
type CredentialValidator interface {
	// ValidateCredentials maps every failure category to a distinct
	// user-facing *domain.ValidationError.
	ValidateCredentials(ctx context.Context, creds domain.Credentials) error
}
