package outline

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector exposes an Outline workspace to the core services. It holds
// no state beyond its credentials and is safe to discard after use.
type Connector struct {
	creds  domain.Credentials
	client *Client
}

// New creates an Outline connector for the given credentials.
func New(creds domain.Credentials) *Connector {
	return &Connector{
		creds:  creds,
		client: NewClient(creds),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "outline"
}

// Capabilities returns the connector's capabilities.
func (c *Connector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{
		RequiresAuth:         true,
		SupportsHierarchy:    true, // documents nest under collections and parents
		SupportsPagination:   true,
		SupportsRateLimiting: true,
		SupportsSearch:       true,
	}
}

// Validate checks the configured credentials with one auth.info call.
func (c *Connector) Validate(ctx context.Context) error {
	return NewValidator().ValidateCredentials(ctx, c.creds)
}
