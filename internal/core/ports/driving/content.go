package driving

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// ContentService extracts formatted text content for a selected page.
type ContentService interface {
	// Extract fetches the content for a page. pageType must be
	// "document" or "collection"; anything else fails with
	// domain.ErrUnsupportedPageType before any network call.
	Extract(ctx context.Context, pageID, pageType string) (*domain.ExtractionResult, error)
}
