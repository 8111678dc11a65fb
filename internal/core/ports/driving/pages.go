package driving

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// PageService lists workspace pages and searches documents.
type PageService interface {
	// List returns the workspace descriptor plus every accessible page,
	// collections first, in service order.
	List(ctx context.Context) (*PageListing, error)

	// Workspace returns the workspace descriptor on its own.
	Workspace(ctx context.Context) domain.Workspace

	// Search runs a full-text query against workspace documents.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

// PageListing is the result of a full page enumeration.
type PageListing struct {
	// Workspace describes the workspace the pages came from.
	Workspace domain.Workspace

	// Pages is the ordered page list.
	Pages []domain.Page

	// Total is the page count.
	Total int
}
