package services

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
)

// Ensure PageService implements the interface.
var _ driving.PageService = (*PageService)(nil)

// PageService lists and searches workspace pages through a connector.
type PageService struct {
	connector driven.Connector
}

// NewPageService creates a new page service.
func NewPageService(connector driven.Connector) *PageService {
	return &PageService{
		connector: connector,
	}
}

// List enumerates every accessible page together with the workspace
// descriptor. Enumeration is all or nothing; the workspace descriptor
// never fails.
func (s *PageService) List(ctx context.Context) (*driving.PageListing, error) {
	pages, err := s.connector.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	return &driving.PageListing{
		Workspace: s.connector.WorkspaceInfo(ctx),
		Pages:     pages,
		Total:     len(pages),
	}, nil
}

// Workspace returns the workspace descriptor.
func (s *PageService) Workspace(ctx context.Context) domain.Workspace {
	return s.connector.WorkspaceInfo(ctx)
}

// Search runs a full-text query against workspace documents.
func (s *PageService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.connector.Search(ctx, query, limit, 0)
}
