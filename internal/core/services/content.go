package services

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService extracts page content through a connector.
type ContentService struct {
	connector driven.Connector
}

// NewContentService creates a new content service.
func NewContentService(connector driven.Connector) *ContentService {
	return &ContentService{
		connector: connector,
	}
}

// Extract fetches the formatted content for one page. The page type
// string is parsed here so adapters can pass user input straight through.
func (s *ContentService) Extract(ctx context.Context, pageID, pageType string) (*domain.ExtractionResult, error) {
	if pageID == "" {
		return nil, domain.ErrInvalidInput
	}
	pt, err := domain.ParsePageType(pageType)
	if err != nil {
		return nil, err
	}
	return s.connector.Extract(ctx, pageID, pt)
}
