package mcp

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
)

// mockPageService is a mock implementation of driving.PageService.
type mockPageService struct {
	listing   *driving.PageListing
	workspace domain.Workspace
	results   []domain.SearchResult
	err       error

	searchLimit int
}

func (m *mockPageService) List(_ context.Context) (*driving.PageListing, error) {
	return m.listing, m.err
}

func (m *mockPageService) Workspace(_ context.Context) domain.Workspace {
	return m.workspace
}

func (m *mockPageService) Search(_ context.Context, _ string, limit int) ([]domain.SearchResult, error) {
	m.searchLimit = limit
	return m.results, m.err
}

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	result *domain.ExtractionResult
	err    error

	gotPageID   string
	gotPageType string
}

func (m *mockContentService) Extract(_ context.Context, pageID, pageType string) (*domain.ExtractionResult, error) {
	m.gotPageID = pageID
	m.gotPageType = pageType
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
