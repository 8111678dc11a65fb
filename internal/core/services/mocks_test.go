package services

import (
	"context"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockConnector implements driven.Connector for testing.
type mockConnector struct {
	pages       []domain.Page
	listErr     error
	workspace   domain.Workspace
	extraction  *domain.ExtractionResult
	extractErr  error
	hits        []domain.SearchResult
	searchErr   error
	validateErr error

	extractCalls []string
	searchLimit  int
}

func (m *mockConnector) Type() string {
	return "outline"
}

func (m *mockConnector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{RequiresAuth: true}
}

func (m *mockConnector) Validate(_ context.Context) error {
	return m.validateErr
}

func (m *mockConnector) ListPages(_ context.Context) ([]domain.Page, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.pages, nil
}

func (m *mockConnector) WorkspaceInfo(_ context.Context) domain.Workspace {
	return m.workspace
}

func (m *mockConnector) Extract(_ context.Context, pageID string, pageType domain.PageType) (*domain.ExtractionResult, error) {
	m.extractCalls = append(m.extractCalls, pageID+":"+string(pageType))
	if m.extractErr != nil {
		return nil, m.extractErr
	}
	return m.extraction, nil
}

func (m *mockConnector) Search(_ context.Context, _ string, limit, _ int) ([]domain.SearchResult, error) {
	m.searchLimit = limit
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.hits, nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values  map[string]any
	setErr  error
	delErr  error
	deleted []string
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: map[string]any{}}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.values[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Delete(key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.values, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockConfigStore) Load() error {
	return nil
}

func (m *mockConfigStore) Path() string {
	return "/tmp/config.toml"
}

// mockValidator implements driven.CredentialValidator for testing.
type mockValidator struct {
	err   error
	calls int
}

func (m *mockValidator) ValidateCredentials(_ context.Context, _ domain.Credentials) error {
	m.calls++
	return m.err
}
