package cli

import (
	"bytes"
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
}

func (m *mockPageService) List(_ context.Context) (*driving.PageListing, error) {
	return m.listing, m.err
}

func (m *mockPageService) Workspace(_ context.Context) domain.Workspace {
	return m.workspace
}

func (m *mockPageService) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
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

// mockCredentialsService is a mock implementation of driving.CredentialsService.
type mockCredentialsService struct {
	creds       domain.Credentials
	loadErr     error
	saveErr     error
	validateErr error
	clearErr    error

	saved   *domain.Credentials
	cleared bool
}

func (m *mockCredentialsService) Save(_ context.Context, creds domain.Credentials) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &creds
	return nil
}

func (m *mockCredentialsService) Load(_ context.Context) (domain.Credentials, error) {
	if m.loadErr != nil {
		return domain.Credentials{}, m.loadErr
	}
	return m.creds, nil
}

func (m *mockCredentialsService) Validate(_ context.Context, _ domain.Credentials) error {
	return m.validateErr
}

func (m *mockCredentialsService) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

// setupTestServices installs mock services and returns a cleanup func
// restoring the previous state.
func setupTestServices(pages *mockPageService, content *mockContentService, creds *mockCredentialsService) func() {
	prevPages, prevContent, prevCreds := pageService, contentService, credentialsService
	if creds == nil {
		creds = &mockCredentialsService{
			creds: domain.Credentials{APIKey: "k", WorkspaceURL: "https://acme.getoutline.com"},
		}
	}
	pageService = pages
	contentService = content
	credentialsService = creds
	return func() {
		pageService, contentService, credentialsService = prevPages, prevContent, prevCreds
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
