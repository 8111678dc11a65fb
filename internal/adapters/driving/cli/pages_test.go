package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
)

func TestPagesCmd_Use(t *testing.T) {
	assert.Equal(t, "pages", pagesCmd.Use)
	assert.Equal(t, "list", pagesListCmd.Use)
	assert.Equal(t, "content [page-id]", pagesContentCmd.Use)
}

func TestPagesContentCmd_HasTypeFlag(t *testing.T) {
	flag := pagesContentCmd.Flags().Lookup("type")
	require.NotNil(t, flag, "type flag should exist")
	assert.Equal(t, "t", flag.Shorthand)
	assert.Equal(t, "document", flag.DefValue)
}

func TestPagesListCmd_Executes(t *testing.T) {
	pages := &mockPageService{
		listing: &driving.PageListing{
			Workspace: domain.Workspace{Name: "Acme", URL: "https://acme.getoutline.com"},
			Pages: []domain.Page{
				{ID: "col-1", Name: "Engineering", Type: domain.PageTypeCollection,
					Icon: &domain.PageIcon{Type: "emoji", Emoji: "⚙️"}},
				{ID: "doc-1", Name: "Onboarding", Type: domain.PageTypeDocument, ParentID: "col-1"},
			},
			Total: 2,
		},
	}
	cleanup := setupTestServices(pages, &mockContentService{}, nil)
	defer cleanup()

	out, err := executeCommand("pages", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "Onboarding")
	assert.Contains(t, out, "2 pages")
}

func TestPagesListCmd_PropagatesError(t *testing.T) {
	pages := &mockPageService{err: errors.New("fetch pages: boom")}
	cleanup := setupTestServices(pages, &mockContentService{}, nil)
	defer cleanup()

	_, err := executeCommand("pages", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch pages")
}

func TestPagesContentCmd_Executes(t *testing.T) {
	content := &mockContentService{
		result: &domain.ExtractionResult{Content: "# Onboarding\n\nWelcome.", DocumentID: "doc-1"},
	}
	cleanup := setupTestServices(&mockPageService{}, content, nil)
	defer cleanup()

	out, err := executeCommand("pages", "content", "doc-1")

	require.NoError(t, err)
	assert.Contains(t, out, "# Onboarding")
	assert.Equal(t, "doc-1", content.gotPageID)
	assert.Equal(t, "document", content.gotPageType)
}

func TestPagesContentCmd_CollectionType(t *testing.T) {
	content := &mockContentService{
		result: &domain.ExtractionResult{Content: "# Engineering\n\n---\n\n", CollectionID: "col-1"},
	}
	cleanup := setupTestServices(&mockPageService{}, content, nil)
	defer cleanup()

	_, err := executeCommand("pages", "content", "col-1", "--type", "collection")

	require.NoError(t, err)
	assert.Equal(t, "collection", content.gotPageType)

	// Reset flag state for other tests
	pagesContentType = "document"
}

func TestPagesContentCmd_RequiresPageID(t *testing.T) {
	cleanup := setupTestServices(&mockPageService{}, &mockContentService{}, nil)
	defer cleanup()

	_, err := executeCommand("pages", "content")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestPagesListCmd_NotAuthenticated(t *testing.T) {
	creds := &mockCredentialsService{loadErr: domain.ErrNotAuthenticated}
	prevPages, prevContent, prevCreds := pageService, contentService, credentialsService
	pageService, contentService, credentialsService = nil, nil, creds
	defer func() {
		pageService, contentService, credentialsService = prevPages, prevContent, prevCreds
	}()

	_, err := executeCommand("pages", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}
