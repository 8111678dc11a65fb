package outline

import (
	"context"
	"fmt"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/logger"
)

// defaultCollectionEmoji is used when a collection has no icon of its own.
const defaultCollectionEmoji = "🔹"

// defaultWorkspaceName is the fallback when auth.info is unavailable.
const defaultWorkspaceName = "Outline Workspace"

// ListPages enumerates every accessible collection and document as one
// ordered page list: collections first, then documents page by page, in
// the order the service returns them. No client-side sorting and no
// de-duplication. Any failure discards partial results and yields a
// single wrapped error.
func (c *Connector) ListPages(ctx context.Context) ([]domain.Page, error) {
	pages, err := c.enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pages: %w", err)
	}
	logger.Info("enumerated %d pages", len(pages))
	return pages, nil
}

func (c *Connector) enumerate(ctx context.Context) ([]domain.Page, error) {
	var pages []domain.Page

	// Collections fit in a single call.
	collections, err := c.client.ListCollections(ctx, DefaultPageSize, 0)
	if err != nil {
		return nil, err
	}
	for _, col := range collections {
		pages = append(pages, c.collectionPage(col))
	}

	// Documents are paginated. A short or empty page is the last one.
	for offset := 0; ; offset += DefaultPageSize {
		docs, err := c.client.ListDocuments(ctx, DefaultPageSize, offset, "")
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			break
		}
		for _, doc := range docs {
			pages = append(pages, c.documentPage(doc))
		}
		if len(docs) < DefaultPageSize {
			break
		}
	}

	return pages, nil
}

// WorkspaceInfo describes the workspace from auth.info team data.
// Failures are deliberately swallowed into defaults: a listing should
// still render even when the descriptor call misbehaves.
func (c *Connector) WorkspaceInfo(ctx context.Context) domain.Workspace {
	ws := domain.Workspace{
		Name: defaultWorkspaceName,
		URL:  c.client.WorkspaceURL(),
	}

	info, err := c.client.AuthInfo(ctx)
	if err != nil {
		logger.Warn("auth.info failed, using workspace defaults: %v", err)
		return ws
	}

	if info.Team.Name != "" {
		ws.Name = info.Team.Name
	}
	ws.ID = info.Team.ID
	return ws
}

// Search runs a full-text query against the workspace documents.
func (c *Connector) Search(ctx context.Context, query string, limit, offset int) ([]domain.SearchResult, error) {
	if limit <= 0 {
		limit = 25
	}

	hits, err := c.client.SearchDocuments(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, domain.SearchResult{
			Context:  hit.Context,
			Ranking:  hit.Ranking,
			Document: c.documentPage(hit.Document),
		})
	}
	return results, nil
}

// collectionPage maps a collection to its listing representation.
func (c *Connector) collectionPage(col Collection) domain.Page {
	emoji := col.Emoji
	if emoji == "" {
		emoji = defaultCollectionEmoji
	}
	return domain.Page{
		ID:           col.ID,
		Name:         col.Name,
		Icon:         &domain.PageIcon{Type: "emoji", Emoji: emoji},
		Type:         domain.PageTypeCollection,
		URL:          c.client.WorkspaceURL() + "/collection/" + col.ID,
		LastModified: col.UpdatedAt,
	}
}

// documentPage maps a document to its listing representation. The parent
// is the enclosing document when nested, otherwise the owning collection.
func (c *Connector) documentPage(doc Document) domain.Page {
	page := domain.Page{
		ID:           doc.ID,
		Name:         doc.Title,
		Type:         domain.PageTypeDocument,
		LastModified: doc.UpdatedAt,
	}
	if doc.Emoji != "" {
		page.Icon = &domain.PageIcon{Type: "emoji", Emoji: doc.Emoji}
	}
	if doc.ParentDocumentID != "" {
		page.ParentID = doc.ParentDocumentID
	} else {
		page.ParentID = doc.CollectionID
	}
	if doc.URL != "" {
		page.URL = doc.URL
	} else {
		page.URL = c.client.WorkspaceURL() + "/doc/" + doc.URLID
	}
	return page
}
