package domain

import "fmt"

// PageType identifies what kind of workspace entity a Page represents.
type PageType string

const (
	// PageTypeDocument is a single page of text content.
	PageTypeDocument PageType = "document"

	// PageTypeCollection is a folder-like container of documents.
	PageTypeCollection PageType = "collection"
)

// ParsePageType converts a string into a PageType.
// Returns ErrUnsupportedPageType for anything other than the two known kinds.
func ParsePageType(s string) (PageType, error) {
	switch PageType(s) {
	case PageTypeDocument:
		return PageTypeDocument, nil
	case PageTypeCollection:
		return PageTypeCollection, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPageType, s)
	}
}

// PageIcon is the icon attached to a page, if any.
type PageIcon struct {
	// Type is the icon kind. Outline only exposes emoji icons.
	Type string

	// Emoji is the emoji character.
	Emoji string
}

// Page is the unified listing representation of either a collection or a
// document. Pages are rebuilt from the remote workspace on every listing;
// nothing is persisted.
type Page struct {
	// ID is the upstream identifier. Uniqueness is assumed but not
	// enforced; duplicates from the service are passed through as-is.
	ID string

	// Name is the collection name or document title.
	Name string

	// Icon is nil when the page has no icon.
	Icon *PageIcon

	// ParentID is the parent document ID if nested, else the owning
	// collection ID. Empty for collections.
	ParentID string

	// Type distinguishes documents from collections.
	Type PageType

	// URL is the web location of the page.
	URL string

	// LastModified is the upstream updatedAt timestamp, unparsed.
	LastModified string
}

// Workspace describes the remote account/team instance.
type Workspace struct {
	// Name is the team name.
	Name string

	// ID is the team identifier. Empty when unknown.
	ID string

	// URL is the workspace base URL.
	URL string
}

// SearchResult is a single documents.search hit.
type SearchResult struct {
	// Context is the highlighted snippet around the match.
	Context string

	// Ranking is the upstream relevance score.
	Ranking float64

	// Document is the matched document mapped to a Page.
	Document Page
}

// ExtractionResult carries the formatted content for one page.
// Exactly one of DocumentID/CollectionID is non-empty, matching the
// requested page type.
type ExtractionResult struct {
	// Content is the formatted text.
	Content string

	// DocumentID is set when a document was extracted.
	DocumentID string

	// CollectionID is set when a collection was extracted.
	CollectionID string
}
