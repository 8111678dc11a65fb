package outline

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// untitledDocument is the fallback heading for documents with no title.
const untitledDocument = "Untitled Document"

// excessBreaks matches runs of three or more line breaks (two or more
// blank lines), possibly containing stray whitespace.
var excessBreaks = regexp.MustCompile(`\n\s*\n\s*\n+`)

// Extract fetches and formats the content of one page.
//
// Unsupported page types fail immediately, before any network call.
// Document and collection extraction are best effort: failures past this
// point are folded into the returned content rather than raised, so a
// consumer always receives something renderable.
func (c *Connector) Extract(ctx context.Context, pageID string, pageType domain.PageType) (*domain.ExtractionResult, error) {
	switch pageType {
	case domain.PageTypeDocument:
		content, err := c.documentContent(ctx, pageID)
		if err != nil {
			content = fmt.Sprintf("Error extracting document content: %v", err)
		}
		return &domain.ExtractionResult{Content: content, DocumentID: pageID}, nil

	case domain.PageTypeCollection:
		return &domain.ExtractionResult{
			Content:      c.collectionContent(ctx, pageID),
			CollectionID: pageID,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPageType, string(pageType))
	}
}

// documentContent formats one document as "# {title}\n\n{cleaned body}".
func (c *Connector) documentContent(ctx context.Context, documentID string) (string, error) {
	doc, err := c.client.DocumentInfo(ctx, documentID)
	if err != nil {
		return "", err
	}

	title := doc.Title
	if title == "" {
		title = untitledDocument
	}

	content := "# " + title + "\n\n"
	if cleaned := cleanText(doc.Text); cleaned != "" {
		content += cleaned
	}
	return content, nil
}

// collectionContent renders a collection header followed by the body of
// every document in the collection. Per-document and listing failures
// become inline error markers; only the initial collection lookup failing
// produces error-only content. Nothing here raises.
func (c *Connector) collectionContent(ctx context.Context, collectionID string) string {
	col, err := c.client.CollectionInfo(ctx, collectionID)
	if err != nil {
		return fmt.Sprintf("Error extracting collection content: %v", err)
	}

	name := col.Name
	if name == "" {
		name = "Untitled Collection"
	}

	var b strings.Builder
	b.WriteString("# " + name + "\n\n")
	if col.Description != "" {
		b.WriteString(col.Description + "\n\n")
	}
	b.WriteString("---\n\n")

	docs, err := c.client.ListDocuments(ctx, DefaultPageSize, 0, collectionID)
	if err != nil {
		fmt.Fprintf(&b, "*Error loading collection documents: %v*\n\n", err)
		return b.String()
	}
	if len(docs) == 0 {
		b.WriteString("*No documents found in this collection*\n\n")
		return b.String()
	}

	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = untitledDocument
		}
		b.WriteString("### " + title + "\n\n")

		content, err := c.documentContent(ctx, doc.ID)
		if err != nil {
			fmt.Fprintf(&b, "*Error loading document content: %v*\n\n", err)
			continue
		}
		// The document renders its own "# title" heading; drop it since
		// the collection already emitted one per document.
		b.WriteString(stripHeading(content) + "\n\n")
	}

	return b.String()
}

// stripHeading removes the leading "# title" line and the blank line
// after it, leaving only the body.
func stripHeading(content string) string {
	parts := strings.SplitN(content, "\n", 3)
	if len(parts) > 2 {
		return parts[2]
	}
	return content
}

// cleanText normalises document body text: runs of blank lines collapse
// to a single blank line, whitespace-only paragraphs are dropped, and
// leading/trailing whitespace is trimmed.
func cleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.TrimSpace(excessBreaks.ReplaceAllString(text, "\n\n"))
	if cleaned == "" {
		return ""
	}

	paragraphs := strings.Split(cleaned, "\n\n")
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
