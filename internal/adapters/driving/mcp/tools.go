package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

// ListPagesInput is the input schema for the list_pages tool.
type ListPagesInput struct{}

// ListPagesOutput is the output schema for the list_pages tool.
type ListPagesOutput struct {
	Workspace WorkspaceOutput `json:"workspace"`
	Pages     []PageOutput    `json:"pages"`
	Total     int             `json:"total"`
}

// PageOutput represents a single page in tool output.
type PageOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	ParentID     string `json:"parent_id,omitempty"`
	Emoji        string `json:"emoji,omitempty"`
	URL          string `json:"url,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// WorkspaceOutput describes the workspace in tool output.
type WorkspaceOutput struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
	URL  string `json:"url"`
}

// GetPageContentInput is the input schema for the get_page_content tool.
type GetPageContentInput struct {
	PageID   string `json:"page_id" jsonschema:"the ID of the page to extract"`
	PageType string `json:"page_type" jsonschema:"the page type, either document or collection"`
}

// GetPageContentOutput is the output schema for the get_page_content tool.
type GetPageContentOutput struct {
	Content      string `json:"content"`
	DocumentID   string `json:"document_id,omitempty"`
	CollectionID string `json:"collection_id,omitempty"`
}

// GetWorkspaceInfoInput is the input schema for the get_workspace_info tool.
type GetWorkspaceInfoInput struct{}

// SearchDocumentsInput is the input schema for the search_documents tool.
type SearchDocumentsInput struct {
	Query string `json:"query" jsonschema:"the search query to find documents"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 25)"`
}

// SearchDocumentsOutput is the output schema for the search_documents tool.
type SearchDocumentsOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID string  `json:"document_id"`
	Title      string  `json:"title"`
	URL        string  `json:"url,omitempty"`
	Ranking    float64 `json:"ranking"`
	Context    string  `json:"context,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_pages",
		Description: "List every collection and document in the Outline workspace",
	}, s.handleListPages)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_page_content",
		Description: "Get the markdown content of a document or collection",
	}, s.handleGetPageContent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_workspace_info",
		Description: "Get the Outline workspace name, ID and URL",
	}, s.handleGetWorkspaceInfo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Full-text search across workspace documents",
	}, s.handleSearchDocuments)
}

// handleListPages handles the list_pages tool invocation.
func (s *Server) handleListPages(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListPagesInput,
) (*mcp.CallToolResult, ListPagesOutput, error) {
	listing, err := s.ports.Pages.List(ctx)
	if err != nil {
		return nil, ListPagesOutput{}, err
	}

	output := ListPagesOutput{
		Workspace: workspaceOutput(listing.Workspace),
		Pages:     make([]PageOutput, len(listing.Pages)),
		Total:     listing.Total,
	}
	for i := range listing.Pages {
		output.Pages[i] = pageOutput(listing.Pages[i])
	}

	return nil, output, nil
}

// handleGetPageContent handles the get_page_content tool invocation.
func (s *Server) handleGetPageContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPageContentInput,
) (*mcp.CallToolResult, GetPageContentOutput, error) {
	result, err := s.ports.Content.Extract(ctx, input.PageID, input.PageType)
	if err != nil {
		return nil, GetPageContentOutput{}, err
	}

	return nil, GetPageContentOutput{
		Content:      result.Content,
		DocumentID:   result.DocumentID,
		CollectionID: result.CollectionID,
	}, nil
}

// handleGetWorkspaceInfo handles the get_workspace_info tool invocation.
func (s *Server) handleGetWorkspaceInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetWorkspaceInfoInput,
) (*mcp.CallToolResult, WorkspaceOutput, error) {
	return nil, workspaceOutput(s.ports.Pages.Workspace(ctx)), nil
}

// handleSearchDocuments handles the search_documents tool invocation.
func (s *Server) handleSearchDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchDocumentsInput,
) (*mcp.CallToolResult, SearchDocumentsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 25
	}

	results, err := s.ports.Pages.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchDocumentsOutput{}, err
	}

	output := SearchDocumentsOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			DocumentID: results[i].Document.ID,
			Title:      results[i].Document.Name,
			URL:        results[i].Document.URL,
			Ranking:    results[i].Ranking,
			Context:    results[i].Context,
		}
	}

	return nil, output, nil
}

func workspaceOutput(ws domain.Workspace) WorkspaceOutput {
	return WorkspaceOutput{Name: ws.Name, ID: ws.ID, URL: ws.URL}
}

func pageOutput(p domain.Page) PageOutput {
	out := PageOutput{
		ID:           p.ID,
		Name:         p.Name,
		Type:         string(p.Type),
		ParentID:     p.ParentID,
		URL:          p.URL,
		LastModified: p.LastModified,
	}
	if p.Icon != nil {
		out.Emoji = p.Icon.Emoji
	}
	return out
}
