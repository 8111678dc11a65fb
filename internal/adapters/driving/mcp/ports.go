package mcp

import (
	"github.com/custodia-labs/outline-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Pages lists and searches workspace pages.
	Pages driving.PageService

	// Content extracts page content.
	Content driving.ContentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Pages == nil {
		return ErrMissingPageService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	return nil
}
