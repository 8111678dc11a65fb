// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants browse and read Outline workspace content.
package mcp

import "errors"

// ErrMissingPageService is returned when the page service is not provided.
var ErrMissingPageService = errors.New("mcp: page service is required")

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("mcp: content service is required")
