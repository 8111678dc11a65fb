// Package driving defines the inbound ports: interfaces the CLI and MCP
// adapters use to drive the core services.
package driving
