// Package domain contains the core business entities for the Outline CLI:
// pages, workspaces, credentials, and extraction results. It has no
// dependencies on adapters or external services.
package domain
