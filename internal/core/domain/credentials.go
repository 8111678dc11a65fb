package domain

import "strings"

// Credentials hold the API key and workspace URL for one Outline
// workspace. They are supplied per call and never cached beyond a single
// request's lifetime.
type Credentials struct {
	// APIKey is the Outline API key used as a bearer token.
	APIKey string

	// WorkspaceURL is the workspace base URL
	// (e.g. https://team.getoutline.com).
	WorkspaceURL string
}

// NormalizedURL returns the workspace URL trimmed of whitespace and
// trailing slashes.
func (c Credentials) NormalizedURL() string {
	return strings.TrimRight(strings.TrimSpace(c.WorkspaceURL), "/")
}

// APIBaseURL returns the API root for this workspace.
func (c Credentials) APIBaseURL() string {
	return c.NormalizedURL() + "/api"
}

// Validate performs format checks only. It never touches the network, so
// malformed credentials fail before any HTTP call is made.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &ValidationError{
			Message: "API key is required",
			Cause:   ErrCredentialsMissing,
		}
	}

	url := c.NormalizedURL()
	if url == "" {
		return &ValidationError{
			Message: "workspace URL is required",
			Cause:   ErrCredentialsMissing,
		}
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return &ValidationError{
			Message: "workspace URL must start with http:// or https://",
			Cause:   ErrCredentialsMissing,
		}
	}

	return nil
}

// IsConfigured returns true if both fields are present, without judging
// their validity.
func (c Credentials) IsConfigured() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.WorkspaceURL) != ""
}
