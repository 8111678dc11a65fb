package outline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.CredentialValidator = (*Validator)(nil)

// Validator checks workspace credentials with a single auth.info call.
// Unlike the client it never retries: validation should answer quickly,
// and every failure category maps to its own user-facing message.
type Validator struct {
	httpClient *http.Client
}

// NewValidator creates a credential validator.
func NewValidator() *Validator {
	return &Validator{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// ValidateCredentials validates format first (no network), then probes
// auth.info once and classifies the outcome.
func (v *Validator) ValidateCredentials(ctx context.Context, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	endpoint := creds.APIBaseURL() + "/auth.info"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return &domain.ValidationError{Message: "invalid workspace URL", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(creds.APIKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return classifyNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ValidationError{
			Message: fmt.Sprintf("network error: %v", err),
			Cause:   err,
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &domain.ValidationError{
			Message: "invalid API key",
			Cause:   domain.ErrAuthInvalid,
		}
	case resp.StatusCode == http.StatusNotFound:
		return &domain.ValidationError{
			Message: "invalid workspace URL or API not accessible",
			Cause:   domain.ErrNotFound,
		}
	case resp.StatusCode != http.StatusOK:
		return &domain.ValidationError{
			Message: fmt.Sprintf("API request failed with status %d", resp.StatusCode),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &domain.ValidationError{
			Message: "unexpected response from workspace API",
			Cause:   err,
		}
	}
	if !env.Ok {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return &domain.ValidationError{Message: "API error: " + msg}
	}

	return nil
}

// classifyNetworkError maps transport failures to distinct validation
// messages: timeouts and refused connections read differently to users.
func classifyNetworkError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() {
			return &domain.ValidationError{
				Message: "connection timed out, please try again",
				Cause:   err,
			}
		}
		var operr *net.OpError
		if errors.As(err, &operr) && operr.Op == "dial" {
			return &domain.ValidationError{
				Message: "cannot connect to workspace URL, check the URL is correct",
				Cause:   err,
			}
		}
	}
	return &domain.ValidationError{
		Message: fmt.Sprintf("network error: %v", err),
		Cause:   err,
	}
}
