package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

func TestCredentialsServiceSave(t *testing.T) {
	t.Run("persists both values", func(t *testing.T) {
		store := newMockConfigStore()
		svc := NewCredentialsService(store, &mockValidator{})

		err := svc.Save(context.Background(), domain.Credentials{
			APIKey:       "ol_api_abc",
			WorkspaceURL: "https://acme.getoutline.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "ol_api_abc", store.GetString(ConfigKeyAPIKey))
		assert.Equal(t, "https://acme.getoutline.com", store.GetString(ConfigKeyWorkspaceURL))
	})

	t.Run("rejects malformed credentials without writing", func(t *testing.T) {
		store := newMockConfigStore()
		svc := NewCredentialsService(store, &mockValidator{})

		err := svc.Save(context.Background(), domain.Credentials{APIKey: "k"})

		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Empty(t, store.values)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		store := newMockConfigStore()
		store.setErr = errors.New("disk full")
		svc := NewCredentialsService(store, &mockValidator{})

		err := svc.Save(context.Background(), domain.Credentials{
			APIKey:       "k",
			WorkspaceURL: "https://acme.getoutline.com",
		})

		assert.ErrorContains(t, err, "disk full")
	})
}

func TestCredentialsServiceLoad(t *testing.T) {
	t.Run("reads stored values", func(t *testing.T) {
		store := newMockConfigStore()
		store.values[ConfigKeyAPIKey] = "stored-key"
		store.values[ConfigKeyWorkspaceURL] = "https://stored.example.com"
		svc := NewCredentialsService(store, &mockValidator{})

		creds, err := svc.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "stored-key", creds.APIKey)
		assert.Equal(t, "https://stored.example.com", creds.WorkspaceURL)
	})

	t.Run("environment overrides stored values", func(t *testing.T) {
		store := newMockConfigStore()
		store.values[ConfigKeyAPIKey] = "stored-key"
		store.values[ConfigKeyWorkspaceURL] = "https://stored.example.com"
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvWorkspaceURL, "https://env.example.com")
		svc := NewCredentialsService(store, &mockValidator{})

		creds, err := svc.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "env-key", creds.APIKey)
		assert.Equal(t, "https://env.example.com", creds.WorkspaceURL)
	})

	t.Run("environment alone is enough", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvWorkspaceURL, "https://env.example.com")
		svc := NewCredentialsService(newMockConfigStore(), &mockValidator{})

		creds, err := svc.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "env-key", creds.APIKey)
	})

	t.Run("nothing configured is not authenticated", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")
		t.Setenv(EnvWorkspaceURL, "")
		svc := NewCredentialsService(newMockConfigStore(), &mockValidator{})

		_, err := svc.Load(context.Background())

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestCredentialsServiceValidate(t *testing.T) {
	validator := &mockValidator{err: &domain.ValidationError{Message: "invalid API key"}}
	svc := NewCredentialsService(newMockConfigStore(), validator)

	err := svc.Validate(context.Background(), domain.Credentials{})

	assert.EqualError(t, err, "invalid API key")
	assert.Equal(t, 1, validator.calls)
}

func TestCredentialsServiceClear(t *testing.T) {
	store := newMockConfigStore()
	store.values[ConfigKeyAPIKey] = "k"
	store.values[ConfigKeyWorkspaceURL] = "u"
	svc := NewCredentialsService(store, &mockValidator{})

	err := svc.Clear(context.Background())

	require.NoError(t, err)
	assert.Empty(t, store.values)
	assert.Equal(t, []string{ConfigKeyAPIKey, ConfigKeyWorkspaceURL}, store.deleted)
}
