package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
)

func TestPageServiceList(t *testing.T) {
	t.Run("assembles listing with workspace and total", func(t *testing.T) {
		conn := &mockConnector{
			pages: []domain.Page{
				{ID: "col-1", Type: domain.PageTypeCollection},
				{ID: "doc-1", Type: domain.PageTypeDocument},
			},
			workspace: domain.Workspace{Name: "Acme", ID: "t1"},
		}
		svc := NewPageService(conn)

		listing, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, listing.Total)
		assert.Equal(t, "Acme", listing.Workspace.Name)
		assert.Equal(t, "col-1", listing.Pages[0].ID)
	})

	t.Run("enumeration failure returns no listing", func(t *testing.T) {
		conn := &mockConnector{listErr: errors.New("boom")}
		svc := NewPageService(conn)

		listing, err := svc.List(context.Background())

		require.Error(t, err)
		assert.Nil(t, listing)
	})

	t.Run("empty workspace lists zero pages", func(t *testing.T) {
		conn := &mockConnector{workspace: domain.Workspace{Name: "Acme"}}
		svc := NewPageService(conn)

		listing, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Zero(t, listing.Total)
		assert.Empty(t, listing.Pages)
	})
}

func TestPageServiceSearch(t *testing.T) {
	t.Run("empty query is invalid input", func(t *testing.T) {
		svc := NewPageService(&mockConnector{})

		_, err := svc.Search(context.Background(), "", 10)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("passes the limit through", func(t *testing.T) {
		conn := &mockConnector{hits: []domain.SearchResult{{Ranking: 1}}}
		svc := NewPageService(conn)

		results, err := svc.Search(context.Background(), "roadmap", 5)

		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 5, conn.searchLimit)
	})
}

func TestPageServiceWorkspace(t *testing.T) {
	conn := &mockConnector{workspace: domain.Workspace{Name: "Acme", URL: "https://acme.example.com"}}
	svc := NewPageService(conn)

	ws := svc.Workspace(context.Background())

	assert.Equal(t, "Acme", ws.Name)
}
