package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
	"github.com/oldgaffers/fetch-doc/internal/core/ports/driving"
)

// mockDocumentService implements driving.DocumentService for testing.
type mockDocumentService struct {
	doc *driving.RenderedDocument
	err error
}

func (m *mockDocumentService) FetchHTML(_ context.Context, _ string) (*driving.RenderedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

func TestNewServer(t *testing.T) {
	t.Run("nil document service returns error", func(t *testing.T) {
		server, err := NewServer(nil)

		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDocumentService)
	})

	t.Run("valid service creates server", func(t *testing.T) {
		server, err := NewServer(&mockDocumentService{})

		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServer_handleFetchDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rendered document", func(t *testing.T) {
		server, err := NewServer(&mockDocumentService{
			doc: &driving.RenderedDocument{Title: "Notes", HTML: "<!DOCTYPE html>..."},
		})
		require.NoError(t, err)

		_, output, err := server.handleFetchDocument(ctx, nil, FetchDocumentInput{DocName: "Notes"})

		require.NoError(t, err)
		assert.Equal(t, "Notes", output.Title)
		assert.Equal(t, "<!DOCTYPE html>...", output.HTML)
	})

	t.Run("returns error on fetch failure", func(t *testing.T) {
		server, err := NewServer(&mockDocumentService{
			err: fmt.Errorf("%w: document %q", domain.ErrNotFound, "Ghost"),
		})
		require.NoError(t, err)

		_, _, err = server.handleFetchDocument(ctx, nil, FetchDocumentInput{DocName: "Ghost"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("opaque errors pass through", func(t *testing.T) {
		upstream := errors.New("store offline")
		server, err := NewServer(&mockDocumentService{err: upstream})
		require.NoError(t, err)

		_, _, err = server.handleFetchDocument(ctx, nil, FetchDocumentInput{DocName: "Notes"})

		assert.ErrorIs(t, err, upstream)
	})
}
