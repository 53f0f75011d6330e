// Package docs implements the document fetch port against the Google
// Docs API, translating the provider's structural JSON into the domain
// model.
package docs

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"

	"github.com/oldgaffers/fetch-doc/internal/connectors/google"
	"github.com/oldgaffers/fetch-doc/internal/core/domain"
	"github.com/oldgaffers/fetch-doc/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher fetches Google Docs documents by identifier.
type Fetcher struct {
	svc     *docs.Service
	limiter *google.RateLimiter
}

// NewFetcher creates a Fetcher backed by the given Docs service.
func NewFetcher(svc *docs.Service) *Fetcher {
	return &Fetcher{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceDocs),
	}
}

// FetchDocument retrieves one document and maps it into the domain
// structural model.
func (f *Fetcher) FetchDocument(ctx context.Context, docID string) (*domain.StructuralDocument, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	doc, err := f.svc.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
			f.limiter.RecordRateLimitError(0)
		}
		return nil, google.WrapError(err)
	}

	return MapDocument(doc), nil
}
