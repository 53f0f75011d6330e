package driven

import (
	"context"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// Fetcher retrieves the structural model of a single document by
// identifier, translating the provider-specific representation into
// the domain model.
type Fetcher interface {
	FetchDocument(ctx context.Context, docID string) (*domain.StructuralDocument, error)
}
