package driven

import (
	"context"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// Lister enumerates the documents of a bounded collection.
// The returned order is significant but unspecified by the upstream
// store; the resolver's first-match policy is order-dependent on it.
type Lister interface {
	// ListFolder returns the documents contained in the given folder.
	// Subfolders are not descended into.
	ListFolder(ctx context.Context, folderID string) ([]domain.DocumentRef, error)
}
