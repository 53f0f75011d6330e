package services

import (
	"fmt"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// Resolve selects the identifier of the document named targetName from
// a collection listing. Comparison is exact and case-sensitive: no
// normalisation, no trimming, no fuzzy matching. Candidates are
// scanned in the order supplied by the listing collaborator and the
// first match wins, so duplicate names resolve to whichever the
// upstream listed first. Pure function, no side effects.
func Resolve(targetName string, candidates []domain.DocumentRef) (string, error) {
	if targetName == "" {
		return "", fmt.Errorf("%w: document name is required", domain.ErrInvalidRequest)
	}

	for _, c := range candidates {
		if c.Name == targetName {
			return c.ID, nil
		}
	}

	return "", fmt.Errorf("%w: document %q", domain.ErrNotFound, targetName)
}
