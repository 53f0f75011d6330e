// Package drive implements the collection listing port against the
// Google Drive API. A collection is a single Drive folder; listing
// returns the Google Docs it contains, untrashed, without descending
// into subfolders.
package drive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/oldgaffers/fetch-doc/internal/connectors/google"
	"github.com/oldgaffers/fetch-doc/internal/core/domain"
	"github.com/oldgaffers/fetch-doc/internal/core/ports/driven"
)

// MimeTypeGoogleDoc is the MIME type of native Google Docs files.
const MimeTypeGoogleDoc = "application/vnd.google-apps.document"

// DefaultPageSize is the listing page size.
const DefaultPageSize = 100

// Ensure Lister implements the interface.
var _ driven.Lister = (*Lister)(nil)

// Lister lists the Google Docs of one Drive folder.
type Lister struct {
	svc      *drive.Service
	limiter  *google.RateLimiter
	pageSize int64
}

// NewLister creates a Lister backed by the given Drive service.
// pageSize values below 1 fall back to DefaultPageSize.
func NewLister(svc *drive.Service, pageSize int64) *Lister {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Lister{
		svc:      svc,
		limiter:  google.NewRateLimiter(google.ServiceDrive),
		pageSize: pageSize,
	}
}

// ListFolder returns every untrashed Google Doc directly inside
// folderID, in the order the Drive API returns them. That order is
// significant but unspecified; callers applying a first-match policy
// inherit it.
func (l *Lister) ListFolder(ctx context.Context, folderID string) ([]domain.DocumentRef, error) {
	query := buildFolderQuery(folderID)

	var refs []domain.DocumentRef
	pageToken := ""
	for {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := l.svc.Files.List().
			Q(query).
			Spaces("drive").
			Fields(googleapi.Field("nextPageToken, files(id, name, modifiedTime)")).
			PageSize(l.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			var gerr *googleapi.Error
			if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
				l.limiter.RecordRateLimitError(0)
			}
			return nil, google.WrapError(err)
		}

		for _, f := range page.Files {
			refs = append(refs, domain.DocumentRef{
				Name:     f.Name,
				ID:       f.Id,
				Revision: f.ModifiedTime,
			})
		}

		if page.NextPageToken == "" {
			return refs, nil
		}
		pageToken = page.NextPageToken
	}
}

// buildFolderQuery builds the files.list query for one folder, scoped
// to untrashed native Google Docs.
func buildFolderQuery(folderID string) string {
	return fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false",
		escapeQueryTerm(folderID), MimeTypeGoogleDoc)
}

// escapeQueryTerm escapes a value for inclusion in a Drive query
// string. Backslashes must be escaped before quotes.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
