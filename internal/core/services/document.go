// Package services implements the core use cases behind the driving
// ports: resolving a document name within the configured collection and
// producing its rendered HTML.
package services

import (
	"context"
	"fmt"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
	"github.com/oldgaffers/fetch-doc/internal/core/ports/driven"
	"github.com/oldgaffers/fetch-doc/internal/core/ports/driving"
	"github.com/oldgaffers/fetch-doc/internal/logger"
	"github.com/oldgaffers/fetch-doc/internal/render"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService resolves document names and renders documents to HTML.
type DocumentService struct {
	lister   driven.Lister
	fetcher  driven.Fetcher
	cache    driven.RenderCache
	folderID string
}

// NewDocumentService creates a new document service. cache may be nil
// to disable render caching.
func NewDocumentService(
	lister driven.Lister,
	fetcher driven.Fetcher,
	cache driven.RenderCache,
	folderID string,
) *DocumentService {
	return &DocumentService{
		lister:   lister,
		fetcher:  fetcher,
		cache:    cache,
		folderID: folderID,
	}
}

// FetchHTML resolves docName within the configured folder, fetches the
// document's structural model and renders it as a self-contained HTML
// document. Input validation happens before any collaborator call.
func (s *DocumentService) FetchHTML(ctx context.Context, docName string) (*driving.RenderedDocument, error) {
	if docName == "" {
		return nil, fmt.Errorf("%w: document name is required", domain.ErrInvalidRequest)
	}

	refs, err := s.lister.ListFolder(ctx, s.folderID)
	if err != nil {
		return nil, fmt.Errorf("listing folder %s: %w", s.folderID, err)
	}
	logger.Debug("folder %s listed %d document(s)", s.folderID, len(refs))

	docID, err := Resolve(docName, refs)
	if err != nil {
		return nil, err
	}

	revision := revisionFor(refs, docID)
	if cached := s.cachedRender(ctx, docID, revision); cached != nil {
		logger.Debug("cache hit for document %s revision %s", docID, revision)
		return cached, nil
	}

	doc, err := s.fetcher.FetchDocument(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("fetching document %q: %w", docName, err)
	}

	html, err := render.Render(doc.Title, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("rendering document %q: %w", docName, err)
	}

	s.storeRender(ctx, docID, revision, doc.Title, html)

	return &driving.RenderedDocument{Title: doc.Title, HTML: html}, nil
}

// revisionFor returns the listing revision of the resolved document.
func revisionFor(refs []domain.DocumentRef, docID string) string {
	for _, r := range refs {
		if r.ID == docID {
			return r.Revision
		}
	}
	return ""
}

// cachedRender returns a cached result, or nil when caching is
// disabled, the revision is unknown, or the entry is absent. Cache
// failures are logged and treated as misses; the cache is an
// optimisation, never a source of errors.
func (s *DocumentService) cachedRender(ctx context.Context, docID, revision string) *driving.RenderedDocument {
	if s.cache == nil || revision == "" {
		return nil
	}

	entry, err := s.cache.Get(ctx, docID, revision)
	if err != nil {
		logger.Warn("render cache read failed for %s: %v", docID, err)
		return nil
	}
	if entry == nil {
		return nil
	}
	return &driving.RenderedDocument{Title: entry.Title, HTML: entry.HTML}
}

func (s *DocumentService) storeRender(ctx context.Context, docID, revision, title, html string) {
	if s.cache == nil || revision == "" {
		return
	}
	if err := s.cache.Put(ctx, docID, revision, driven.CachedRender{Title: title, HTML: html}); err != nil {
		logger.Warn("render cache write failed for %s: %v", docID, err)
	}
}
