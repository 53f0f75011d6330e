package driven

import "context"

// CachedRender is a previously rendered document.
type CachedRender struct {
	Title string
	HTML  string
}

// RenderCache stores rendered HTML keyed by document id and revision.
// A revision change invalidates the entry. Implementations must be safe
// for concurrent use.
type RenderCache interface {
	// Get returns the cached render for the exact (docID, revision)
	// pair, or nil if absent.
	Get(ctx context.Context, docID, revision string) (*CachedRender, error)

	// Put stores a render, replacing any previous entry for the
	// document.
	Put(ctx context.Context, docID, revision string, entry CachedRender) error

	// Close releases resources.
	Close() error
}
