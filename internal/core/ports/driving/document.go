// Package driving defines the interfaces that outer surfaces call IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, HTTP and MCP adapters depend on these interfaces, and core
// services implement them.
package driving

import "context"

// RenderedDocument is the result of fetching and rendering a document.
type RenderedDocument struct {
	// Title is the document title as reported by the store.
	Title string

	// HTML is the complete rendered document, UTF-8, self-contained.
	HTML string
}

// DocumentService locates a named document in the configured collection
// and returns it rendered as HTML.
type DocumentService interface {
	// FetchHTML resolves docName to exactly one document, fetches its
	// structural model and renders it. Failures are classified with
	// the domain sentinel errors.
	FetchHTML(ctx context.Context, docName string) (*RenderedDocument, error)
}
