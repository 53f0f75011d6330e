// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them. The document store collaborators (listing and fetch)
// are injected capabilities so the resolver and renderer can be tested
// with fixed in-memory fixtures and no network dependency.
//
// # Required Interfaces
//
//   - Lister: Enumerates the documents of a bounded collection
//   - Fetcher: Fetches the structural model of one document
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RenderCache: Caches rendered HTML keyed by document revision
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
