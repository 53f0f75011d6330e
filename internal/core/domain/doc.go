// Package domain defines the core business entities for fetch-doc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRef: A candidate document from a collection listing
//   - Node: A block-level structural element (closed variant set)
//   - TextRun: A span of text sharing one set of inline style flags
//   - StructuralDocument: A fetched document's title and ordered body
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
