package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidRequest indicates missing or malformed caller input.
	// Recoverable only by the caller retrying with valid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates the requested name had no exact match
	// in the collection listing.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedNode indicates the structural model contained a
	// variant the renderer cannot interpret. This signals a
	// collaborator or model-version mismatch, not bad user input.
	ErrUnsupportedNode = errors.New("unsupported node")

	// ErrPermission indicates the upstream store denied access to the
	// collection or document.
	ErrPermission = errors.New("permission denied")

	// ErrUpstream indicates an opaque failure surfaced from an
	// external collaborator, passed through with its message attached.
	ErrUpstream = errors.New("upstream error")
)
