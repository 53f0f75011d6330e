package google

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// WrapError classifies a Google API error into the domain error
// taxonomy. Status codes map the way the transport layer expects:
// 401/403 become permission failures, 404 becomes not-found, anything
// else is an opaque upstream failure with its message attached.
// Non-googleapi errors pass through unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: invalid credentials", domain.ErrPermission)
	case http.StatusForbidden:
		return fmt.Errorf("%w: service account may not have access to this document or folder", domain.ErrPermission)
	case http.StatusNotFound:
		return fmt.Errorf("%w: document no longer exists upstream", domain.ErrNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: rate limit exceeded", domain.ErrUpstream)
	default:
		return fmt.Errorf("%w: google api error %d: %s", domain.ErrUpstream, gerr.Code, gerr.Message)
	}
}

// IsPermission returns true if the error indicates denied access.
func IsPermission(err error) bool {
	if errors.Is(err, domain.ErrPermission) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden
	}
	return false
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	if errors.Is(err, domain.ErrNotFound) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound
	}
	return false
}
