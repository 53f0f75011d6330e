package google

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"google.golang.org/api/googleapi"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

func gerr(code int) error {
	return &googleapi.Error{Code: code, Message: "upstream says no"}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil stays nil", err: nil, want: nil},
		{name: "401 is a permission failure", err: gerr(http.StatusUnauthorized), want: domain.ErrPermission},
		{name: "403 is a permission failure", err: gerr(http.StatusForbidden), want: domain.ErrPermission},
		{name: "404 is not found", err: gerr(http.StatusNotFound), want: domain.ErrNotFound},
		{name: "429 is upstream", err: gerr(http.StatusTooManyRequests), want: domain.ErrUpstream},
		{name: "500 is upstream", err: gerr(http.StatusInternalServerError), want: domain.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err)

			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrapErrorPassesThroughNonAPIErrors(t *testing.T) {
	plain := errors.New("connection refused")

	got := WrapError(plain)

	assert.Equal(t, plain, got)
}

func TestWrapErrorKeepsUpstreamMessage(t *testing.T) {
	got := WrapError(gerr(http.StatusInternalServerError))

	assert.Contains(t, got.Error(), "upstream says no")
}

func TestWrapErrorUnwrapsWrappedAPIErrors(t *testing.T) {
	wrapped := fmt.Errorf("calling files.list: %w", gerr(http.StatusForbidden))

	got := WrapError(wrapped)

	assert.ErrorIs(t, got, domain.ErrPermission)
}

func TestIsPermission(t *testing.T) {
	assert.True(t, IsPermission(gerr(http.StatusForbidden)))
	assert.True(t, IsPermission(WrapError(gerr(http.StatusUnauthorized))))
	assert.False(t, IsPermission(gerr(http.StatusNotFound)))
	assert.False(t, IsPermission(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(gerr(http.StatusNotFound)))
	assert.True(t, IsNotFound(WrapError(gerr(http.StatusNotFound))))
	assert.False(t, IsNotFound(gerr(http.StatusForbidden)))
}
