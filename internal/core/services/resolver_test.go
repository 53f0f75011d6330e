package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []domain.DocumentRef
		wantID     string
		wantErr    error
	}{
		{
			name:   "single exact match",
			target: "Meeting Notes",
			candidates: []domain.DocumentRef{
				{Name: "Meeting Notes", ID: "abc"},
			},
			wantID: "abc",
		},
		{
			name:   "first match wins on duplicate names",
			target: "A",
			candidates: []domain.DocumentRef{
				{Name: "A", ID: "1"},
				{Name: "A", ID: "2"},
			},
			wantID: "1",
		},
		{
			name:   "match order follows listing order",
			target: "B",
			candidates: []domain.DocumentRef{
				{Name: "A", ID: "1"},
				{Name: "B", ID: "2"},
				{Name: "B", ID: "3"},
			},
			wantID: "2",
		},
		{
			name:   "comparison is case sensitive",
			target: "meeting notes",
			candidates: []domain.DocumentRef{
				{Name: "Meeting Notes", ID: "abc"},
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:   "no trimming of whitespace",
			target: "Notes",
			candidates: []domain.DocumentRef{
				{Name: " Notes", ID: "abc"},
				{Name: "Notes ", ID: "def"},
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:       "empty candidate list",
			target:     "Anything",
			candidates: nil,
			wantErr:    domain.ErrNotFound,
		},
		{
			name:    "empty target is invalid before lookup",
			target:  "",
			wantErr: domain.ErrInvalidRequest,
		},
		{
			name:   "empty target does not match empty name",
			target: "",
			candidates: []domain.DocumentRef{
				{Name: "", ID: "abc"},
			},
			wantErr: domain.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Resolve(tt.target, tt.candidates)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolveNotFoundNamesTheDocument(t *testing.T) {
	_, err := Resolve("Quarterly Report", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Quarterly Report"`)
}
