package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// NewDocsService creates a Google Docs API service using the provided TokenSource.
func NewDocsService(ctx context.Context, ts oauth2.TokenSource) (*docs.Service, error) {
	return docs.NewService(ctx, option.WithTokenSource(ts))
}
