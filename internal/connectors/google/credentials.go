package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
)

// Read-only scopes for the document store. The service account needs
// Drive access to list the folder and Docs access to fetch content.
const (
	ScopeDocumentsReadonly = "https://www.googleapis.com/auth/documents.readonly"
	ScopeDriveReadonly     = "https://www.googleapis.com/auth/drive.readonly"
)

// TokenSourceFromBase64 builds an oauth2.TokenSource from a
// base64-encoded service account key, the shape the key is delivered
// in through the environment.
func TokenSourceFromBase64(ctx context.Context, encoded string) (oauth2.TokenSource, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding credentials: %w", err)
	}
	return tokenSourceFromJSON(ctx, data)
}

// TokenSourceFromFile builds an oauth2.TokenSource from a service
// account key file on disk.
func TokenSourceFromFile(ctx context.Context, path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	return tokenSourceFromJSON(ctx, data)
}

func tokenSourceFromJSON(ctx context.Context, data []byte) (oauth2.TokenSource, error) {
	cfg, err := googleauth.JWTConfigFromJSON(data, ScopeDocumentsReadonly, ScopeDriveReadonly)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}
	return cfg.TokenSource(ctx), nil
}
