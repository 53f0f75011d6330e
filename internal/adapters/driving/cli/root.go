// Package cli implements the fetchdoc command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	cachesqlite "github.com/oldgaffers/fetch-doc/internal/adapters/driven/cache/sqlite"
	"github.com/oldgaffers/fetch-doc/internal/adapters/driven/config"
	"github.com/oldgaffers/fetch-doc/internal/connectors/google"
	gdocs "github.com/oldgaffers/fetch-doc/internal/connectors/google/docs"
	gdrive "github.com/oldgaffers/fetch-doc/internal/connectors/google/drive"
	"github.com/oldgaffers/fetch-doc/internal/core/ports/driven"
	"github.com/oldgaffers/fetch-doc/internal/core/services"
	"github.com/oldgaffers/fetch-doc/internal/logger"
)

var (
	flagVerbose    bool
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "fetchdoc",
	Short: "Fetch documents from a shared Google Drive folder as HTML",
	Long: `fetchdoc locates a Google Doc by exact name inside a configured
shared folder and renders it as a self-contained HTML document.

Credentials come from GOOGLE_CREDENTIALS_JSON (base64-encoded service
account key) or GOOGLE_CREDENTIALS_FILE, and the folder from
GOOGLE_DRIVE_FOLDER_ID. See --config for a TOML alternative.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a TOML config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// application bundles the wired service with the resources it owns.
type application struct {
	document *services.DocumentService
	cache    driven.RenderCache
	cfg      config.Config
}

// Close releases the application's resources.
func (a *application) Close() {
	if a.cache != nil {
		a.cache.Close() //nolint:errcheck
	}
}

// buildApplication wires the Google collaborators and the core service
// from configuration.
func buildApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ts, err := tokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	driveSvc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	docsSvc, err := google.NewDocsService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating docs service: %w", err)
	}

	var cache driven.RenderCache
	if cfg.CachePath != "" {
		cache, err = cachesqlite.New(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("opening render cache: %w", err)
		}
		logger.Debug("render cache enabled at %s", cfg.CachePath)
	}

	document := services.NewDocumentService(
		gdrive.NewLister(driveSvc, cfg.MaxResults),
		gdocs.NewFetcher(docsSvc),
		cache,
		cfg.FolderID,
	)

	return &application{document: document, cache: cache, cfg: cfg}, nil
}

func tokenSource(ctx context.Context, cfg config.Config) (oauth2.TokenSource, error) {
	if cfg.CredentialsJSON != "" {
		return google.TokenSourceFromBase64(ctx, cfg.CredentialsJSON)
	}
	return google.TokenSourceFromFile(ctx, cfg.CredentialsFile)
}
