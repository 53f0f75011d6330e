// Package config loads runtime configuration for fetch-doc.
//
// Values come from the environment first, with an optional TOML file
// filling in anything the environment leaves unset. The original
// deployment delivered credentials as a base64-encoded service account
// key in GOOGLE_CREDENTIALS_JSON; a key file path is accepted as an
// alternative for local use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all runtime configuration.
type Config struct {
	// CredentialsJSON is a base64-encoded service account key.
	CredentialsJSON string `toml:"-"`

	// CredentialsFile is a path to a service account key file.
	// Used when CredentialsJSON is unset.
	CredentialsFile string `toml:"credentials_file"`

	// FolderID is the Drive folder the lookup is restricted to.
	FolderID string `toml:"folder_id"`

	// Addr is the HTTP listen address for serve mode.
	Addr string `toml:"addr"`

	// CachePath is the render cache database path. Empty disables
	// caching.
	CachePath string `toml:"cache_path"`

	// MaxResults is the Drive listing page size.
	MaxResults int64 `toml:"max_results"`
}

// Load reads configuration from the optional TOML file at path, then
// applies environment overrides. A missing file is only an error when
// the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Config{
		Addr:       ":8080",
		MaxResults: 100,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv("GOOGLE_CREDENTIALS_JSON"); v != "" {
		cfg.CredentialsJSON = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("GOOGLE_DRIVE_FOLDER_ID"); v != "" {
		cfg.FolderID = v
	}
	if v := os.Getenv("FETCHDOC_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FETCHDOC_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("FETCHDOC_MAX_RESULTS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("FETCHDOC_MAX_RESULTS must be a positive integer, got %q", v)
		}
		cfg.MaxResults = n
	}

	return cfg, nil
}

// Validate checks that the configuration is complete enough to reach
// the document store. Error messages name the missing setting so a
// misconfigured deployment fails with something actionable.
func (c Config) Validate() error {
	if c.CredentialsJSON == "" && c.CredentialsFile == "" {
		return errors.New("GOOGLE_CREDENTIALS_JSON (or GOOGLE_CREDENTIALS_FILE) is not set")
	}
	if c.FolderID == "" {
		return errors.New("GOOGLE_DRIVE_FOLDER_ID is not set")
	}
	return nil
}
