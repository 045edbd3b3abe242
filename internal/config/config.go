// Package config loads the mapfs.yaml project file that selects and
// configures the backing store for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mapfs-io/mapfs/internal/store"
	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project file looked up in the source directory.
const ConfigFileName = "mapfs.yaml"

// Environment variables overriding credential fields so secrets stay out of
// the YAML file. A .env file in the working directory is honored by the CLI.
const (
	EnvConnString  = "MAPFS_CONN"
	EnvS3AccessKey = "MAPFS_S3_ACCESS_KEY"
	EnvS3SecretKey = "MAPFS_S3_SECRET_KEY"
)

// StoreConfig selects the backend the filesystem runs on.
type StoreConfig struct {
	Type       string `yaml:"type"`
	Path       string `yaml:"path,omitempty"`
	ConnString string `yaml:"conn_string,omitempty"`
	Bucket     string `yaml:"bucket,omitempty"`
	Prefix     string `yaml:"prefix,omitempty"`
	Region     string `yaml:"region,omitempty"`
	Endpoint   string `yaml:"endpoint,omitempty"`
}

// ProjectConfig is the full mapfs.yaml schema.
type ProjectConfig struct {
	Store       StoreConfig `yaml:"store"`
	Compression string      `yaml:"compression,omitempty"`
}

// Default returns the configuration used when no mapfs.yaml exists: an
// in-memory store without compression.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Store: StoreConfig{Type: string(store.BackendMemory)},
	}
}

// Load reads mapfs.yaml from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// StoreOptions translates the configuration into store.Options, applying
// environment overrides for credentials.
func (c *ProjectConfig) StoreOptions() (store.Options, error) {
	opts := store.Options{
		Backend:     store.Backend(c.Store.Type),
		Compression: store.Compression(c.Compression),
		Path:        c.Store.Path,
		ConnString:  c.Store.ConnString,
		S3: store.S3Config{
			Bucket:    c.Store.Bucket,
			Prefix:    c.Store.Prefix,
			Region:    c.Store.Region,
			Endpoint:  c.Store.Endpoint,
			AccessKey: os.Getenv(EnvS3AccessKey),
			SecretKey: os.Getenv(EnvS3SecretKey),
		},
	}
	if conn := os.Getenv(EnvConnString); conn != "" {
		opts.ConnString = conn
	}

	switch opts.Backend {
	case store.BackendMemory, store.BackendFile, store.BackendPostgres, store.BackendS3, "":
	default:
		return store.Options{}, fmt.Errorf("unknown store type %q: %w", c.Store.Type, mapfs.ErrInvalidConfig)
	}
	return opts, nil
}
