package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mapfs-io/mapfs/internal/config"
	"github.com/mapfs-io/mapfs/internal/logging"
	"github.com/mapfs-io/mapfs/internal/store"
	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// loadProjectConfig loads godotenv and the project configuration. A missing
// mapfs.yaml falls back to the default in-memory configuration.
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// openFilesystem builds the configured store and a Filesystem over it.
func openFilesystem(cmd *cobra.Command) (*mapfs.Filesystem, mapfs.Logger, error) {
	sourcePath, err := cmd.Flags().GetString("source")
	if err != nil {
		sourcePath = "."
	}

	projectCfg, err := loadProjectConfig(sourcePath)
	if err != nil {
		return nil, nil, err
	}

	opts, err := projectCfg.StoreOptions()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	m, err := store.Open(context.Background(), opts, logger)
	if err != nil {
		return nil, nil, err
	}
	return mapfs.New(m, logger), logger, nil
}
