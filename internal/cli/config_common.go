package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/playscan/internal/config"
	"github.com/vvka-141/playscan/internal/files/scanner"
)

// loadProjectConfig loads godotenv and project configuration, then applies
// environment overrides. A missing playscan.yaml yields an empty config.
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load playscan.yaml: %w", err)
		}
		projectCfg = &config.ProjectConfig{}
	}

	if err := projectCfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return projectCfg, nil
}

// resolveScanOptions merges project configuration with command-line flags.
// A flag only wins when the user set it explicitly.
func resolveScanOptions(cmd *cobra.Command, projectCfg *config.ProjectConfig, flagLimit int) scanner.Options {
	opts := scanner.Options{}
	if projectCfg != nil {
		opts.InventoryLimit = projectCfg.InventoryLimit
		opts.Exclude = append(opts.Exclude, projectCfg.Exclude...)
	}
	if cmd.Flags().Changed("inventory-limit") {
		opts.InventoryLimit = flagLimit
	}
	return opts
}
