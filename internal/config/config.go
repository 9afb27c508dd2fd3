package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/playscan/pkg/playscan"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of playscan.yaml.
type ProjectConfig struct {
	// InventoryLimit caps the inventory listing; 0 keeps the default,
	// a negative value disables the cap.
	InventoryLimit int `yaml:"inventory_limit,omitempty"`

	// Exclude lists extra directory names the scanner never descends into.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Load reads playscan.yaml from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, playscan.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", playscan.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from the process environment.
// PLAYSCAN_INVENTORY_LIMIT must be an integer when set.
func (c *ProjectConfig) ApplyEnv() error {
	raw, ok := os.LookupEnv(playscan.EnvInventoryLimit)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", playscan.ErrInvalidConfig, playscan.EnvInventoryLimit, raw)
	}
	c.InventoryLimit = limit
	return nil
}
