package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/playscan/pkg/playscan"
)

// RequireProjectPath validates that exactly one project_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireProjectPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <project_path>

Usage: %s

Example:
  %s ./my-project`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireProjectAndFiles validates a <project_path> followed by at least one file.
func RequireProjectAndFiles(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required argument: <project_path> <file>...

Usage: %s

Example:
  %s ./my-project site.yml inventory/hosts`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// requireProjectDir fails with playscan.ErrProjectNotFound unless
// projectPath is an existing directory.
func requireProjectDir(projectPath string) error {
	info, err := os.Stat(projectPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", playscan.ErrProjectNotFound, projectPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s: not a directory", playscan.ErrProjectNotFound, projectPath)
	}
	return nil
}
