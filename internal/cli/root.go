package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "playscan",
	Short: "Find playbooks and inventories in a project tree",
	Long: `playscan walks a project directory and lists the files that look like
playbooks or inventories, the way a project sync would before offering
them for selection.

Detection is heuristic: a playbook is a .yml/.yaml file with a "hosts:" or
"include:" line (or a vault-encrypted one); an inventory is a .yml/.yaml/.ini
file, an executable script, or an extensionless file whose first lines look
like hosts, groups or variables. Directories named roles, tasks, group_vars,
host_vars and hidden directories are never scanned.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (playscan.yaml or environment)
  11 - Project directory not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
