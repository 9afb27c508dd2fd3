package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/playscan/internal/checksum"
	"github.com/vvka-141/playscan/internal/files/scanner"
	"github.com/vvka-141/playscan/internal/logging"
	"github.com/vvka-141/playscan/pkg/playscan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <project_path>",
	Short: "List playbooks and inventories in a project",
	Long: `Walk a project directory and list the files that look like playbooks
and inventories.

Directories named roles, tasks, group_vars or host_vars, hidden directories
and any name listed under "exclude" in playscan.yaml are not descended into.
The inventory listing stops at the inventory limit (default 50).

Configuration precedence (highest first):
  1. --inventory-limit flag
  2. PLAYSCAN_INVENTORY_LIMIT environment variable (also read from .env)
  3. playscan.yaml in the project directory

Examples:
  # Human-readable listing
  playscan scan ./my-project

  # Machine-readable listing
  playscan scan ./my-project --json

  # Only inventories, without a cap
  playscan scan ./my-project --inventories-only --inventory-limit -1`,
	Args: RequireProjectPath,
	RunE: runScan,
}

type scanFlagValues struct {
	json            bool
	playbooksOnly   bool
	inventoriesOnly bool
	inventoryLimit  int
}

var scanFlags scanFlagValues

func resetScanFlags() {
	resetFlags(scanCmd.Flags())
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Output the listing as JSON")
	scanCmd.Flags().BoolVar(&scanFlags.playbooksOnly, "playbooks-only", false, "List playbooks only")
	scanCmd.Flags().BoolVar(&scanFlags.inventoriesOnly, "inventories-only", false, "List inventories only")
	scanCmd.Flags().IntVar(&scanFlags.inventoryLimit, "inventory-limit", 0,
		"Maximum number of inventory files listed (0 = default, negative = unlimited)")
	scanCmd.MarkFlagsMutuallyExclusive("playbooks-only", "inventories-only")
}

func runScan(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	verbose := getVerboseFlag(cmd)

	if err := requireProjectDir(projectPath); err != nil {
		return err
	}

	projectCfg, err := loadProjectConfig(projectPath)
	if err != nil {
		return err
	}
	opts := resolveScanOptions(cmd, projectCfg, scanFlags.inventoryLimit)

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
	logger.Verbose("Project path: %s", projectPath)
	logger.Verbose("Inventory limit: %d", opts.InventoryLimit)

	s := scanner.NewScanner(checksum.New(), logger, opts)

	result := playscan.ScanResult{Playbooks: []playscan.Entry{}, Inventories: []playscan.Entry{}}
	switch {
	case scanFlags.playbooksOnly:
		result.Playbooks, err = s.ScanPlaybooks(projectPath)
	case scanFlags.inventoriesOnly:
		result.Inventories, result.InventoryTruncated, err = s.ScanInventories(projectPath)
	default:
		result, err = s.Scan(projectPath)
	}
	if err != nil {
		return err
	}

	if scanFlags.json {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	st := newStyler(out)
	if !scanFlags.inventoriesOnly {
		printEntries(out, st, "Playbooks", result.Playbooks)
	}
	if !scanFlags.playbooksOnly {
		if !scanFlags.inventoriesOnly {
			fmt.Fprintln(out)
		}
		printEntries(out, st, "Inventories", result.Inventories)
		if result.InventoryTruncated {
			fmt.Fprintln(out, st.Warning(fmt.Sprintf("  listing truncated after %d file(s)", len(result.Inventories))))
		}
	}
	return nil
}

func printEntries(out io.Writer, st styler, title string, entries []playscan.Entry) {
	fmt.Fprintln(out, st.Title(fmt.Sprintf("%s (%d)", title, len(entries))))
	if len(entries) == 0 {
		fmt.Fprintln(out, st.Muted("  none"))
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %s %s\n", st.Muted(symbolBullet), e.Path)
	}
}

// resetFlags restores every flag in fs to its default and clears Changed.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func writeJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
