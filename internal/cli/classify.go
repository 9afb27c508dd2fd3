package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/playscan/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <project_path> <file>...",
	Short: "Explain how individual files are classified",
	Long: `Run the playbook and inventory heuristics against individual files and
report the outcome of each, including whether the file sits inside a
directory that a scan would skip.

File paths are resolved against the project path unless they are absolute.

Examples:
  playscan classify ./my-project site.yml inventory/hosts
  playscan classify ./my-project roles/web/tasks/main.yml --json`,
	Args: RequireProjectAndFiles,
	RunE: runClassify,
}

var classifyJSON bool

func resetClassifyFlags() {
	resetFlags(classifyCmd.Flags())
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output the results as JSON")
}

// fileVerdict is the outcome of classifying one file.
type fileVerdict struct {
	File             string `json:"file"`
	Path             string `json:"path,omitempty"`
	Playbook         bool   `json:"playbook"`
	Inventory        bool   `json:"inventory"`
	SkippedDirectory string `json:"skipped_directory,omitempty"`

	// Reason explains why a path was not classified at all.
	Reason string `json:"reason,omitempty"`
}

func classifyFile(projectPath, file string) fileVerdict {
	full := file
	if !filepath.IsAbs(full) {
		full = filepath.Join(projectPath, file)
	}
	dirPath, filename := filepath.Split(full)
	dirPath = filepath.Clean(dirPath)

	verdict := fileVerdict{File: file}

	// Missing files still go through the classifiers: a .yml or .ini name
	// alone is enough for an inventory.
	if info, err := os.Stat(full); err == nil && !info.Mode().IsRegular() {
		verdict.Reason = "not a regular file"
		return verdict
	}

	if rel, ok := classify.CouldBePlaybook(projectPath, dirPath, filename); ok {
		verdict.Playbook = true
		verdict.Path = filepath.ToSlash(rel)
	}
	if rel, ok := classify.CouldBeInventory(projectPath, dirPath, filename); ok {
		verdict.Inventory = true
		verdict.Path = filepath.ToSlash(rel)
	}

	if absRoot, err := filepath.Abs(projectPath); err == nil {
		if absDir, err := filepath.Abs(dirPath); err == nil {
			if relDir, err := filepath.Rel(absRoot, absDir); err == nil && relDir != "." && classify.SkipDirectory(relDir) {
				verdict.SkippedDirectory = filepath.ToSlash(relDir)
			}
		}
	}
	return verdict
}

func runClassify(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	if err := requireProjectDir(projectPath); err != nil {
		return err
	}

	verdicts := make([]fileVerdict, 0, len(args)-1)
	for _, file := range args[1:] {
		verdicts = append(verdicts, classifyFile(projectPath, file))
	}

	if classifyJSON {
		return writeJSON(cmd.OutOrStdout(), verdicts)
	}

	out := cmd.OutOrStdout()
	st := newStyler(out)
	for _, v := range verdicts {
		var kinds []string
		if v.Playbook {
			kinds = append(kinds, "playbook")
		}
		if v.Inventory {
			kinds = append(kinds, "inventory")
		}

		switch {
		case v.Reason != "":
			fmt.Fprintf(out, "%s %s: %s", st.Muted(symbolCross), v.File, st.Muted(v.Reason))
		case len(kinds) == 0:
			fmt.Fprintf(out, "%s %s: %s", st.Muted(symbolCross), v.File, st.Muted("not classified"))
		default:
			fmt.Fprintf(out, "%s %s: %s", st.Success(symbolCheck), v.File, strings.Join(kinds, ", "))
		}
		if v.SkippedDirectory != "" {
			fmt.Fprintf(out, " %s", st.Warning(fmt.Sprintf("(inside skipped directory %s)", v.SkippedDirectory)))
		}
		fmt.Fprintln(out)
	}
	return nil
}
