package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leetkit-labs/leetkit/internal/config"
	"github.com/leetkit-labs/leetkit/internal/layout"
	"github.com/leetkit-labs/leetkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildRoot       string
	buildLayoutFile string
)

func init() {
	buildCmd.Flags().StringVar(&buildRoot, "root", "", "Scaffold root directory (default: 'root' config key, then ~/Desktop/LeetCode)")
	buildCmd.Flags().StringVar(&buildLayoutFile, "layout", "", "Layout file (default: 'layout' config key, then the built-in layout)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Create the practice workspace scaffold",
	Long: `Create the LeetCode practice workspace under the scaffold root:
Easy/Medium/Hard difficulty folders, one folder per topic under Topics/ with a
placeholder solutions file, utility script stubs under Utilities/, and a
README.md.

Directories are created idempotently. Placeholder files are rewritten on every
run, discarding any edits made to them.

Examples:
  leetkit build
  leetkit build --root ~/practice/leetcode
  leetkit build --layout my-layout.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		root, err := resolveRoot(buildRoot)
		if err != nil {
			return err
		}

		lay, err := resolveLayout(buildLayoutFile)
		if err != nil {
			return err
		}

		result, err := scaffold.Build(root, lay)
		if err != nil {
			return err
		}

		fmt.Printf("Created %d directories and %d files.\n", len(result.Dirs), len(result.Files))
		fmt.Printf("Project scaffold created at: %s\n", result.Root)
		return nil
	},
}

// resolveRoot picks the scaffold root: the flag, then the config key, then
// the stock ~/Desktop/LeetCode location.
func resolveRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := config.Get(config.KeyRoot); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, "Desktop", "LeetCode"), nil
}

// resolveLayout picks the layout: the flag, then the config key, then the
// built-in default. User-supplied layout files are schema-validated and
// version-checked before use; the built-in default is trusted.
func resolveLayout(flagValue string) (*layout.Layout, error) {
	path := flagValue
	if path == "" {
		path = config.Get(config.KeyLayout)
	}
	if path == "" {
		return layout.Default(), nil
	}
	return loadValidatedLayout(path)
}

func loadValidatedLayout(path string) (*layout.Layout, error) {
	result, err := layout.ValidateFile(path)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("layout file %s is invalid:\n%s", path, formatIssues(result.Issues))
	}

	lay, err := layout.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := layout.CheckVersion(lay.Version); err != nil {
		return nil, fmt.Errorf("layout file %s: %w", path, err)
	}
	return lay, nil
}

func formatIssues(issues []layout.ValidationIssue) string {
	var b strings.Builder
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(&b, "  - %s\n", msg)
	}
	return strings.TrimRight(b.String(), "\n")
}
